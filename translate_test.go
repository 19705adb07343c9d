package osm2nbg

import (
	"testing"

	"github.com/paulmach/osm"
)

func TestNodeIDMapAdd(t *testing.T) {
	mapping := NodeIDMap{}
	first := mapping.Add(osm.NodeID(123456789))
	second := mapping.Add(osm.NodeID(987654321))
	again := mapping.Add(osm.NodeID(123456789))
	if first != NodeID(0) || second != NodeID(1) {
		t.Errorf("Internal ids should be dense, but got %d and %d", first, second)
	}
	if again != first {
		t.Errorf("Repeated external id should keep its internal id, but got %d", again)
	}
}

func TestTranslateEdgePreservesFields(t *testing.T) {
	flags := NewNodeBasedEdgeClassification(true, true, false, true, false, true, false, RoadClassification(12))
	parsed := NewNodeBasedEdgeWithOSM(osm.NodeID(1000), osm.NodeID(2000), 350, 42, GeometryID(17), AnnotationID(3), flags)
	mapping := NodeIDMap{osm.NodeID(1000): NodeID(5), osm.NodeID(2000): NodeID(9)}

	edge, err := TranslateEdge(parsed, mapping)
	if err != nil {
		t.Error(err)
		return
	}
	if edge.Source != NodeID(5) || edge.Target != NodeID(9) {
		t.Errorf("Endpoints should be translated to 5 -> 9, but got %d -> %d", edge.Source, edge.Target)
	}
	if edge.Weight != 350 || edge.Duration != 42 {
		t.Errorf("Weight and duration should be preserved, but got %d and %d", edge.Weight, edge.Duration)
	}
	if edge.GeometryID != GeometryID(17) {
		t.Errorf("Geometry id should be preserved, but got %d", edge.GeometryID)
	}
	if edge.AnnotationData != AnnotationID(3) {
		t.Errorf("Annotation id should be preserved, but got %d", edge.AnnotationData)
	}
	if edge.Flags != flags {
		t.Errorf("Classification flags should be preserved bit for bit")
	}
}

func TestTranslateEdgeMissingMapping(t *testing.T) {
	flags := NewNodeBasedEdgeClassification(true, false, false, false, false, true, false, RoadClassification(0))
	parsed := NewNodeBasedEdgeWithOSM(osm.NodeID(1000), osm.NodeID(2000), 1, 1, GeometryID(0), AnnotationID(0), flags)
	mapping := NodeIDMap{osm.NodeID(1000): NodeID(5)}
	_, err := TranslateEdge(parsed, mapping)
	if err == nil {
		t.Errorf("Missing target mapping should be reported as an error")
	}
	_, err = TranslateEdge(parsed, NodeIDMap{})
	if err == nil {
		t.Errorf("Missing source mapping should be reported as an error")
	}
}

func TestTranslateBatchesKeepsOrder(t *testing.T) {
	flags := NewNodeBasedEdgeClassification(true, true, false, false, false, true, false, RoadClassification(0))
	mapping := NodeIDMap{}
	batches := [][]NodeBasedEdgeWithOSM{}
	for b := 0; b < 4; b++ {
		batch := []NodeBasedEdgeWithOSM{}
		for i := 0; i < 3; i++ {
			sourceOSM := osm.NodeID(b*100 + i)
			targetOSM := osm.NodeID(b*100 + i + 1)
			mapping.Add(sourceOSM)
			mapping.Add(targetOSM)
			batch = append(batch, NewNodeBasedEdgeWithOSM(sourceOSM, targetOSM, EdgeWeight(b*10+i), 1, GeometryID(0), AnnotationID(0), flags))
		}
		batches = append(batches, batch)
	}

	edges, err := TranslateBatches(batches, mapping)
	if err != nil {
		t.Error(err)
		return
	}
	if len(edges) != 12 {
		t.Errorf("Translated sequence should hold 12 edges, but got %d", len(edges))
	}
	for b := 0; b < 4; b++ {
		for i := 0; i < 3; i++ {
			if edges[b*3+i].Weight != EdgeWeight(b*10+i) {
				t.Errorf("Edge #%d should keep batch order, expected weight %d but got %d", b*3+i, b*10+i, edges[b*3+i].Weight)
			}
		}
	}
}

func TestTranslateBatchesReportsBatchError(t *testing.T) {
	flags := NewNodeBasedEdgeClassification(true, true, false, false, false, true, false, RoadClassification(0))
	good := []NodeBasedEdgeWithOSM{NewNodeBasedEdgeWithOSM(osm.NodeID(1), osm.NodeID(2), 1, 1, GeometryID(0), AnnotationID(0), flags)}
	bad := []NodeBasedEdgeWithOSM{NewNodeBasedEdgeWithOSM(osm.NodeID(1), osm.NodeID(777), 1, 1, GeometryID(0), AnnotationID(0), flags)}
	mapping := NodeIDMap{osm.NodeID(1): NodeID(0), osm.NodeID(2): NodeID(1)}
	_, err := TranslateBatches([][]NodeBasedEdgeWithOSM{good, bad}, mapping)
	if err == nil {
		t.Errorf("Unmapped external id in any batch should fail the translation")
	}
}
