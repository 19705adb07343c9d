package osm2nbg

import (
	"sync"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// NodeTranslator Read-only mapping from external OSM node ids to dense internal ones. Must not be mutated while translation runs
type NodeTranslator interface {
	Translate(osmNodeID osm.NodeID) (NodeID, bool)
}

// NodeIDMap Map-backed NodeTranslator. Built upstream while renumbering nodes, then handed to the translation step read-only
type NodeIDMap map[osm.NodeID]NodeID

// Translate Looks up the internal id for an external one
func (m NodeIDMap) Translate(osmNodeID osm.NodeID) (NodeID, bool) {
	internal, ok := m[osmNodeID]
	return internal, ok
}

// Add Registers an external id under the next dense internal id unless already present
func (m NodeIDMap) Add(osmNodeID osm.NodeID) NodeID {
	if internal, ok := m[osmNodeID]; ok {
		return internal
	}
	internal := NodeID(len(m))
	m[osmNodeID] = internal
	return internal
}

// TranslateEdge Rewrites the external endpoints of a parsed edge into dense internal ids, producing the canonical edge record. Weight, duration, geometry, annotation and flags are carried over untouched. A missing mapping is a contract violation of the upstream renumbering step
func TranslateEdge(edge NodeBasedEdgeWithOSM, translator NodeTranslator) (NodeBasedEdge, error) {
	source, ok := translator.Translate(edge.OSMSourceID)
	if !ok {
		return DefaultNodeBasedEdge(), errors.Errorf("No internal id for OSM source node '%d'", edge.OSMSourceID)
	}
	target, ok := translator.Translate(edge.OSMTargetID)
	if !ok {
		return DefaultNodeBasedEdge(), errors.Errorf("No internal id for OSM target node '%d'", edge.OSMTargetID)
	}
	translated := edge.NodeBasedEdge
	translated.Source = source
	translated.Target = target
	return translated, nil
}

// TranslateEdges Translates one batch of parsed edges in order
func TranslateEdges(batch []NodeBasedEdgeWithOSM, translator NodeTranslator) ([]NodeBasedEdge, error) {
	translated := make([]NodeBasedEdge, len(batch))
	for i := range batch {
		edge, err := TranslateEdge(batch[i], translator)
		if err != nil {
			return nil, errors.Wrap(err, "Can't translate edge")
		}
		translated[i] = edge
	}
	return translated, nil
}

// TranslateBatches Translates parser batches concurrently, one goroutine per batch. Batches are independent and the translator is read-only, so no coordination beyond the final join is needed. The flattened result keeps batch order
func TranslateBatches(batches [][]NodeBasedEdgeWithOSM, translator NodeTranslator) ([]NodeBasedEdge, error) {
	results := make([][]NodeBasedEdge, len(batches))
	errs := make([]error, len(batches))
	wg := sync.WaitGroup{}
	for i := range batches {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = TranslateEdges(batches[i], translator)
		}(i)
	}
	wg.Wait()
	total := 0
	for i := range errs {
		if errs[i] != nil {
			return nil, errors.Wrapf(errs[i], "Can't translate batch #%d", i)
		}
		total += len(results[i])
	}
	translated := make([]NodeBasedEdge, 0, total)
	for i := range results {
		translated = append(translated, results[i]...)
	}
	return translated, nil
}
