package osm2nbg

import (
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"
)

// SortEdges Sorts the complete edge sequence under the (source, target, weight) total order with the bidirectional-first tie break. Needs exclusive access to the slice; no ordering guarantee exists across unsorted batches
func SortEdges(edges []NodeBasedEdge) {
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].Less(edges[j])
	})
}

// MergeDuplicateEdges Collapses duplicate and opposite-direction edges in a sorted sequence. Within a run of equal (source, target, weight) the first edge is the representative: the sort placed a fully bidirectional edge ahead of partial ones, so a street parsed as two opposite one-way segments collapses onto its bidirectional form. An edge is absorbed only when the representative already covers its traversal directions, all other flags and the road classification agree, and both reference the same annotation record; otherwise it stays
func MergeDuplicateEdges(sorted []NodeBasedEdge) []NodeBasedEdge {
	if len(sorted) == 0 {
		return sorted
	}
	merged := sorted[:1]
	for i := 1; i < len(sorted); i++ {
		edge := sorted[i]
		representative := &merged[len(merged)-1]
		sameSegment := edge.Source == representative.Source &&
			edge.Target == representative.Target &&
			edge.Weight == representative.Weight
		if sameSegment &&
			edge.AnnotationData == representative.AnnotationData &&
			edge.Flags.mergeableInto(representative.Flags) {
			continue
		}
		merged = append(merged, edge)
	}
	return merged
}

// PrepareEdges Runs the full translate -> sort -> merge pass over parser batches and returns the canonical edge sequence ready for the graph builder
func PrepareEdges(batches [][]NodeBasedEdgeWithOSM, translator NodeTranslator, verbose bool) ([]NodeBasedEdge, error) {
	if verbose {
		fmt.Printf("Translating edges...")
	}
	st := time.Now()
	edges, err := TranslateBatches(batches, translator)
	if err != nil {
		return nil, errors.Wrap(err, "Can't translate edges")
	}
	if verbose {
		fmt.Printf(" Done in %v\n\tEdges: %d\n", time.Since(st), len(edges))
		fmt.Printf("Sorting and merging edges...")
	}
	st = time.Now()
	SortEdges(edges)
	edges = MergeDuplicateEdges(edges)
	if verbose {
		fmt.Printf(" Done in %v\n\tEdges: %d\n", time.Since(st), len(edges))
	}
	return edges, nil
}
