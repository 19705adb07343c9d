package osm2nbg

// annotationKey Dedup key of the annotation table. Mirrors NodeBasedEdgeAnnotation.CanCombineWith: the lane description id is excluded on purpose
type annotationKey struct {
	nameID     NameID
	classes    ClassData
	travelMode TravelMode
}

// AnnotationTable Shared side-table of deduplicated annotation records. Edges reference entries by AnnotationID instead of carrying a copy each. Single writer during extraction, read-only afterwards; no internal locking
type AnnotationTable struct {
	annotations []NodeBasedEdgeAnnotation
	seen        map[annotationKey]AnnotationID
}

// NewAnnotationTable Constructor for an empty annotation table
func NewAnnotationTable() *AnnotationTable {
	return &AnnotationTable{
		seen: map[annotationKey]AnnotationID{},
	}
}

// Add Returns the id of an existing record the given one can combine with, or stores it under a fresh id. The first record of each combinable group wins, so its lane description id is the one later lookups observe
func (table *AnnotationTable) Add(annotation NodeBasedEdgeAnnotation) AnnotationID {
	key := annotationKey{
		nameID:     annotation.NameID,
		classes:    annotation.Classes,
		travelMode: annotation.TravelMode,
	}
	if id, ok := table.seen[key]; ok {
		return id
	}
	id := AnnotationID(len(table.annotations))
	table.annotations = append(table.annotations, annotation)
	table.seen[key] = id
	return id
}

// Get Returns the annotation record stored under the given id
func (table *AnnotationTable) Get(id AnnotationID) NodeBasedEdgeAnnotation {
	return table.annotations[id]
}

// Annotations Returns the backing slice for handoff to the graph builder. Callers must not mutate it
func (table *AnnotationTable) Annotations() []NodeBasedEdgeAnnotation {
	return table.annotations
}

// Len Number of deduplicated records in the table
func (table *AnnotationTable) Len() int {
	return len(table.annotations)
}
