package osm2nbg

// ClassData Bitset of drivable road classes a segment belongs to. One bit per class, up to 8 classes
type ClassData uint8

const (
	CLASS_MOTORWAY = ClassData(1 << iota)
	CLASS_TRUNK
	CLASS_PRIMARY
	CLASS_SECONDARY
	CLASS_TERTIARY
	CLASS_RESIDENTIAL
	CLASS_SERVICE
	CLASS_OTHER
)

// Has Checks whether all class bits of mask are set
func (cd ClassData) Has(mask ClassData) bool {
	return cd&mask == mask
}

// RoadClassification Packed 2-byte road category value produced upstream. Opaque at this layer beyond equality comparison
type RoadClassification uint16
