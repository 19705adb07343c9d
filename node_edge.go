package osm2nbg

import (
	"unsafe"

	"github.com/paulmach/osm"
)

// NodeID Dense internal vertex index, assigned during node id translation
type NodeID uint32

// EdgeWeight Traversal cost of an edge
type EdgeWeight int32

// EdgeDuration Traversal time of an edge
type EdgeDuration int32

// GeometryID Reference into an external geometry table
type GeometryID uint32

// AnnotationID Reference into the shared annotation table
type AnnotationID uint32

// NameID Reference into an external name table
type NameID uint32

// LaneDescriptionID Reference into an external lane description table
type LaneDescriptionID uint16

const (
	// SPECIAL_NODEID Reserved invalid internal node id. Endpoints of an edge carry this value until node id translation has run
	SPECIAL_NODEID = ^NodeID(0)
	// EMPTY_ANNOTATIONID Reserved unassigned annotation reference
	EMPTY_ANNOTATIONID = ^AnnotationID(0)
	// MIN_OSM_NODEID Smallest valid external node id. Zero value of the external-id edge variant only; real instances must come through NewNodeBasedEdgeWithOSM
	MIN_OSM_NODEID = osm.NodeID(0)
)

// Bit positions of the packed classification flags
const (
	flagForward    = uint8(1 << iota) // 1 bit
	flagBackward                      // 1 bit
	flagIsSplit                       // 1 bit
	flagRoundabout                    // 1 bit
	flagCircular                      // 1 bit
	flagStartpoint                    // 1 bit
	flagRestricted                    // 1 bit
)

// NodeBasedEdgeClassification Flags describing the class of the road. Used during graph creation and guidance generation but not carried into navigation
/*
	Seven single-bit traversal/topology flags packed into one byte plus a
	2-byte packed road category. Compiles down to 4 bytes inside the edge
	record, padding included.
*/
type NodeBasedEdgeClassification struct {
	bits               uint8              // 7x1 bit, see flag constants
	RoadClassification RoadClassification // 16 bit
}

// NewNodeBasedEdgeClassification Constructor for packed classification flags
func NewNodeBasedEdgeClassification(forward, backward, isSplit, roundabout, circular, startpoint, restricted bool, roadClassification RoadClassification) NodeBasedEdgeClassification {
	c := NodeBasedEdgeClassification{RoadClassification: roadClassification}
	c.SetForward(forward)
	c.SetBackward(backward)
	c.SetIsSplit(isSplit)
	c.SetRoundabout(roundabout)
	c.SetCircular(circular)
	c.SetStartpoint(startpoint)
	c.SetRestricted(restricted)
	return c
}

// Forward Edge is traversable source -> target
func (c NodeBasedEdgeClassification) Forward() bool { return c.bits&flagForward != 0 }

// Backward Edge is traversable target -> source
func (c NodeBasedEdgeClassification) Backward() bool { return c.bits&flagBackward != 0 }

// IsSplit Edge is one half of a geometrically split bidirectional way
func (c NodeBasedEdgeClassification) IsSplit() bool { return c.bits&flagIsSplit != 0 }

// Roundabout Edge belongs to a roundabout
func (c NodeBasedEdgeClassification) Roundabout() bool { return c.bits&flagRoundabout != 0 }

// Circular Edge belongs to a non-roundabout circular junction
func (c NodeBasedEdgeClassification) Circular() bool { return c.bits&flagCircular != 0 }

// Startpoint Edge may serve as the start of a route
func (c NodeBasedEdgeClassification) Startpoint() bool { return c.bits&flagStartpoint != 0 }

// Restricted Edge has restricted access
func (c NodeBasedEdgeClassification) Restricted() bool { return c.bits&flagRestricted != 0 }

func (c *NodeBasedEdgeClassification) setBit(mask uint8, v bool) {
	if v {
		c.bits |= mask
	} else {
		c.bits &^= mask
	}
}

// SetForward Sets the forward traversal flag
func (c *NodeBasedEdgeClassification) SetForward(v bool) { c.setBit(flagForward, v) }

// SetBackward Sets the backward traversal flag
func (c *NodeBasedEdgeClassification) SetBackward(v bool) { c.setBit(flagBackward, v) }

// SetIsSplit Sets the split-way flag
func (c *NodeBasedEdgeClassification) SetIsSplit(v bool) { c.setBit(flagIsSplit, v) }

// SetRoundabout Sets the roundabout flag
func (c *NodeBasedEdgeClassification) SetRoundabout(v bool) { c.setBit(flagRoundabout, v) }

// SetCircular Sets the circular junction flag
func (c *NodeBasedEdgeClassification) SetCircular(v bool) { c.setBit(flagCircular, v) }

// SetStartpoint Sets the route startpoint flag
func (c *NodeBasedEdgeClassification) SetStartpoint(v bool) { c.setBit(flagStartpoint, v) }

// SetRestricted Sets the restricted access flag
func (c *NodeBasedEdgeClassification) SetRestricted(v bool) { c.setBit(flagRestricted, v) }

// CanCombineWith Reports whether two segments may share one packed classification value. Full structural equality over all seven flags and the road classification
func (c NodeBasedEdgeClassification) CanCombineWith(other NodeBasedEdgeClassification) bool {
	return c.bits == other.bits && c.RoadClassification == other.RoadClassification
}

// mergeableInto Reports whether a segment with these flags is redundant next to a representative carrying other: every traversal direction is already covered and all non-direction flags plus the road classification agree. Unlike CanCombineWith this lets a one-way partial collapse onto its bidirectional representative
func (c NodeBasedEdgeClassification) mergeableInto(other NodeBasedEdgeClassification) bool {
	const dirMask = flagForward | flagBackward
	if c.bits&dirMask&^other.bits != 0 {
		return false
	}
	return c.bits&^dirMask == other.bits&^dirMask && c.RoadClassification == other.RoadClassification
}

// NodeBasedEdgeAnnotation Descriptive attributes shared between edges by reference. Does not influence path cost; usually describes features of a whole OSM way
type NodeBasedEdgeAnnotation struct {
	NameID            NameID            // 32 bit
	TravelMode        TravelMode        // 4 bit contract, see TRAVEL_MODE_MASK
	Classes           ClassData         // 8 bit
	LaneDescriptionID LaneDescriptionID // 16 bit
}

// NewNodeBasedEdgeAnnotation Constructor for annotation records. Masks the travel mode down to its 4-bit storage contract
func NewNodeBasedEdgeAnnotation(nameID NameID, travelMode TravelMode, classes ClassData, laneDescriptionID LaneDescriptionID) NodeBasedEdgeAnnotation {
	return NodeBasedEdgeAnnotation{
		NameID:            nameID,
		TravelMode:        travelMode & TRAVEL_MODE_MASK,
		Classes:           classes,
		LaneDescriptionID: laneDescriptionID,
	}
}

// CanCombineWith Reports whether two segments may share one annotation record: name id, classes and travel mode must be equal. The lane description id is deliberately not compared; lane layout does not affect whether descriptive metadata is shared
func (a NodeBasedEdgeAnnotation) CanCombineWith(other NodeBasedEdgeAnnotation) bool {
	return a.NameID == other.NameID && a.Classes == other.Classes && a.TravelMode == other.TravelMode
}

// NodeBasedEdge Canonical record of one directed road segment after node id translation. Instantiated for every segment of the network, so the layout is a hard 28-byte memory contract
type NodeBasedEdge struct {
	Source         NodeID                      // 32 bit
	Target         NodeID                      // 32 bit
	Weight         EdgeWeight                  // 32 bit
	Duration       EdgeDuration                // 32 bit
	GeometryID     GeometryID                  // 32 bit
	AnnotationData AnnotationID                // 32 bit
	Flags          NodeBasedEdgeClassification // 32 bit
}

// Layout guard: refuses to compile when NodeBasedEdge drifts off 28 bytes
var (
	_ [28 - unsafe.Sizeof(NodeBasedEdge{})]byte
	_ [unsafe.Sizeof(NodeBasedEdge{}) - 28]byte
)

// DefaultNodeBasedEdge Edge with both endpoints at the invalid node sentinel and no annotation assigned. Endpoints must not be read before translation fills them
func DefaultNodeBasedEdge() NodeBasedEdge {
	return NodeBasedEdge{
		Source:         SPECIAL_NODEID,
		Target:         SPECIAL_NODEID,
		AnnotationData: EMPTY_ANNOTATIONID,
	}
}

// NewNodeBasedEdge Constructor for translated edge records
func NewNodeBasedEdge(source, target NodeID, weight EdgeWeight, duration EdgeDuration, geometryID GeometryID, annotationData AnnotationID, flags NodeBasedEdgeClassification) NodeBasedEdge {
	return NodeBasedEdge{
		Source:         source,
		Target:         target,
		Weight:         weight,
		Duration:       duration,
		GeometryID:     geometryID,
		AnnotationData: annotationData,
		Flags:          flags,
	}
}

// Less Strict total order on (source, target, weight). On a full tie a fully bidirectional edge sorts ahead of one that is not, so the synthesized bidirectional representative of a street parsed as two opposite one-way segments always comes first and the merge pass can collapse the run predictably
func (e NodeBasedEdge) Less(other NodeBasedEdge) bool {
	if e.Source == other.Source {
		if e.Target == other.Target {
			if e.Weight == other.Weight {
				return e.Flags.Forward() && e.Flags.Backward() &&
					(!other.Flags.Forward() || !other.Flags.Backward())
			}
			return e.Weight < other.Weight
		}
		return e.Target < other.Target
	}
	return e.Source < other.Source
}

// NodeBasedEdgeWithOSM Parsed segment before node id translation, keyed by external OSM node ids. Only the OSM ids are meaningful on this type; Source and Target stay at the sentinel until translation produces a canonical edge
type NodeBasedEdgeWithOSM struct {
	NodeBasedEdge
	OSMSourceID osm.NodeID
	OSMTargetID osm.NodeID
}

// NewNodeBasedEdgeWithOSM Constructor for pre-translation edges. Internal endpoints are left at the invalid node sentinel
func NewNodeBasedEdgeWithOSM(osmSourceID, osmTargetID osm.NodeID, weight EdgeWeight, duration EdgeDuration, geometryID GeometryID, annotationData AnnotationID, flags NodeBasedEdgeClassification) NodeBasedEdgeWithOSM {
	return NodeBasedEdgeWithOSM{
		NodeBasedEdge: NewNodeBasedEdge(SPECIAL_NODEID, SPECIAL_NODEID, weight, duration, geometryID, annotationData, flags),
		OSMSourceID:   osmSourceID,
		OSMTargetID:   osmTargetID,
	}
}
