package osm2nbg

// TravelMode Mode of travel along a segment. Stored in 4 bits inside the annotation record, hence the mask
type TravelMode uint8

const (
	TRAVEL_MODE_DRIVING = TravelMode(iota + 1)
	TRAVEL_MODE_CYCLING
	TRAVEL_MODE_WALKING
	TRAVEL_MODE_FERRY
	TRAVEL_MODE_TRAIN
	TRAVEL_MODE_PUSHING_BIKE
	TRAVEL_MODE_INACCESSIBLE = TravelMode(0)

	// TRAVEL_MODE_MASK 4-bit storage contract of TravelMode inside annotation records
	TRAVEL_MODE_MASK = TravelMode(0x0f)
)

func (iotaIdx TravelMode) String() string {
	return [...]string{"inaccessible", "driving", "cycling", "walking", "ferry", "train", "pushing_bike"}[iotaIdx]
}
