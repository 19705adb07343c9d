package osm2nbg

import (
	"github.com/paulmach/osm"
)

// ClassificationFromTags Derives packed classification flags for the forward segment of an OSM way. The road classification itself is resolved upstream and passed through untouched
/*
	Recognized tags:
		oneway = yes / 1 / true  -- forward only
		oneway = -1 / reverse    -- backward only
		junction = roundabout    -- roundabout flag
		junction = circular      -- circular flag
		access = no / private    -- restricted, never a route startpoint
		area = yes               -- never a route startpoint
*/
func ClassificationFromTags(tags osm.Tags, roadClassification RoadClassification) NodeBasedEdgeClassification {
	forward, backward := true, true
	switch tags.Find("oneway") {
	case "yes", "1", "true":
		backward = false
	case "-1", "reverse":
		forward = false
	}

	junction := tags.Find("junction")
	roundabout := junction == "roundabout"
	circular := junction == "circular"
	if roundabout || circular {
		// Roundabouts are implicitly oneway unless tagged otherwise
		if tags.Find("oneway") == "" {
			backward = false
		}
	}

	restricted := false
	switch tags.Find("access") {
	case "no", "private":
		restricted = true
	}

	startpoint := !restricted && tags.Find("area") != "yes"

	return NewNodeBasedEdgeClassification(forward, backward, false, roundabout, circular, startpoint, restricted, roadClassification)
}
