package twitterapi

import (
	"fmt"

	"github.com/buger/jsonparser"
)

type Place struct {
	ID              string             `json:"id"`
	FullName        string             `json:"full_name"`
	Name            Optional[string]   `json:"name"`
	Country         Optional[string]   `json:"country"`
	CountryCode     Optional[string]   `json:"country_code"`
	PlaceType       Optional[string]   `json:"place_type"`
	ContainedWithin Optional[[]string] `json:"contained_within"`
	// BoundingBox is [west, south, east, north] from geo.bbox.
	BoundingBox Optional[[]float64] `json:"bbox"`
}

func ParsePlace(raw []byte) (Place, error) {
	var p Place
	var err error
	if p.ID, err = readRequired(raw, asString, "id"); err != nil {
		return Place{}, err
	}
	if p.FullName, err = readRequired(raw, asString, "full_name"); err != nil {
		return Place{}, err
	}
	if p.Name, err = readOptional(raw, asString, "name"); err != nil {
		return Place{}, err
	}
	if p.Country, err = readOptional(raw, asString, "country"); err != nil {
		return Place{}, err
	}
	if p.CountryCode, err = readOptional(raw, asString, "country_code"); err != nil {
		return Place{}, err
	}
	if p.PlaceType, err = readOptional(raw, asString, "place_type"); err != nil {
		return Place{}, err
	}
	if p.ContainedWithin, err = readOptional(raw, asStrings, "contained_within"); err != nil {
		return Place{}, err
	}
	if p.BoundingBox, err = readOptional(raw, asBoundingBox, "geo", "bbox"); err != nil {
		return Place{}, err
	}
	return p, nil
}

func asBoundingBox(value []byte, dataType jsonparser.ValueType) ([]float64, error) {
	bbox, err := asArray(asFloat)(value, dataType)
	if err != nil {
		return nil, err
	}
	if len(bbox) != 4 {
		return nil, fmt.Errorf("expected 4 coordinates, got %d", len(bbox))
	}
	return bbox, nil
}

// Coordinates is a GeoJSON point as sent in geo.coordinates.
type Coordinates struct {
	Type      string  `json:"type"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

func ParseCoordinates(raw []byte) (Coordinates, error) {
	pointType, err := readRequired(raw, asString, "type")
	if err != nil {
		return Coordinates{}, err
	}
	point, err := readRequired(raw, asArray(asFloat), "coordinates")
	if err != nil {
		return Coordinates{}, err
	}
	if len(point) != 2 {
		return Coordinates{}, malformed([]string{"coordinates"}, fmt.Errorf("expected [longitude, latitude], got %d values", len(point)))
	}
	return Coordinates{Type: pointType, Longitude: point[0], Latitude: point[1]}, nil
}

type Geo struct {
	PlaceID     Optional[string]      `json:"place_id"`
	Coordinates Optional[Coordinates] `json:"coordinates"`
}

func ParseGeo(raw []byte) (Geo, error) {
	var g Geo
	var err error
	if g.PlaceID, err = readOptional(raw, asString, "place_id"); err != nil {
		return Geo{}, err
	}
	if g.Coordinates, err = readOptional(raw, asObject(ParseCoordinates), "coordinates"); err != nil {
		return Geo{}, err
	}
	return g, nil
}
