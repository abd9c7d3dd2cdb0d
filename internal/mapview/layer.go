package mapview

import (
	"math"

	"riskmonitor/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
)

// Marker is one alert on the map together with its zone.
type Marker struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	RiskLevel   entity.RiskLevel `json:"riskLevel"`
	Color       string           `json:"color"`
	Location    entity.Location  `json:"location"`
	Radius      float64          `json:"radius"`
	FillOpacity float64          `json:"fillOpacity"`
	Draggable   bool             `json:"draggable"`
}

// Layer is every marker of the map, in collection order.
type Layer struct {
	Markers []Marker `json:"markers"`
}

// NewMarker renders a single alert
func NewMarker(alert entity.Alert) Marker {
	return Marker{
		ID:          alert.ID,
		Title:       alert.Title,
		RiskLevel:   alert.RiskLevel,
		Color:       ZoneColor(alert.RiskLevel),
		Location:    alert.Location,
		Radius:      alert.Radius,
		FillOpacity: ZoneFillOpacity,
		Draggable:   true,
	}
}

// BuildLayer renders alerts as markers
func BuildLayer(alerts []entity.Alert) Layer {
	markers := make([]Marker, 0, len(alerts))
	for _, alert := range alerts {
		markers = append(markers, NewMarker(alert))
	}

	return Layer{Markers: markers}
}

// BuildGeoJSON exports alerts as a feature collection: a point per alert
// plus a polygon approximating each zone with the given number of segments.
// Alerts with no positive radius get no zone.
func BuildGeoJSON(alerts []entity.Alert, segments int) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, alert := range alerts {
		center := orb.Point{alert.Location.Lng, alert.Location.Lat}
		color := ZoneColor(alert.RiskLevel)

		marker := geojson.NewFeature(center)
		marker.ID = alert.ID
		marker.Properties["kind"] = "marker"
		marker.Properties["id"] = alert.ID
		marker.Properties["title"] = alert.Title
		marker.Properties["riskLevel"] = string(alert.RiskLevel)
		marker.Properties["color"] = color
		fc.Append(marker)

		if alert.Radius <= 0 || math.IsNaN(alert.Radius) || math.IsInf(alert.Radius, 0) {
			continue
		}

		zone := geojson.NewFeature(ZonePolygon(center, alert.Radius, segments))
		zone.Properties["kind"] = "zone"
		zone.Properties["id"] = alert.ID
		zone.Properties["radius"] = alert.Radius
		zone.Properties["fill"] = color
		zone.Properties["fill-opacity"] = ZoneFillOpacity
		zone.Properties["stroke"] = color
		fc.Append(zone)
	}

	return fc
}

// ZonePolygon approximates a circle of radius metres around center. The
// ring is closed and wound counter-clockwise.
func ZonePolygon(center orb.Point, radius float64, segments int) orb.Polygon {
	if segments < 3 {
		segments = 3
	}

	ring := make(orb.Ring, 0, segments+1)
	for i := range segments {
		bearing := 360 - float64(i)*360/float64(segments)
		ring = append(ring, geo.PointAtBearingAndDistance(center, bearing, radius))
	}
	ring = append(ring, ring[0])

	return orb.Polygon{ring}
}

// Contains reports whether loc falls inside the alert's zone
func Contains(alert entity.Alert, loc entity.Location) bool {
	if alert.Radius < 0 || math.IsNaN(alert.Radius) {
		return false
	}

	distance := geo.Distance(
		orb.Point{alert.Location.Lng, alert.Location.Lat},
		orb.Point{loc.Lng, loc.Lat},
	)

	return distance <= alert.Radius
}
