package dots

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// MarshalGeoJSON encodes a dot sequence as a GeoJSON FeatureCollection of
// points with a category property, the shape the browser preview plots.
func MarshalGeoJSON(d []Dot) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, dot := range d {
		f := geojson.NewFeature(orb.Point{dot.X, dot.Y})
		if dot.Category != "" {
			f.Properties["category"] = dot.Category
		}
		fc.Append(f)
	}
	return fc.MarshalJSON()
}
