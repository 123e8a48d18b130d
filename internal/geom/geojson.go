package geom

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LoadFeatures reads a GeoJSON FeatureCollection and converts every areal
// geometry into the local ring-vertex model. Non-areal features (points,
// lines) are skipped; the skip count is returned so the caller can log it.
// The feature ID is taken from the idProperty property when present,
// otherwise from the feature's position in the collection.
func LoadFeatures(path, idProperty string) (features []*Feature, skipped int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, 0, fmt.Errorf("parse %s: %w", path, err)
	}
	for i, f := range fc.Features {
		var mp MultiPolygon
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			mp = MultiPolygon{fromOrbPolygon(g)}
		case orb.MultiPolygon:
			for _, p := range g {
				mp = append(mp, fromOrbPolygon(p))
			}
		default:
			skipped++
			continue
		}
		ft := &Feature{
			ID:       strconv.Itoa(i),
			Geometry: mp,
			Props:    map[string]any(f.Properties),
			Counts:   map[string]int{},
		}
		if idProperty != "" {
			if v, ok := propString(f.Properties, idProperty); ok {
				ft.ID = v
			}
		}
		if v, ok := propString(f.Properties, "name"); ok {
			ft.Name = v
		} else {
			ft.Name = ft.ID
		}
		features = append(features, ft)
	}
	if len(features) == 0 {
		return nil, skipped, errors.New("no polygonal features found")
	}
	return features, skipped, nil
}

func fromOrbPolygon(p orb.Polygon) Polygon {
	out := make(Polygon, 0, len(p))
	for _, ring := range p {
		r := make(Ring, 0, len(ring))
		for _, pt := range ring {
			r = append(r, [2]float64{pt[0], pt[1]})
		}
		out = append(out, r)
	}
	return out
}

func toOrbPolygon(p Polygon) orb.Polygon {
	out := make(orb.Polygon, 0, len(p))
	for _, ring := range p {
		r := make(orb.Ring, 0, len(ring)+1)
		for _, pt := range ring {
			r = append(r, orb.Point{pt[0], pt[1]})
		}
		// GeoJSON rings must self-close
		if len(r) > 0 && r[0] != r[len(r)-1] {
			r = append(r, r[0])
		}
		out = append(out, r)
	}
	return out
}

// propString renders a property value as a string. GeoJSON join keys show
// up as strings in some exports and numbers in others; both must match.
func propString(props map[string]any, key string) (string, bool) {
	v, ok := props[key]
	if !ok || v == nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case bool:
		return strconv.FormatBool(t), true
	}
	return "", false
}

// FeaturesGeoJSON encodes features with their per-category dot counts as a
// GeoJSON FeatureCollection, for the HTTP preview's polygon layer.
func FeaturesGeoJSON(features []*Feature) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, ft := range features {
		var g orb.Geometry
		if len(ft.Geometry) == 1 {
			g = toOrbPolygon(ft.Geometry[0])
		} else {
			mp := make(orb.MultiPolygon, 0, len(ft.Geometry))
			for _, p := range ft.Geometry {
				mp = append(mp, toOrbPolygon(p))
			}
			g = mp
		}
		f := geojson.NewFeature(g)
		f.Properties["id"] = ft.ID
		f.Properties["name"] = ft.Name
		for cat, n := range ft.Counts {
			f.Properties["dots:"+cat] = n
		}
		fc.Append(f)
	}
	return fc.MarshalJSON()
}
