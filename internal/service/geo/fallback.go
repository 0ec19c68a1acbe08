package geo

import (
	"sync"

	"github.com/bytedance/sonic"
)

// fallbackGeoJSON is the bundled boundary set served when the remote fetch
// fails: coarse state outlines, enough to keep the map renderable.
const fallbackGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"st_nm": "Maharashtra"},
     "geometry": {"type": "Polygon", "coordinates": [[[72.6,20.1],[80.9,21.6],[80.1,16.6],[73.3,15.6],[72.6,20.1]]]}},
    {"type": "Feature", "properties": {"st_nm": "Uttar Pradesh"},
     "geometry": {"type": "Polygon", "coordinates": [[[77.1,30.4],[84.6,27.1],[83.3,24.0],[77.6,26.8],[77.1,30.4]]]}},
    {"type": "Feature", "properties": {"st_nm": "Odisha"},
     "geometry": {"type": "Polygon", "coordinates": [[[81.4,22.0],[87.5,21.9],[86.9,19.2],[82.6,18.1],[81.4,22.0]]]}},
    {"type": "Feature", "properties": {"st_nm": "Rajasthan"},
     "geometry": {"type": "Polygon", "coordinates": [[[69.5,27.0],[76.5,30.0],[78.2,26.0],[71.0,23.3],[69.5,27.0]]]}},
    {"type": "Feature", "properties": {"st_nm": "Tamil Nadu"},
     "geometry": {"type": "Polygon", "coordinates": [[[76.2,13.5],[80.3,13.5],[79.8,8.1],[77.0,8.3],[76.2,13.5]]]}}
  ]
}`

var (
	fallbackOnce sync.Once
	fallbackFC   *FeatureCollection
)

// FallbackBoundaries returns the bundled boundary set, decoded once.
func FallbackBoundaries() *FeatureCollection {
	fallbackOnce.Do(func() {
		fallbackFC = &FeatureCollection{}
		if err := sonic.UnmarshalString(fallbackGeoJSON, fallbackFC); err != nil {
			// The constant is fixed at build time; keep an empty set if it
			// ever fails to parse.
			fallbackFC = &FeatureCollection{Type: "FeatureCollection"}
		}
	})
	return fallbackFC
}
