// Package geo renders map overlays: given a GeoJSON boundary set and a
// caller-supplied data lookup it produces one colored feature per region.
// The map never holds state of its own; a click hands the region id back to
// the owning panel and nothing else.
package geo

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
)

type Feature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   interface{}            `json:"geometry"`
}

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// OverlayFeature is one renderable shape: the region's normalized name, the
// looked-up value and the fill bucket derived from it. RegionID is the
// click-through payload a click hands back to the owning panel: the id
// property from the boundary set when present, otherwise the normalized name.
type OverlayFeature struct {
	RegionID string      `json:"region_id"`
	Region   string      `json:"region"`
	Value    float64     `json:"value"`
	Bucket   int         `json:"bucket"`
	Geometry interface{} `json:"geometry"`
}

type Service struct {
	client *http.Client
}

func NewService(client *http.Client) *Service {
	if client == nil {
		client = http.DefaultClient
	}
	return &Service{client: client}
}

// FetchBoundaries pulls a GeoJSON boundary set from the configured remote.
// Callers run it through the panel loader, which substitutes the bundled
// fallback set when this fails.
func (svc *Service) FetchBoundaries(ctx context.Context, url string) (*FeatureCollection, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequest: %w", err)
	}

	resp, err := svc.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get boundaries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
	}

	var fc FeatureCollection
	if err = sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&fc); err != nil {
		return nil, fmt.Errorf("failed to decode geojson: %w", err)
	}

	return &fc, nil
}

// bucketBounds quantize a region's value into fill buckets; bucket 0 means
// no data.
var bucketBounds = []float64{0, 10, 50, 100, 500}

// Overlay joins boundaries with the data lookup by normalized region name.
// Regions missing from the lookup still render, in the zero bucket.
func (svc *Service) Overlay(fc *FeatureCollection, data map[string]float64) []OverlayFeature {
	overlays := make([]OverlayFeature, 0, len(fc.Features))
	for _, feature := range fc.Features {
		region := NormalizeName(regionName(feature.Properties))

		id := regionID(feature.Properties)
		if id == "" {
			id = region
		}

		value, ok := data[region]
		bucket := 0
		if ok {
			bucket = bucketFor(value)
		}

		overlays = append(overlays, OverlayFeature{
			RegionID: id,
			Region:   region,
			Value:    value,
			Bucket:   bucket,
			Geometry: feature.Geometry,
		})
	}

	return overlays
}

// regionID pulls the dataset's region identifier. Census-style boundary
// files carry codes as strings or bare numbers.
func regionID(properties map[string]interface{}) string {
	for _, key := range []string{"id", "code", "dt_code", "st_code"} {
		switch v := properties[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

func regionName(properties map[string]interface{}) string {
	for _, key := range []string{"district", "st_nm", "name", "NAME_1", "NAME_2"} {
		if v, ok := properties[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func bucketFor(value float64) int {
	bucket := 1
	for i, bound := range bucketBounds[1:] {
		if value >= bound {
			bucket = i + 2
		}
	}
	return bucket
}
