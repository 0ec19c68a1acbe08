package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"Orissa":        "Odisha",
		"ORISSA":        "Odisha",
		"  Pondicherry": "Puducherry",
		"NCT of Delhi":  "Delhi",
		"Maharashtra":   "Maharashtra",
		" Pune ":        "Pune",
	}
	for raw, expected := range cases {
		assert.Equal(t, expected, NormalizeName(raw), "raw %q", raw)
	}
}

func TestOverlayJoinsByNormalizedName(t *testing.T) {
	fc := &FeatureCollection{
		Type: "FeatureCollection",
		Features: []Feature{
			{Properties: map[string]interface{}{"st_nm": "Orissa"}},
			{Properties: map[string]interface{}{"st_nm": "Maharashtra"}},
			{Properties: map[string]interface{}{"st_nm": "Tamil Nadu"}},
		},
	}

	svc := NewService(nil)
	overlays := svc.Overlay(fc, map[string]float64{
		"Odisha":      12,
		"Maharashtra": 640,
	})
	require.Len(t, overlays, 3)

	// The dataset's historical name joins against the current one.
	assert.Equal(t, "Odisha", overlays[0].Region)
	assert.Equal(t, 2, overlays[0].Bucket)

	assert.Equal(t, 5, overlays[1].Bucket)

	// Regions without data still render, in the zero bucket.
	assert.Equal(t, "Tamil Nadu", overlays[2].Region)
	assert.Equal(t, 0, overlays[2].Bucket)
	assert.Zero(t, overlays[2].Value)
}

func TestOverlayCarriesRegionID(t *testing.T) {
	fc := &FeatureCollection{
		Features: []Feature{
			{Properties: map[string]interface{}{"st_nm": "Odisha", "st_code": "21"}},
			{Properties: map[string]interface{}{"district": "Pune", "code": float64(521)}},
			{Properties: map[string]interface{}{"st_nm": "Orissa"}},
		},
	}

	overlays := NewService(nil).Overlay(fc, nil)
	require.Len(t, overlays, 3)

	assert.Equal(t, "21", overlays[0].RegionID)
	assert.Equal(t, "521", overlays[1].RegionID)

	// No id property: the normalized name doubles as the click payload.
	assert.Equal(t, "Odisha", overlays[2].RegionID)
}

func TestBucketFor(t *testing.T) {
	cases := map[float64]int{
		0.5: 1,
		9.9: 1,
		10:  2,
		49:  2,
		50:  3,
		100: 4,
		499: 4,
		500: 5,
		1e6: 5,
	}
	for value, expected := range cases {
		assert.Equal(t, expected, bucketFor(value), "value %v", value)
	}
}

func TestRegionNamePriority(t *testing.T) {
	name := regionName(map[string]interface{}{
		"st_nm":    "Maharashtra",
		"district": "Pune",
		"name":     "ignored",
	})
	assert.Equal(t, "Pune", name)

	assert.Empty(t, regionName(map[string]interface{}{"code": 42}))
}

func TestFallbackBoundaries(t *testing.T) {
	fc := FallbackBoundaries()
	require.NotNil(t, fc)
	require.Len(t, fc.Features, 5)

	names := make([]string, 0, len(fc.Features))
	for _, feature := range fc.Features {
		names = append(names, NormalizeName(regionName(feature.Properties)))
	}
	assert.Contains(t, names, "Odisha")
	assert.Contains(t, names, "Maharashtra")
}
