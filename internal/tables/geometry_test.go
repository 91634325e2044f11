package tables

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeometry_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name   string
		width  int
		height int
	}{
		{"zero width", 0, 480},
		{"zero height", 640, 0},
		{"both zero", 0, 0},
		{"negative width", -1, 480},
		{"negative height", 640, -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			geo, err := NewGeometry(tc.width, tc.height)
			require.Error(t, err)
			assert.Nil(t, geo)
		})
	}
}

func TestNewGeometry_Derivations(t *testing.T) {
	geo, err := NewGeometry(640, 480)
	require.NoError(t, err)

	assert.Equal(t, 640, geo.Width)
	assert.Equal(t, 480, geo.Height)
	assert.Equal(t, float32(320), geo.CenterX)
	assert.Equal(t, float32(240), geo.CenterY)

	wantRadius := math.Sqrt(320*320 + 240*240) // 400
	assert.InDelta(t, wantRadius, float64(geo.MaxRadius), 1e-3)
	assert.InDelta(t, 1/wantRadius, float64(geo.InvMaxRadius), 1e-9)

	assert.InDelta(t, wantRadius*0.3, float64(geo.HighQualityRadius), 1e-3)
	assert.InDelta(t, wantRadius*0.7, float64(geo.MediumQualityRadius), 1e-3)

	assert.Equal(t, 640*480, geo.PixelCount())
}

func TestNewGeometry_TierOrdering(t *testing.T) {
	geo, err := NewGeometry(1280, 720)
	require.NoError(t, err)

	assert.Less(t, geo.HighQualityRadius, geo.MediumQualityRadius)
	assert.Less(t, geo.MediumQualityRadius, geo.MaxRadius)
}
