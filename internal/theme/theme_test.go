package theme

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialMainColor(t *testing.T) {
	tests := []struct {
		name   string
		dark   bool
		custom string
		want   string
	}{
		{"dark default", true, "", "#4287f5"},
		{"light default", false, "", "#2563eb"},
		{"custom in dark", true, "#ff0000", "#ff0000"},
		{"custom in light", false, "#ff0000", "#ff0000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, wire := range []bool{false, true} {
				assert.Equal(t, tt.want, Material(tt.dark, wire, tt.custom).MainColor)
			}
		})
	}
}

func TestMaterialThemeConstants(t *testing.T) {
	dark := Material(true, false, "")
	assert.Equal(t, MaterialStyle{
		MainColor: "#4287f5", WireframeColor: "#00ff88",
		Roughness: 0.2, Metalness: 0.8, Opacity: 1, WireframeOpacity: 0.2,
	}, dark)

	light := Material(false, false, "")
	assert.Equal(t, MaterialStyle{
		MainColor: "#2563eb", WireframeColor: "#10b981",
		Roughness: 0.3, Metalness: 0.6, Opacity: 1, WireframeOpacity: 0.3,
	}, light)
}

func TestMaterialOpacityFollowsWireframe(t *testing.T) {
	assert.Equal(t, float32(0.3), Material(true, true, "").Opacity)
	assert.Equal(t, float32(0.4), Material(false, true, "").Opacity)
	assert.Equal(t, float32(1), Material(true, false, "").Opacity)
	assert.Equal(t, float32(1), Material(false, false, "#abc").Opacity)
}

func TestScene(t *testing.T) {
	dark := Scene(true)
	assert.Equal(t, "#1a1a1a", dark.Background)
	assert.Equal(t, float32(1.0), dark.AmbientIntensity)
	assert.Equal(t, float32(2.5), dark.PointLightIntensity)
	assert.Equal(t, [3]float32{10, 10, 10}, dark.PointLightPosition)

	light := Scene(false)
	assert.Equal(t, "#ffffff", light.Background)
	assert.Equal(t, float32(1.4), light.AmbientIntensity)
	assert.Equal(t, float32(3.0), light.PointLightIntensity)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#4287f5", color.RGBA{0x42, 0x87, 0xf5, 255}},
		{"#FFF", color.RGBA{255, 255, 255, 255}},
		{" #0a0B0c ", color.RGBA{10, 11, 12, 255}},
		{"tomato", color.RGBA{255, 99, 71, 255}},
		{"Red", color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "#", "#12", "#12345g", "notacolor", "4287f5"} {
		_, err := ParseColor(bad)
		assert.ErrorIs(t, err, ErrInvalidColor, bad)
	}
}

func TestNormalizeColor(t *testing.T) {
	got, err := NormalizeColor("#ABC")
	require.NoError(t, err)
	assert.Equal(t, "#aabbcc", got)

	got, err = NormalizeColor("orange")
	require.NoError(t, err)
	assert.Equal(t, "#ffa500", got)

	_, err = NormalizeColor("#zzz")
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestMustColorPanics(t *testing.T) {
	assert.Panics(t, func() { MustColor("nope") })
	assert.Equal(t, color.RGBA{0x1a, 0x1a, 0x1a, 255}, MustColor(darkBackground))
}
