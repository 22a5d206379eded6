// Package theme derives material and scene settings from the view flags.
// Everything here is a pure function of its arguments.
package theme

// Theme-specific constants, dark first.
const (
	darkMainColor  = "#4287f5"
	lightMainColor = "#2563eb"

	darkWireColor  = "#00ff88"
	lightWireColor = "#10b981"

	darkBackground  = "#1a1a1a"
	lightBackground = "#ffffff"
)

// MaterialStyle is how the solid mesh and its wireframe overlay are shaded.
type MaterialStyle struct {
	MainColor        string
	WireframeColor   string
	Roughness        float32
	Metalness        float32
	Opacity          float32 // solid mesh; 1 unless the overlay is on
	WireframeOpacity float32 // overlay mesh
}

// Material returns the style for the given flags. A non-empty customColor
// replaces the theme's main color; it is not validated here.
func Material(dark, wireframe bool, customColor string) MaterialStyle {
	s := MaterialStyle{
		MainColor:        lightMainColor,
		WireframeColor:   lightWireColor,
		Roughness:        0.3,
		Metalness:        0.6,
		Opacity:          1,
		WireframeOpacity: 0.3,
	}
	wireOpacity := float32(0.4)
	if dark {
		s.MainColor = darkMainColor
		s.WireframeColor = darkWireColor
		s.Roughness = 0.2
		s.Metalness = 0.8
		s.WireframeOpacity = 0.2
		wireOpacity = 0.3
	}
	if wireframe {
		s.Opacity = wireOpacity
	}
	if customColor != "" {
		s.MainColor = customColor
	}
	return s
}

// SceneConfig is the theme-dependent part of the scene: background and lights.
type SceneConfig struct {
	Background          string
	AmbientIntensity    float32
	PointLightIntensity float32
	PointLightPosition  [3]float32
}

// Scene returns the scene settings for the theme.
func Scene(dark bool) SceneConfig {
	c := SceneConfig{
		Background:          lightBackground,
		AmbientIntensity:    1.4,
		PointLightIntensity: 3.0,
		PointLightPosition:  [3]float32{10, 10, 10},
	}
	if dark {
		c.Background = darkBackground
		c.AmbientIntensity = 1.0
		c.PointLightIntensity = 2.5
	}
	return c
}
