package theme

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/medicalheatmap/smartmattress/internal/log"
)

// ParseHex parses a "#rrggbb" or "#rgb" colour.
func ParseHex(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parse colour %q: %w", hex, err)
	}
	return c, nil
}

func mustParse(hex string) (colorful.Color, bool) {
	c, err := ParseHex(hex)
	if err != nil {
		log.Warnf("%v", err)
		return colorful.Color{}, false
	}
	return c, true
}

// Blend mixes a towards b in RGB space; t=0 is a, t=1 is b. An
// unparsable input is logged and a is returned as given.
func Blend(a, b string, t float64) string {
	ca, okA := mustParse(a)
	cb, okB := mustParse(b)
	if !okA || !okB {
		return a
	}
	t = math.Max(0, math.Min(1, t))
	return ca.BlendRgb(cb, t).Clamped().Hex()
}

// WithAlpha flattens fg drawn at alpha over bg, which is how translucent
// overlays end up on a terminal that has no alpha channel.
func WithAlpha(fg, bg string, alpha float64) string {
	return Blend(bg, fg, alpha)
}

// Gradient samples n evenly spaced colours along the given stops.
func Gradient(stops []string, n int) []string {
	if n <= 0 || len(stops) == 0 {
		return nil
	}
	if len(stops) == 1 || n == 1 {
		out := make([]string, n)
		for i := range out {
			out[i] = stops[0]
		}
		return out
	}

	out := make([]string, n)
	segments := float64(len(stops) - 1)
	for i := 0; i < n; i++ {
		pos := float64(i) / float64(n-1) * segments
		idx := int(math.Floor(pos))
		if idx >= len(stops)-1 {
			idx = len(stops) - 2
		}
		out[i] = Blend(stops[idx], stops[idx+1], pos-float64(idx))
	}
	return out
}

// Luminance is the WCAG relative luminance of hex, 0 when it does not parse.
func Luminance(hex string) float64 {
	c, ok := mustParse(hex)
	if !ok {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func ContrastRatio(hexFg, hexBg string) float64 {
	lumFg := Luminance(hexFg)
	lumBg := Luminance(hexBg)
	lighter := math.Max(lumFg, lumBg)
	darker := math.Min(lumFg, lumBg)
	return (lighter + 0.05) / (darker + 0.05)
}

// ReadableOn picks whichever of light or dark contrasts more with bg.
func ReadableOn(bg, light, dark string) string {
	if ContrastRatio(light, bg) >= ContrastRatio(dark, bg) {
		return light
	}
	return dark
}
