package theme

import "github.com/medicalheatmap/smartmattress/internal/mattress"

// Light scheme of the product.
const (
	Primary            = "#1e88e5"
	OnPrimary          = "#ffffff"
	PrimaryContainer   = "#bbdefb"
	Secondary          = "#43a047"
	OnSecondary        = "#ffffff"
	SecondaryContainer = "#c8e6c9"
	ErrorColor         = "#e53935"
	ErrorContainer     = "#ffcdd2"
	Background         = "#fafafa"
	Surface            = "#ffffff"
	OnBackground       = "#212121"
	OnSurface          = "#212121"
	Gray               = "#888888"
	WarningContainer   = "#fff3e0"
	CoolStart          = "#2196f3"
	CoolEnd            = "#64b5f6"
	CameraGreen        = "#00ff00"
	CameraBlack        = "#000000"
)

var pressureColors = map[mattress.PressureLevel]string{
	mattress.PressureLow:      "#2196f3",
	mattress.PressureNormal:   "#4caf50",
	mattress.PressureMedium:   "#ffeb3b",
	mattress.PressureHigh:     "#ff9800",
	mattress.PressureCritical: "#f44336",
}

func PressureColor(level mattress.PressureLevel) string {
	if c, ok := pressureColors[level]; ok {
		return c
	}
	return Gray
}

// HeatmapStops runs from low to critical, top to bottom.
func HeatmapStops() []string {
	levels := mattress.PressureLevels()
	out := make([]string, 0, len(levels))
	for _, l := range levels {
		out = append(out, PressureColor(l))
	}
	return out
}
