package mattress

import (
	"fmt"
	"math"

	"github.com/medicalheatmap/smartmattress/internal/log"
)

const (
	MinTemperature     = 0.0
	MaxTemperature     = 20.0
	DefaultTemperature = 15.0

	// tenths of a degree
	temperatureResolution = 10
)

type Zone int

const (
	ZoneFullMattress Zone = iota
	ZoneUpperBody
	ZoneLowerBody
)

var zoneNames = []string{"Full Mattress", "Upper Body", "Lower Body"}

func Zones() []Zone {
	return []Zone{ZoneFullMattress, ZoneUpperBody, ZoneLowerBody}
}

func (z Zone) String() string {
	if z < 0 || int(z) >= len(zoneNames) {
		return "unknown"
	}
	return zoneNames[z]
}

// ParseZone matches the display name of a zone.
func ParseZone(name string) (Zone, error) {
	for i, n := range zoneNames {
		if n == name {
			return Zone(i), nil
		}
	}
	return ZoneFullMattress, fmt.Errorf("unknown zone: %q", name)
}

type Preset struct {
	Name  string
	Value float64
}

var presets = []Preset{
	{Name: "Sleep", Value: 18},
	{Name: "Cool", Value: 10},
	{Name: "Neutral", Value: 15},
	{Name: "Off", Value: 20},
}

func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// TemperatureSetting is the local state of the temperature panel.
// The value always stays inside [MinTemperature, MaxTemperature].
type TemperatureSetting struct {
	value float64
	zone  Zone
}

func NewTemperatureSetting(initial float64, zone Zone) TemperatureSetting {
	t := TemperatureSetting{zone: zone}
	t.Set(initial)
	return t
}

func (t TemperatureSetting) Value() float64 { return t.value }
func (t TemperatureSetting) Zone() Zone     { return t.zone }

// Set rounds v to the slider resolution of 0.1 degrees and clamps it into
// range. NaN is ignored.
func (t *TemperatureSetting) Set(v float64) {
	if math.IsNaN(v) {
		return
	}
	v = math.Round(v*temperatureResolution) / temperatureResolution
	t.value = clamp(v, MinTemperature, MaxTemperature)
}

func (t *TemperatureSetting) Increment(step float64) {
	t.Set(t.value + step)
}

func (t *TemperatureSetting) Decrement(step float64) {
	t.Increment(-step)
}

func (t *TemperatureSetting) SetZone(z Zone) {
	if z < ZoneFullMattress || z > ZoneLowerBody {
		return
	}
	t.zone = z
}

func (t *TemperatureSetting) ApplyPreset(p Preset) {
	t.Set(p.Value)
}

// Degrees is the value rounded down to a whole degree.
func (t TemperatureSetting) Degrees() int {
	return int(math.Floor(t.value))
}

// Display renders the value the way the panel shows it, e.g. 17.8 -> "17°C".
func (t TemperatureSetting) Display() string {
	return fmt.Sprintf("%d°C", t.Degrees())
}

// Fraction is the slider position in [0,1].
func (t TemperatureSetting) Fraction() float64 {
	return (t.value - MinTemperature) / (MaxTemperature - MinTemperature)
}

// Apply has no device to talk to; it only records the request.
func (t TemperatureSetting) Apply() {
	log.Debugf("Apply temperature %.1f for %s (no device attached)", t.value, t.zone)
}
