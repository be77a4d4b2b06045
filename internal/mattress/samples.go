package mattress

// PressureLevel grades the sample heatmap and the prediction zones.
type PressureLevel int

const (
	PressureLow PressureLevel = iota
	PressureNormal
	PressureMedium
	PressureHigh
	PressureCritical
)

func (p PressureLevel) String() string {
	switch p {
	case PressureLow:
		return "Low"
	case PressureNormal:
		return "Normal"
	case PressureMedium:
		return "Medium"
	case PressureHigh:
		return "High"
	case PressureCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

func PressureLevels() []PressureLevel {
	return []PressureLevel{PressureLow, PressureNormal, PressureMedium, PressureHigh, PressureCritical}
}

type BodyPart string

const (
	BodyHead      BodyPart = "Head"
	BodyShoulders BodyPart = "Shoulders"
	BodyTorso     BodyPart = "Torso"
	BodyHips      BodyPart = "Hips"
	BodyLeftLeg   BodyPart = "Left leg"
	BodyRightLeg  BodyPart = "Right leg"
)

// Region is one block of the body silhouette. Width and Height are in
// terminal cells.
type Region struct {
	Part    BodyPart
	Level   PressureLevel
	Width   int
	Height  int
	Warning bool
}

// Silhouette rows, head first. Legs share a row.
type Silhouette [][]Region

func CurrentHeatmap() Silhouette {
	return Silhouette{
		{{Part: BodyHead, Level: PressureLow, Width: 6, Height: 2}},
		{{Part: BodyShoulders, Level: PressureNormal, Width: 16, Height: 2}},
		{{Part: BodyTorso, Level: PressureCritical, Width: 12, Height: 4}},
		{{Part: BodyHips, Level: PressureHigh, Width: 14, Height: 2}},
		{
			{Part: BodyLeftLeg, Level: PressureMedium, Width: 5, Height: 4},
			{Part: BodyRightLeg, Level: PressureMedium, Width: 5, Height: 4},
		},
	}
}

func PredictedHeatmap() Silhouette {
	return Silhouette{
		{{Part: BodyHead, Level: PressureNormal, Width: 8, Height: 2}},
		{{Part: BodyShoulders, Level: PressureCritical, Width: 18, Height: 2, Warning: true}},
		{{Part: BodyTorso, Level: PressureMedium, Width: 14, Height: 4}},
		{{Part: BodyHips, Level: PressureNormal, Width: 16, Height: 2}},
		{
			{Part: BodyLeftLeg, Level: PressureHigh, Width: 6, Height: 4},
			{Part: BodyRightLeg, Level: PressureNormal, Width: 6, Height: 4},
		},
	}
}

type AlertKind int

const (
	AlertPressure AlertKind = iota
	AlertCooling
)

type Alert struct {
	Kind    AlertKind
	Message string
}

func ActiveAlerts() []Alert {
	return []Alert{
		{Kind: AlertPressure, Message: "High pressure detected on lower back (12 min)"},
		{Kind: AlertCooling, Message: "Increased pressure predicted on left heel - cooling activated"},
	}
}

func PredictedIssues() []string {
	return []string{
		"Anticipated pressure build-up in shoulders in 10 minutes",
		"Lower back pressure may increase in 25 minutes",
		"Recommendation: Adjust position or activate cooling",
	}
}

type EventKind int

const (
	EventCooling EventKind = iota
	EventResolved
	EventPosition
	EventWarning
	EventSystem
	EventNight
	EventReset
)

type HistoryEntry struct {
	Kind    EventKind
	Message string
	Time    string
}

func History() []HistoryEntry {
	return []HistoryEntry{
		{Kind: EventCooling, Message: "Cooling triggered on hips", Time: "3:45 PM"},
		{Kind: EventResolved, Message: "High pressure alert resolved", Time: "2:30 PM"},
		{Kind: EventPosition, Message: "Position adjustment recommended", Time: "1:15 PM"},
		{Kind: EventCooling, Message: "Cooling activated on lower back", Time: "12:00 PM"},
		{Kind: EventWarning, Message: "Pressure spike detected", Time: "11:30 AM"},
		{Kind: EventSystem, Message: "System calibrated", Time: "10:00 AM"},
		{Kind: EventNight, Message: "Night mode activated", Time: "9:00 PM"},
		{Kind: EventReset, Message: "Morning position reset", Time: "7:00 AM"},
	}
}
