package tui

type connectionDialog int

const (
	dialogNone connectionDialog = iota
	dialogScanner
	dialogSerial
)

type DashboardTab int

const (
	TabOverview DashboardTab = iota
	TabPrediction
	TabHistory
	TabTemperature
)

var tabTitles = []string{"Dashboard", "AI Prediction", "History", "Temperature"}

func (t DashboardTab) Title() string {
	if t < 0 || int(t) >= len(tabTitles) {
		return ""
	}
	return tabTitles[t]
}

func dashboardTabs() []DashboardTab {
	return []DashboardTab{TabOverview, TabPrediction, TabHistory, TabTemperature}
}

// temperatureRow is the focused control row on the temperature panel.
type temperatureRow int

const (
	rowZone temperatureRow = iota
	rowSlider
	rowPresets
	rowApply
)
