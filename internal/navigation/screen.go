package navigation

type Screen int

const (
	ScreenSplash Screen = iota
	ScreenConnection
	ScreenLoading
	ScreenDashboard
)

func (s Screen) String() string {
	switch s {
	case ScreenSplash:
		return "splash"
	case ScreenConnection:
		return "connection"
	case ScreenLoading:
		return "loading"
	case ScreenDashboard:
		return "dashboard"
	default:
		return "unknown"
	}
}

// edges is the complete forward topology. Dashboard has no outgoing edge.
var edges = map[Screen]Screen{
	ScreenSplash:     ScreenConnection,
	ScreenConnection: ScreenLoading,
	ScreenLoading:    ScreenDashboard,
}

// Next returns the only screen reachable from s, if any.
func Next(s Screen) (Screen, bool) {
	next, ok := edges[s]
	return next, ok
}
