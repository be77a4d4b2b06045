package config

import "time"

const (
	DefaultSplashDelay = 2500 * time.Millisecond
	DefaultLoadingTick = 20 * time.Millisecond
	DefaultTemperature = 15.0
	DefaultZone        = "Full Mattress"
	DefaultLogLevel    = "info"
)

// DefaultConfig is the file written by `smartmattress config init`.
const DefaultConfig = `# Smart Mattress client configuration

[timing]
# How long the splash screen stays up before the connection screen
splash_delay = "2.5s"
# Period of the loading progress loop; each tick advances 1%
loading_tick = "20ms"

[temperature]
# Initial slider value in degrees, 0 to 20
default = 15.0
# One of "Full Mattress", "Upper Body", "Lower Body"
zone = "Full Mattress"

[ui]
alt_screen = true

[log]
# debug, info, warn, error
level = "info"
# Empty keeps logs off the terminal entirely
file = ""
`
