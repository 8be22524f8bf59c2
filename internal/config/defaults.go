package config

import (
	"time"

	"codeberg.org/mutker/filterdash/internal/health"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultInterval      = 2
	defaultTheme         = ThemeDark
	defaultRange         = "full"
	defaultNearTermLimit = 10

	defaultMaxUses     = 50
	defaultCurrentUses = 42
	defaultPressurePSI = 55
	defaultFlowRateGPM = 1.2
	defaultUptime      = 292*time.Hour + 32*time.Minute
	defaultFirmware    = "v2.1.3"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("interval", defaultInterval)
	v.SetDefault("theme", defaultTheme)
	v.SetDefault("range", defaultRange)
	v.SetDefault("once", false)
	v.SetDefault("debug", false)
	v.SetDefault("verbose", false)
	v.SetDefault("log_level", "")
	v.SetDefault("log_file", "")
	v.SetDefault("near_term_limit", defaultNearTermLimit)

	v.SetDefault("device.max_uses", defaultMaxUses)
	v.SetDefault("device.current_uses", defaultCurrentUses)
	v.SetDefault("device.pressure_psi", defaultPressurePSI)
	v.SetDefault("device.flow_rate_gpm", defaultFlowRateGPM)
	v.SetDefault("device.uptime", defaultUptime)
	v.SetDefault("device.firmware", defaultFirmware)
	v.SetDefault("device.components", []map[string]any{
		{"name": "Pump Status", "status": "OK"},
		{"name": "TDS Meter", "status": "ACTIVE"},
		{"name": "Temperature Sensor", "status": "ACTIVE"},
		{"name": "Ultrasonic", "status": "CHECK"},
	})
	v.SetDefault("device.kpis", []map[string]any{
		{"title": "Total Dissolved Solids (TDS)", "unit": "ppm", "before": 280, "after": 15},
		{"title": "Electrical Conductivity (EC)", "unit": "µS/cm", "before": 560, "after": 30},
		{"title": "Temperature", "unit": "°C", "before": 22, "after": 21},
	})

	th := health.DefaultThresholds()
	v.SetDefault("thresholds.life_critical", th.LifeCritical)
	v.SetDefault("thresholds.life_warning", th.LifeWarning)
	v.SetDefault("thresholds.pressure_low", th.PressureLow)
	v.SetDefault("thresholds.pressure_high", th.PressureHigh)
}

// flagKeys maps command line flag names to configuration keys.
var flagKeys = map[string]string{
	"interval":     "interval",
	"theme":        "theme",
	"range":        "range",
	"once":         "once",
	"debug":        "debug",
	"verbose":      "verbose",
	"log-level":    "log_level",
	"log-file":     "log_file",
	"max-uses":     "device.max_uses",
	"current-uses": "device.current_uses",
	"pressure":     "device.pressure_psi",
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("filterdash", pflag.ContinueOnError)

	fs.String("config", "", "Path to configuration file")
	fs.Int("interval", defaultInterval, "Seconds between dashboard refreshes")
	fs.String("theme", defaultTheme, "Colour theme: dark or light")
	fs.String("range", defaultRange, "Initial chart range: near, full or projected")
	fs.Bool("once", false, "Print the dashboard once and exit")
	fs.Bool("debug", false, "Enable debugging mode")
	fs.Bool("verbose", false, "Enable verbose logging")
	fs.String("log-level", "", "Log level: debug, info, warning or error")
	fs.String("log-file", "", "Write logs to this file")
	fs.Int("max-uses", defaultMaxUses, "Rated number of filter uses")
	fs.Int("current-uses", defaultCurrentUses, "Number of uses so far")
	fs.Float64("pressure", defaultPressurePSI, "Water pressure in PSI")

	return fs
}

// bindFlags binds only flags given on the command line, so unset flags do
// not shadow values from the file or environment.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var bindErr error
	fs.Visit(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || bindErr != nil {
			return
		}
		bindErr = v.BindPFlag(key, f)
	})

	return bindErr
}
