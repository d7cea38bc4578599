package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagRoot    = flag.String("root", "", "Path to the sm64 decomp source tree")
	flagVariant = flag.String("variant", "", "Build variant: jp or us")
	flagAddr    = flag.String("addr", "", "Viewer server listen address")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagRoot != "" {
		cfg.Data.DecompRoot = *flagRoot
	}
	if *flagVariant != "" {
		cfg.Data.Variant = *flagVariant
	}
	if *flagAddr != "" {
		cfg.Server.Addr = *flagAddr
	}
}
