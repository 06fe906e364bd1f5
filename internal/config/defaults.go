package config

const (
	defaultConfigPath        = "~/.config/stationdeck/config.toml"
	defaultDataDir           = "~/.local/share/stationdeck"
	defaultExportDir         = "~/.local/share/stationdeck/exports"
	defaultLogDir            = "~/.local/share/stationdeck/logs"
	defaultCollationLanguage = "en"
	defaultAppVersion        = "1.0.0"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"

	databaseFileName = "catalog.db"
	logFileName      = "stationdeck.log"

	networkCodeEnv = "STATIONDECK_DEFAULT_NETWORK_CODE"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			ExportDir: defaultExportDir,
			LogDir:    defaultLogDir,
		},
		Catalog: Catalog{
			CollationLanguage: defaultCollationLanguage,
		},
		Ads: Ads{
			AppVersion: defaultAppVersion,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
