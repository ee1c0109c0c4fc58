package config

// SettingsConfig controls where user preferences are stored
type SettingsConfig struct {
	AppName string
	ItemKey string
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName: "arena-duel",
		ItemKey: "settings",
	}
}
