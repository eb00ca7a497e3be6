package api

import (
	"sync"
	"time"

	"github.com/bhumika0029/polling-app/logging"
	"github.com/spf13/viper"
)

type Config struct {
	StorageConfig
	ServerConfig
	UpstreamConfig
	FeedConfig
}

type StorageConfig struct {
	TableNameSessions string
	SessionTTL        time.Duration
}

type ServerConfig struct {
	Port     int
	LogLevel string
}

type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

type FeedConfig struct {
	PageSize           int
	MaxChoices         int
	WinnerBeforeExpiry bool
	IdleTimeout        time.Duration
}

var settingsOnce sync.Once

func ReadConfig() *Config {

	var conf = &Config{
		StorageConfig: StorageConfig{
			TableNameSessions: getString("storage.TableNameSessions"),
			SessionTTL:        time.Duration(getIntOrDefault("storage.sessionTTLHours", 24)) * time.Hour,
		},
		ServerConfig: ServerConfig{
			Port:     getIntOrDefault("server.port", 8080),
			LogLevel: getStringOrDefault("server.logLevel", "debug"),
		},
		UpstreamConfig: UpstreamConfig{
			BaseURL: getString("upstream.baseUrl"),
			Timeout: time.Duration(getIntOrDefault("upstream.timeoutSeconds", 10)) * time.Second,
		},
		FeedConfig: FeedConfig{
			PageSize:           getIntOrDefault("feed.pageSize", 30),
			MaxChoices:         getIntOrDefault("feed.maxChoices", 6),
			WinnerBeforeExpiry: getBoolOrDefault("feed.winnerBeforeExpiry", false),
			IdleTimeout:        time.Duration(getIntOrDefault("feed.idleMinutes", 30)) * time.Minute,
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getString(name string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Fatalf("required environment variable '%s' is missing", name)
	return ""
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getBoolOrDefault(name string, def bool) bool {
	if viper.IsSet(name) {
		v := viper.GetBool(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
