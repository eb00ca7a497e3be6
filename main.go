// @title Polling App Feed API
// @version 1.0
// @description Poll feed gateway: paginated poll lists, tentative selections, voting, results and poll creation

// @securityDefinitions.apikey ViewerSession
// @in header
// @name x-session-id
package main

import (
	_ "github.com/bhumika0029/polling-app/docs"

	"github.com/bhumika0029/polling-app/api"
	"github.com/bhumika0029/polling-app/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func main() {
	// .env is optional outside local runs
	_ = godotenv.Load()

	// Load env
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logging.Log.Errorf("Failed to read config file: %v", err)
		panic("Failed to read config file: " + err.Error())
	}

	logging.BootstrapLogger(viper.GetString("server.logLevel"))

	// Read config
	config := api.ReadConfig()

	// Start the service (inside the lambda)
	service := api.NewServer(config)
	service.Start()
}
