package configs

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	ContextPath     string
	// APIKey is the generative-language credential. Empty disables insight calls.
	APIKey string
}

var Env *EnvConfig

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "weather-pulse"),
		ContextPath:     getStringOrDefault("CONTEXT_PATH", "/weather-pulse"),
		APIKey:          viper.GetString("API_KEY"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
