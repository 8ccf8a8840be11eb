package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Agent ports.
	BeanPort      string `mapstructure:"BEAN_AGENT_PORT"`
	JoyPort       string `mapstructure:"JOY_AGENT_PORT"`
	OrganizerPort string `mapstructure:"ORGANIZER_PORT"`

	// Collaborator base URLs. When empty they are derived from the
	// agent ports on localhost.
	BeanURL string `mapstructure:"BEAN_AGENT_URL"`
	JoyURL  string `mapstructure:"JOY_AGENT_URL"`

	// Scheduling parameters.
	HorizonDays       int `mapstructure:"HORIZON_DAYS"`
	AgentTimeoutSecs  int `mapstructure:"AGENT_TIMEOUT_SECS"`
	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Optional Gemini advisory layer. Empty disables it.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("BEAN_AGENT_PORT", "8001")
	viper.SetDefault("JOY_AGENT_PORT", "8002")
	viper.SetDefault("ORGANIZER_PORT", "8003")
	viper.SetDefault("BEAN_AGENT_URL", "")
	viper.SetDefault("JOY_AGENT_URL", "")
	viper.SetDefault("HORIZON_DAYS", 10)
	viper.SetDefault("AGENT_TIMEOUT_SECS", 10)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("GEMINI_API_KEY", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if AppConfig.BeanURL == "" {
		AppConfig.BeanURL = fmt.Sprintf("http://localhost:%s", AppConfig.BeanPort)
	}
	if AppConfig.JoyURL == "" {
		AppConfig.JoyURL = fmt.Sprintf("http://localhost:%s", AppConfig.JoyPort)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
