package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type Config struct {
	SheetsEndpointURL string
	SheetsAPIKey      string
	ServerPort        string
	ClientTimeoutSecs int
	MaxBodyBytes      int64
	KafkaBrokers      []string
	KafkaTopic        string
}

var (
	AppConfig     Config
	configLoaded  bool
	configLoadMux sync.Mutex
)

// LoadConfig reads config.yaml from configPath once per process; environment
// variables override file values. The sheet endpoint and api key have no
// defaults on purpose: the credential is deployment configuration, never a
// literal in the code.
func LoadConfig(configPath string) error {
	configLoadMux.Lock()
	defer configLoadMux.Unlock()

	if configLoaded {
		return nil // Config already loaded, no need to read again
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AutomaticEnv() // Read in environment variables that match

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	AppConfig = Config{
		SheetsEndpointURL: getConfigString("sheets.endpoint_url", "SHEETS_ENDPOINT_URL"),
		SheetsAPIKey:      getConfigString("sheets.api_key", "SHEETS_API_KEY"),
		ServerPort:        getConfigString("server.port", "SERVER_PORT"),
		ClientTimeoutSecs: getConfigInt("sheets.timeout_seconds", "SHEETS_TIMEOUT_SECONDS", 30),
		MaxBodyBytes:      int64(getConfigInt("server.max_body_bytes", "SERVER_MAX_BODY_BYTES", 10<<20)),
		KafkaBrokers:      splitBrokers(getConfigString("kafka.brokers", "KAFKA_BROKERS")),
		KafkaTopic:        getConfigString("kafka.topic", "KAFKA_TOPIC"),
	}

	if AppConfig.SheetsEndpointURL == "" {
		return fmt.Errorf("sheets.endpoint_url is not configured")
	}
	if AppConfig.SheetsAPIKey == "" {
		return fmt.Errorf("sheets.api_key is not configured")
	}
	if AppConfig.ServerPort == "" {
		AppConfig.ServerPort = "8080"
	}

	configLoaded = true
	return nil
}

func getConfigString(key string, envVar string) string {
	if value := os.Getenv(envVar); value != "" {
		return value
	}
	return viper.GetString(key)
}

func getConfigInt(key string, envVar string, fallback int) int {
	if value := os.Getenv(envVar); value != "" {
		viper.Set(key, value)
	}
	if v := viper.GetInt(key); v > 0 {
		return v
	}
	return fallback
}

func splitBrokers(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}

func GetConfig() *Config {
	return &AppConfig
}

func ResetConfig() {
	configLoadMux.Lock()
	defer configLoadMux.Unlock()

	configLoaded = false
}
