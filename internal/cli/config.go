package cli

import (
	"os"
	"path/filepath"
)

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	Output      string
	HistoryFile string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("SCRABBLE_SERVER", "http://localhost:8080"),
		Output:      getEnvOrDefault("SCRABBLE_OUTPUT", OutputText),
		HistoryFile: getEnvOrDefault("SCRABBLE_HISTORY_FILE", defaultHistoryFile()),
	}
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".scrabble_history")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
