package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ConfigDir string
	Profile   string
	LogPath   string
	LogLevel  slog.Level
	Format    string
	Simulate  int
}

// LoadConfig reads .env (optional) and the ZODIAC_* environment.
func LoadConfig() (*Config, error) {
	// a missing .env is fine; only the process environment matters then
	_ = godotenv.Load()

	level, err := loadLevel("ZODIAC_LOG_LEVEL", slog.LevelInfo)
	if err != nil {
		return nil, err
	}
	simulate, err := loadInt("ZODIAC_SIMULATE", 0)
	if err != nil {
		return nil, err
	}

	return &Config{
		ConfigDir: loadString("ZODIAC_CONFIG_DIR", "config"),
		Profile:   os.Getenv("ZODIAC_PROFILE"),
		LogPath:   loadString("ZODIAC_LOG_PATH", "logs/zodiac_calculator.log"),
		LogLevel:  level,
		Format:    os.Getenv("ZODIAC_FORMAT"),
		Simulate:  simulate,
	}, nil
}

func loadString(key, defValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defValue
}

func loadInt(key string, defValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func loadLevel(key string, defValue slog.Level) (slog.Level, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defValue, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(value)); err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return l, nil
}
