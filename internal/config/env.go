// Package config provides configuration loading for the dashboard: .env files through
// godotenv and hierarchical settings through viper.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

var envOnce sync.Once

// LoadEnv loads environment variables from a .env file in the working directory or its
// parent, once per process. It returns the file that was loaded, or "" when none was
// found. Variables already set in the environment are not overridden.
func LoadEnv() (string, error) {
	var (
		loaded string
		err    error
	)
	envOnce.Do(func() {
		loaded, err = loadEnvFile()
	})
	return loaded, err
}

func loadEnvFile() (string, error) {
	for _, candidate := range []string{".env", filepath.Join("..", ".env")} {
		if _, statErr := os.Stat(candidate); statErr != nil {
			continue
		}
		if err := godotenv.Load(candidate); err != nil {
			return "", err
		}
		return candidate, nil
	}
	return "", nil
}
