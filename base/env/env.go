package env

import (
	"os"

	"github.com/joho/godotenv"
)

// Load reads .env style files into the process environment. Variables that
// are already set win over file values. Missing files are ignored.
func Load(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	existing := []string{}
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// PodName example: gaslex-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName example: devnet
func EnvName() string {
	return os.Getenv("ENV_NAME")
}
