package scanconfig

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// DefaultDotEnvFile is loaded from the working directory at startup when present.
const DefaultDotEnvFile = ".env"

// LoadDotEnv loads the given .env files into the process environment.
// Variables that are already set are left untouched; missing files are ignored.
func LoadDotEnv(files ...string) error {
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to stat env file %s: %w", f, err)
		}
		existing = append(existing, f)
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env files: %w", err)
	}
	return nil
}
