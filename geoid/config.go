package geoid

import (
	"os"

	"github.com/joho/godotenv"
)

// EnvGeoidModel and EnvGeoidDataDir are the environment variables ConfigFromEnv reads,
// matching spec.md §6's "geoid model name... path to geoid data directory... default follows
// platform conventions and any environment-declared geoid data directory".
const (
	EnvGeoidModel   = "GEOID_MODEL"
	EnvGeoidDataDir = "GEOID_DATA_DIR"
)

// defaultDataDir is the platform-convention fallback when GEOID_DATA_DIR is unset.
const defaultDataDir = "/usr/local/share/geoid"

// ConfigFromEnv resolves a geoid model and data directory from the process environment,
// optionally seeding it from a ".env" file first (the same loading convention the corpus's
// server entrypoint uses via godotenv). A missing .env file is not an error: godotenv.Load
// is best-effort here, exactly as it is in that entrypoint.
func ConfigFromEnv() (model Model, dataDir string) {
	_ = godotenv.Load()

	model = ParseModel(os.Getenv(EnvGeoidModel))

	dataDir = os.Getenv(EnvGeoidDataDir)
	if dataDir == "" {
		dataDir = defaultDataDir
	}
	return model, dataDir
}
