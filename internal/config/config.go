package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultPerPage   = 10
	DefaultObjectKey = "trending.json"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	GitHubToken string
	APIBaseURL  string
	DebugMode   bool
	StateFile   string
	PerPage     int

	S3Bucket  string
	S3Key     string
	AWSRegion string
}

// Load reads envFile (or ./.env when empty) into the environment and then
// builds a Config. A missing default .env is not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, err
		}
	} else if err := godotenv.Load(); err == nil {
		slog.Debug("Loaded .env")
	}
	return FromEnvironment(), nil
}

// FromEnvironment creates a Config from environment variables.
func FromEnvironment() Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("STATE_FILE", DefaultStateFile())
	v.SetDefault("PER_PAGE", DefaultPerPage)
	v.SetDefault("S3_OBJECT_KEY", DefaultObjectKey)

	perPage := v.GetInt("PER_PAGE")
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	return Config{
		GitHubToken: v.GetString("GITHUB_TOKEN"),
		APIBaseURL:  v.GetString("API_BASE_URL"),
		DebugMode:   truthy(v.GetString("DEBUG")),
		StateFile:   v.GetString("STATE_FILE"),
		PerPage:     perPage,
		S3Bucket:    v.GetString("S3_BUCKET_NAME"),
		S3Key:       v.GetString("S3_OBJECT_KEY"),
		AWSRegion:   v.GetString("AWS_REGION"),
	}
}

// DefaultStateFile is $HOME/.gh-repo-search/state.gob, or a file in the
// temp dir when there is no home directory.
func DefaultStateFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), "gh-repo-search-state.gob")
	}
	return filepath.Join(home, ".gh-repo-search", "state.gob")
}

func truthy(s string) bool {
	return s != "" && s != "0" && strings.ToLower(s) != "false"
}
