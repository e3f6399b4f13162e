package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration. Values come from config.yaml
// when present; environment variables (including a .env file) override it.
type Config struct {
	InputPath  string `yaml:"input_path"`
	ReportPath string `yaml:"report_path"`

	TopWords       int  `yaml:"top_words"`
	MinTokenLength int  `yaml:"min_token_length"`
	StemTokens     bool `yaml:"stem_tokens"`

	ExtraStopwords []string `yaml:"extra_stopwords"`

	Verbose bool `yaml:"verbose"`
}

const defaultConfigFile = "config.yaml"

// Load reads the optional config file and the .env file, applies environment
// overrides, and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	cfg := &Config{
		InputPath:      "data/reviews.csv",
		ReportPath:     "report.txt",
		TopWords:       20,
		MinTokenLength: 3,
	}

	path := getEnv("REVIEWINSIGHT_CONFIG", defaultConfigFile)
	if err := cfg.applyFile(path); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] Could not read %s: %v", path, err)
	}

	cfg.InputPath = getEnv("INPUT_PATH", cfg.InputPath)
	cfg.ReportPath = getEnv("REPORT_PATH", cfg.ReportPath)
	cfg.TopWords = getEnvInt("TOP_WORDS", cfg.TopWords)
	cfg.MinTokenLength = getEnvInt("MIN_TOKEN_LENGTH", cfg.MinTokenLength)
	cfg.StemTokens = getEnvBool("STEM_TOKENS", cfg.StemTokens)
	cfg.Verbose = getEnvBool("VERBOSE", cfg.Verbose)
	if extra := getEnvList("EXTRA_STOPWORDS"); len(extra) > 0 {
		cfg.ExtraStopwords = append(cfg.ExtraStopwords, extra...)
	}

	return cfg
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}

// getEnvList splits a comma-separated env value, dropping empty entries.
func getEnvList(key string) []string {
	val := os.Getenv(key)
	if val == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
