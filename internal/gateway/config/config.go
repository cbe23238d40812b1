package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	Sandbox     SandboxConfig
	Generator   GeneratorConfig
	Archive     ArchiveConfig
	Resolver    ResolverConfig
}

type SandboxConfig struct {
	URL     string
	Timeout time.Duration
}

type GeneratorConfig struct {
	// Provider selects the oracle: "gemini" or "groq".
	Provider string
	Model    string
	GroqKey  string
	Timeout  time.Duration
}

type ArchiveConfig struct {
	Enabled   bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type ResolverConfig struct {
	MaxDepth int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8080", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:        *port,
		Env:         env,
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Sandbox: SandboxConfig{
			URL:     firstNonEmpty(strings.TrimSpace(os.Getenv("SANDBOX_URL")), "http://localhost:8100/execute"),
			Timeout: secondsEnv("SANDBOX_TIMEOUT_SECONDS", 30),
		},
		Generator: GeneratorConfig{
			Provider: firstNonEmpty(strings.ToLower(strings.TrimSpace(os.Getenv("LLM_PROVIDER"))), "gemini"),
			Model:    firstNonEmpty(strings.TrimSpace(os.Getenv("LLM_MODEL")), "gemini-2.0-flash"),
			GroqKey:  strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
			Timeout:  secondsEnv("GENERATOR_TIMEOUT_SECONDS", 120),
		},
		Archive:  loadArchiveConfig(),
		Resolver: ResolverConfig{MaxDepth: intEnv("RESOLVER_MAX_DEPTH", 100)},
	}, nil
}

func loadArchiveConfig() ArchiveConfig {
	endpoint := strings.TrimSpace(os.Getenv("ARCHIVE_S3_ENDPOINT"))
	return ArchiveConfig{
		Enabled:   endpoint != "",
		Endpoint:  endpoint,
		Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("ARCHIVE_S3_REGION")), "us-east-1"),
		AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("ARCHIVE_S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
		SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("ARCHIVE_S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
		Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("ARCHIVE_S3_BUCKET")), "aura-candidates"),
		UseSSL:    boolEnv("ARCHIVE_S3_USE_SSL", false),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func intEnv(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func secondsEnv(key string, fallback int) time.Duration {
	return time.Duration(intEnv(key, fallback)) * time.Second
}

func boolEnv(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}
