package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Dosada05/league-stats/models"
	"github.com/Dosada05/league-stats/repositories"
	"github.com/Dosada05/league-stats/storage"
)

// StatsDefaults apply when a request omits the corresponding query parameter.
type StatsDefaults struct {
	Scope       models.Scope
	FormWindow  int
	IncludeLive bool
	LastN       int
}

type Config struct {
	DatabaseDriver repositories.Dialect
	DatabaseURL    string
	DBTimeout      time.Duration
	JWTSecretKey   string
	ServerPort     int
	LogLevel       slog.Level
	CORSOrigins    []string
	Stats          StatsDefaults
	R2             storage.R2Config

	// CupInitialOwnerID enables the cup endpoint when set.
	CupInitialOwnerID *int
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) (*Config, error) {
	env := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	driver, err := repositories.ParseDialect(env("DATABASE_DRIVER", string(repositories.DialectPostgres)))
	if err != nil {
		return nil, fmt.Errorf("invalid DATABASE_DRIVER: %w", err)
	}

	dbURL := env("DATABASE_URL", "")
	if dbURL == "" {
		return nil, errors.New("DATABASE_URL environment variable is not set")
	}

	timeout, err := time.ParseDuration(env("DB_CONNECT_TIMEOUT", "5s"))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid DB_CONNECT_TIMEOUT %q", getenv("DB_CONNECT_TIMEOUT"))
	}

	port, err := strconv.Atoi(env("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(env("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	scope, err := models.ParseScope(getenv("STATS_DEFAULT_SCOPE"), models.ScopeTournaments)
	if err != nil {
		return nil, fmt.Errorf("invalid STATS_DEFAULT_SCOPE: %w", err)
	}

	window, err := strconv.Atoi(env("STATS_FORM_WINDOW", "10"))
	if err != nil || window < 1 {
		return nil, fmt.Errorf("STATS_FORM_WINDOW must be a positive integer, got %q", getenv("STATS_FORM_WINDOW"))
	}

	lastN, err := strconv.Atoi(env("STATS_LAST_N", "5"))
	if err != nil || lastN < 0 {
		return nil, fmt.Errorf("STATS_LAST_N must be a non-negative integer, got %q", getenv("STATS_LAST_N"))
	}

	includeLive, err := strconv.ParseBool(env("STATS_INCLUDE_LIVE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid STATS_INCLUDE_LIVE: %w", err)
	}

	r2 := storage.R2Config{
		AccountID:       env("R2_ACCOUNT_ID", ""),
		AccessKeyID:     env("R2_ACCESS_KEY_ID", ""),
		SecretAccessKey: env("R2_SECRET_ACCESS_KEY", ""),
		BucketName:      env("R2_BUCKET_NAME", ""),
		PublicBaseURL:   env("R2_PUBLIC_BASE_URL", ""),
		Endpoint:        env("R2_ENDPOINT", ""),
	}
	if r2.Enabled() {
		if err := r2.Validate(); err != nil {
			return nil, err
		}
	}

	var cupOwner *int
	if raw := env("CUP_INITIAL_OWNER_ID", ""); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("CUP_INITIAL_OWNER_ID must be a positive integer, got %q", raw)
		}
		cupOwner = &id
	}

	var origins []string
	for _, o := range strings.Split(env("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return &Config{
		DatabaseDriver: driver,
		DatabaseURL:    dbURL,
		DBTimeout:      timeout,
		JWTSecretKey:   env("JWT_SECRET_KEY", ""),
		ServerPort:     port,
		LogLevel:       level,
		CORSOrigins:    origins,
		Stats: StatsDefaults{
			Scope:       scope,
			FormWindow:  window,
			IncludeLive: includeLive,
			LastN:       lastN,
		},
		R2:                r2,
		CupInitialOwnerID: cupOwner,
	}, nil
}
