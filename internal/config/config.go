package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/michelleon/overwatch-stats/internal/domain/careerstats"
	"github.com/michelleon/overwatch-stats/internal/platform/logging"
)

// Config stores runtime configuration for the CLI.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	LogLevel       logging.Level
	LogFormat      logging.Format
	OvrstatBaseURL string
	OvrstatTimeout time.Duration
	TopHeroes      int
	TopHeroesOrder string
	StatRequests   []careerstats.StatRequest
	FetchWorkers   int
	UptraceEnabled bool
	UptraceDSN     string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	logFormat, err := parseLogFormat(getEnv("APP_LOG_FORMAT", string(logging.FormatConsole)))
	if err != nil {
		return Config{}, err
	}

	ovrstatTimeout, err := time.ParseDuration(getEnv("OVRSTAT_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse OVRSTAT_TIMEOUT: %w", err)
	}
	if ovrstatTimeout <= 0 {
		return Config{}, fmt.Errorf("OVRSTAT_TIMEOUT must be > 0")
	}
	ovrstatBaseURL := strings.TrimRight(strings.TrimSpace(getEnv("OVRSTAT_BASE_URL", "https://ovrstat.com/stats/pc/us")), "/")
	if ovrstatBaseURL == "" {
		return Config{}, fmt.Errorf("OVRSTAT_BASE_URL cannot be empty")
	}

	topHeroes, err := getEnvAsInt("STATS_TOP_HEROES", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_TOP_HEROES: %w", err)
	}
	if topHeroes < 0 {
		return Config{}, fmt.Errorf("STATS_TOP_HEROES must be >= 0")
	}

	topHeroesOrder := strings.ToLower(strings.TrimSpace(getEnv("STATS_TOP_HEROES_ORDER", "asc")))
	if topHeroesOrder != "asc" && topHeroesOrder != "desc" {
		return Config{}, fmt.Errorf("invalid STATS_TOP_HEROES_ORDER %q: valid values are asc, desc", topHeroesOrder)
	}

	statRequests, err := parseStatRequests(getEnv("STATS_COLUMNS", ""))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_COLUMNS: %w", err)
	}
	if len(statRequests) == 0 {
		statRequests = careerstats.DefaultStatRequests()
	}

	fetchWorkers, err := getEnvAsInt("STATS_FETCH_WORKERS", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_FETCH_WORKERS: %w", err)
	}
	if fetchWorkers < 1 {
		return Config{}, fmt.Errorf("STATS_FETCH_WORKERS must be >= 1")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	return Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("APP_SERVICE_NAME", "overwatch-stats"),
		ServiceVersion: getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:       logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		LogFormat:      logFormat,
		OvrstatBaseURL: ovrstatBaseURL,
		OvrstatTimeout: ovrstatTimeout,
		TopHeroes:      topHeroes,
		TopHeroesOrder: topHeroesOrder,
		StatRequests:   statRequests,
		FetchWorkers:   fetchWorkers,
		UptraceEnabled: uptraceEnabled,
		UptraceDSN:     uptraceDSN,
	}, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseStatRequests(raw string) ([]careerstats.StatRequest, error) {
	items := splitCSV(raw)
	out := make([]careerstats.StatRequest, 0, len(items))
	for _, item := range items {
		req, err := careerstats.ParseStatRequest(item)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}

func parseLogFormat(v string) (logging.Format, error) {
	value := logging.Format(strings.ToLower(strings.TrimSpace(v)))
	switch value {
	case logging.FormatConsole, logging.FormatJSON:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_LOG_FORMAT %q: valid values are %s, %s", v, logging.FormatConsole, logging.FormatJSON)
	}
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
