// README: Smoke runner against a running travel API; executes HTTP checks and prints results.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
)

func main() {
	cfg := loadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	runner := NewRunner(cfg)
	results := runner.RunAll(ctx)

	fmt.Println("\n== Summary ==")
	pass, fail, skipped := 0, 0, 0
	for _, r := range results {
		switch r.Status {
		case StatusPass:
			pass++
		case StatusFail:
			fail++
		case StatusSkip:
			skipped++
		}
	}
	fmt.Printf("PASS=%d FAIL=%d SKIP=%d\n", pass, fail, skipped)

	if fail > 0 {
		os.Exit(1)
	}
}

type Config struct {
	BaseURL       string
	AdminUser     string
	AdminPassword string
	Live          bool
	Timeout       time.Duration
	Concurrency   int
	Duration      time.Duration
}

func loadConfig() Config {
	var cfg Config
	flag.StringVar(&cfg.BaseURL, "base-url", envOrDefault("TRAVEL_SMOKE_BASE_URL", "http://localhost:5000"), "API base URL")
	flag.StringVar(&cfg.AdminUser, "admin-user", envOrDefault("TRAVEL_ADMIN_USERNAME", "admin"), "Admin username")
	flag.StringVar(&cfg.AdminPassword, "admin-password", envOrDefault("TRAVEL_ADMIN_PASSWORD", "arya123"), "Admin password")
	flag.BoolVar(&cfg.Live, "live", envOrDefaultBool("TRAVEL_SMOKE_LIVE", false), "Run cases that call the upstream model")
	flag.DurationVar(&cfg.Timeout, "timeout", envOrDefaultDuration("TRAVEL_SMOKE_TIMEOUT", 60*time.Second), "Total timeout")
	flag.IntVar(&cfg.Concurrency, "concurrency", envOrDefaultInt("TRAVEL_SMOKE_CONCURRENCY", 20), "Concurrency for load case")
	flag.DurationVar(&cfg.Duration, "duration", envOrDefaultDuration("TRAVEL_SMOKE_DURATION", 5*time.Second), "Duration for load case")
	flag.Parse()
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		v = strings.ToLower(v)
		return v == "1" || v == "true" || v == "yes"
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var n int
		_, _ = fmt.Sscanf(v, "%d", &n)
		if n > 0 {
			return n
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
