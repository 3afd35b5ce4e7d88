package config

import (
	"os"
	"strings"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type Config struct {
	Mode     Mode
	HTTPAddr string

	StoreDriver string // fs|sqlite|postgres
	DataDir     string // for fs
	StoreDSN    string // for sqlite/postgres

	GeminiAPIKey string
	GeminiModel  string

	TopicAPIBase  string // Wikimedia pageviews base URL
	FallbackTopic string

	CORSOriginsOnline  []string
	CORSOriginsOffline []string

	ServeUI bool
}

func FromEnv() Config {
	mode := Mode(os.Getenv("MODE"))
	if mode == "" {
		mode = ModeOffline
	}
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		Mode:     mode,
		HTTPAddr: addr,

		StoreDriver: envOr("STORE_DRIVER", "fs"),
		DataDir:     envOr("DATA_DIR", "./data"),
		StoreDSN:    envOr("STORE_DSN", ""),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  envOr("GEMINI_MODEL", "gemini-2.0-flash"),

		TopicAPIBase:  envOr("TOPIC_API_BASE", "https://wikimedia.org/api/rest_v1/metrics/pageviews/top/en.wikipedia/all-access"),
		FallbackTopic: envOr("FALLBACK_TOPIC", "Artificial Intelligence"),

		CORSOriginsOnline:  csvOr("CORS_ORIGINS_ONLINE", "https://microlearn.example.com"),
		CORSOriginsOffline: csvOr("CORS_ORIGINS_OFFLINE", "http://localhost:3000,http://localhost:8080"),

		ServeUI: envBool("SERVE_UI", true),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
