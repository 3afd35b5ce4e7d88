package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/microlearn/microlearn/internal/api/http"
	"github.com/microlearn/microlearn/internal/config"
	"github.com/microlearn/microlearn/internal/db"
	"github.com/microlearn/microlearn/internal/generate"
	"github.com/microlearn/microlearn/internal/lesson"
	"github.com/microlearn/microlearn/internal/topic"
	"github.com/microlearn/microlearn/web"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// --- Content store ---
	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("content store: %v", err)
	}

	// --- Generation ---
	gemini, err := generate.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("gemini: %v", err)
	}
	gen := generate.NewService(gemini)
	picker := topic.New(cfg.TopicAPIBase, cfg.FallbackTopic)
	daily := lesson.NewService(store, picker, gen)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	// Generation calls can be slow; the timeout bounds them.
	r.Use(middleware.Timeout(60 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Route("/api", func(ar chi.Router) {
		api.Mount(ar, daily, store, gen)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	if cfg.ServeUI {
		r.Handle("/*", web.Handler())
	}

	log.Printf("listening on %s (mode=%s, store=%s)", cfg.HTTPAddr, cfg.Mode, cfg.StoreDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

func openStore(ctx context.Context, cfg config.Config) (lesson.Store, error) {
	switch cfg.StoreDriver {
	case "sqlite", "postgres":
		dbh, err := db.Open(ctx, db.Driver(cfg.StoreDriver), cfg.StoreDSN)
		if err != nil {
			return nil, err
		}
		return lesson.NewSQLStore(dbh), nil
	default:
		return lesson.NewFSStore(cfg.DataDir)
	}
}
