package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"ecogwiki.org/ecogwiki-web/internal/config"
	"ecogwiki.org/ecogwiki-web/internal/layout"
	mw "ecogwiki.org/ecogwiki-web/internal/middleware"
	"ecogwiki.org/ecogwiki-web/internal/sessions"
)

// appVersion is the cache-busting token appended to static resource
// links. Bump on deploys that change statics.
const appVersion = "0.1.0_20260830"

var (
	cfg         config.Config
	shell       *layout.Shell
	store       *pageStore
	environment layout.Environment
	logger      *zap.Logger
)

func main() {
	var (
		addr       string
		configPath string
		pagesDir   string
		staticsDir string
	)
	// Port resolution: prefer ECOGWIKI_PORT, then PORT, else 8080
	port := os.Getenv("ECOGWIKI_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}
	flag.StringVar(&addr, "addr", ":"+port, "HTTP listen address")
	flag.StringVar(&configPath, "config", "", "service configuration file (YAML)")
	flag.StringVar(&pagesDir, "pages", "pages", "wiki page sources directory")
	flag.StringVar(&staticsDir, "statics", "statics", "static assets directory")
	flag.Parse()

	var err error
	logger, err = mw.NewLogger()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg = config.Default()
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			logger.Fatal("load config", zap.Error(err))
		}
	}

	environment = layout.EnvLocal
	if strings.ToLower(os.Getenv("ECOGWIKI_ENV")) == "production" {
		environment = layout.EnvProduction
	}

	shell = layout.NewShell(sessions.Builder{})
	store, err = loadPages(pagesDir)
	if err != nil {
		logger.Fatal("load pages", zap.Error(err))
	}

	r := newRouter(logger, staticsDir)

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("web listening", zap.String("addr", addr), zap.String("environment", string(environment)))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("listen", zap.Error(err))
	}
}

func newRouter(logger *zap.Logger, staticsDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP. Ensure only trusted proxies
	// can set these headers in production environments.
	r.Use(chimw.RealIP)
	r.Use(mw.Session)
	r.Use(mw.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	statics := http.StripPrefix("/statics", mw.AssetsWithCache(staticsDir))
	r.Handle("/statics/*", statics)

	r.Get("/sp.search", SearchHandler)
	r.Get("/sp.changes", ChangesHandler)
	r.Get("/sp.posts", PostsHandler)
	r.Get("/sp.preferences", PreferencesHandler)
	r.Get("/sp.login", LoginHandler)
	r.Get("/sp.logout", LogoutHandler)
	r.Get("/*", PageHandler)

	return r
}
