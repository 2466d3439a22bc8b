package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"theater-billing/internal/auth"
	billingapp "theater-billing/internal/billing/application"
	"theater-billing/internal/billing/infrastructure/file"
	"theater-billing/internal/billing/infrastructure/memory"
	billingrepo "theater-billing/internal/billing/infrastructure/postgres"
	billinginterfaces "theater-billing/internal/billing/interfaces"
	"theater-billing/internal/observability/metrics"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := loadConfig()
	logger := log.New(os.Stdout, "", log.LstdFlags)

	billingCfg, err := billingapp.LoadConfig()
	if err != nil {
		logger.Fatalf("billing config error: %v", err)
	}

	metrics.Init()

	var catalogs billingapp.CatalogProvider
	switch billingCfg.Catalog.Source {
	case billingapp.CatalogSourceMemory:
		catalogs = memory.NewCatalogRepository(billingCfg.Catalog.Plays)
	case billingapp.CatalogSourceFile:
		catalogFile, err := file.NewCatalogFile(billingCfg.Catalog.File)
		if err != nil {
			logger.Fatalf("catalog file error: %v", err)
		}
		catalogs = catalogFile
	case billingapp.CatalogSourcePostgres:
		if cfg.DatabaseURL == "" {
			logger.Fatal("DATABASE_URL or PG_DSN is required for the postgres catalog")
		}
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			logger.Fatalf("db open error: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Fatalf("db ping error: %v", err)
		}
		repo, err := billingrepo.NewCatalogRepository(db, billingrepo.WithPlaysTable(billingCfg.Catalog.Table))
		if err != nil {
			logger.Fatalf("catalog repo error: %v", err)
		}
		catalogs = repo
	}
	logger.Printf("play catalog source: %s", billingCfg.Catalog.Source)
	logger.Printf("statement exports: pdf=%t xlsx=%t",
		billingCfg.FormatEnabled(billinginterfaces.FormatPDF), billingCfg.FormatEnabled(billinginterfaces.FormatXLSX))

	statementService, err := billingapp.NewStatementService(catalogs, logger)
	if err != nil {
		logger.Fatalf("statement service error: %v", err)
	}
	statementHandler, err := billinginterfaces.NewStatementHandler(statementService, billingCfg.Formats, logger)
	if err != nil {
		logger.Fatalf("statement handler error: %v", err)
	}

	policy := auth.NewDefaultPolicy([]string{"/healthz", "/metrics"}, nil)
	authMiddleware := auth.NewMiddleware([]byte(cfg.JWTSecret), policy)

	mux := http.NewServeMux()
	mux.Handle("/api/v1/plays", statementHandler)
	mux.Handle("/api/v1/statements", statementHandler)
	mux.Handle("/api/v1/statements/", statementHandler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      loggingMiddleware(authMiddleware.Wrap(mux), logger),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  time.Minute,
	}
	logger.Printf("http listening on %s", cfg.HTTPAddr)
	logger.Fatal(server.ListenAndServe())
}

type config struct {
	DatabaseURL  string
	HTTPAddr     string
	JWTSecret    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func loadConfig() config {
	cfg := config{
		DatabaseURL:  getenvDefault("DATABASE_URL", getenvDefault("PG_DSN", "")),
		HTTPAddr:     getenvDefault("HTTP_ADDR", ":8080"),
		JWTSecret:    getenvDefault("AUTH_JWT_SECRET", getenvDefault("JWT_SECRET", "")),
		ReadTimeout:  getenvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		WriteTimeout: getenvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
	}
	if cfg.JWTSecret == "" {
		log.Fatal("AUTH_JWT_SECRET is required")
	}
	return cfg
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func loggingMiddleware(next http.Handler, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		resp := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(resp, r)
		logger.Printf("http %s %s %d %s", r.Method, r.URL.Path, resp.status, time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
