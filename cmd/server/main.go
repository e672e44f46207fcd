package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Skufu/symptomcheck/internal/dataset"
	"github.com/Skufu/symptomcheck/internal/diagnosis"
	"github.com/Skufu/symptomcheck/internal/store"
)

const (
	corpusBuiltin = "builtin"
	corpusFile    = "file"
	corpusDB      = "db"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type corpusLoader interface {
	LoadCorpus(ctx context.Context) ([]diagnosis.TrainingExample, error)
}

type Config struct {
	Port                  string
	DatabaseURL           string
	EnableDB              bool
	CorpusSource          string
	CorpusFile            string
	KeepDuplicateSymptoms bool
	DefaultTopN           int
	AllowOrigins          []string
}

func main() {
	gin.SetMode(getEnv("GIN_MODE", "release"))

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx := context.Background()
	var (
		db     HealthChecker
		loader corpusLoader
	)
	if cfg.EnableDB {
		pg, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("database connection failed: %v", err)
		}
		defer pg.Close()
		db, loader = pg, pg
	}

	corpus, err := loadCorpus(ctx, cfg, loader)
	if err != nil {
		log.Fatalf("corpus error: %v", err)
	}
	model, err := diagnosis.Build(corpus, diagnosis.KeepDuplicateSymptoms(cfg.KeepDuplicateSymptoms))
	if err != nil {
		log.Fatalf("model build failed: %v", err)
	}
	stats := model.Stats()
	log.Printf("model trained from %s corpus: %d samples, %d conditions, %d symptoms",
		cfg.CorpusSource, stats.Samples, stats.Conditions, stats.Symptoms)

	router := setupRouter(db, newAPI(model, dataset.DefaultCatalog(), cfg.DefaultTopN), cfg.AllowOrigins)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	log.Printf("server listening on :%s", cfg.Port)
	waitForShutdown(server)
}

func loadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                  getEnv("PORT", "8080"),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		EnableDB:              strings.EqualFold(getEnv("ENABLE_DB", "false"), "true"),
		CorpusSource:          strings.ToLower(getEnv("CORPUS_SOURCE", corpusBuiltin)),
		CorpusFile:            os.Getenv("CORPUS_FILE"),
		KeepDuplicateSymptoms: strings.EqualFold(getEnv("KEEP_DUPLICATE_SYMPTOMS", "false"), "true"),
		AllowOrigins:          splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
	}

	if cfg.EnableDB && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when ENABLE_DB=true")
	}

	switch cfg.CorpusSource {
	case corpusBuiltin:
	case corpusFile:
		if cfg.CorpusFile == "" {
			return nil, fmt.Errorf("CORPUS_FILE is required when CORPUS_SOURCE=file")
		}
	case corpusDB:
		if !cfg.EnableDB {
			return nil, fmt.Errorf("CORPUS_SOURCE=db requires ENABLE_DB=true")
		}
	default:
		return nil, fmt.Errorf("unknown CORPUS_SOURCE %q (want builtin, file or db)", cfg.CorpusSource)
	}

	topN, err := strconv.Atoi(getEnv("DEFAULT_TOP_N", "3"))
	if err != nil || topN < 1 {
		return nil, fmt.Errorf("DEFAULT_TOP_N must be a positive integer")
	}
	cfg.DefaultTopN = topN

	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowOrigins = []string{"*"}
	}

	return cfg, nil
}

func loadCorpus(ctx context.Context, cfg *Config, db corpusLoader) ([]diagnosis.TrainingExample, error) {
	switch cfg.CorpusSource {
	case corpusFile:
		return dataset.LoadCorpusFile(cfg.CorpusFile)
	case corpusDB:
		if db == nil {
			return nil, fmt.Errorf("database corpus requested without a database")
		}
		loadCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return db.LoadCorpus(loadCtx)
	default:
		return dataset.DefaultCorpus(), nil
	}
}

func setupRouter(db HealthChecker, a *api, allowOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Logger(),
		gin.Recovery(),
		limitBodySize(1<<20), // 1MB max body
		cors.New(cors.Config{
			AllowOrigins: allowOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       12 * time.Hour,
		}),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/readyz", func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "disabled"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "degraded",
				"db":     fmt.Sprintf("unhealthy: %v", err),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"db":     "ok",
		})
	})

	apiGroup := router.Group("/api")
	apiGroup.GET("/model", a.modelStats)
	apiGroup.GET("/symptoms", a.listSymptoms)
	apiGroup.GET("/conditions", a.listConditions)
	apiGroup.POST("/predict", a.predict)
	apiGroup.POST("/predict/top", a.predictTop)

	return router
}

func waitForShutdown(server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func splitList(text string) []string {
	out := []string{}
	for _, t := range strings.Split(text, ",") {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
