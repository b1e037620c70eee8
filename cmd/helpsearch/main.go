// Package main is the helpsearch CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/retailops/helpsearch/internal/config"
	"github.com/retailops/helpsearch/internal/corpus"
	"github.com/retailops/helpsearch/internal/embedding"
	"github.com/retailops/helpsearch/internal/pipeline"
	"github.com/retailops/helpsearch/internal/ranking"
	"github.com/retailops/helpsearch/internal/search"
	"github.com/retailops/helpsearch/internal/server"
	"github.com/retailops/helpsearch/internal/store"
	"github.com/retailops/helpsearch/internal/watcher"
	"github.com/retailops/helpsearch/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "config.yaml"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "server":
		runServer()
	case "search":
		runSearch()
	case "related":
		runRelated()
	case "classify":
		runClassify()
	case "embed":
		runEmbed()
	case "version":
		fmt.Printf("helpsearch %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`helpsearch - help documentation retrieval and ranking

Usage:
  helpsearch server   [-config path]                 run the HTTP API server
  helpsearch search   [-config path] [-limit n] <query...>
  helpsearch related  [-config path] [-limit n] <entry-id>
  helpsearch classify <query...>
  helpsearch embed    [-config path] [-rps n] [-skip-unchanged]
  helpsearch version`)
}

func mustLoadConfig(configPath string) (*config.Config, *zap.Logger) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	return cfg, logger
}

// buildEmbedder constructs the configured embedder, wrapped in an LRU cache.
// Returns nil (degraded mode) when the provider key is absent and required is false.
func buildEmbedder(cfg *config.Config, logger *zap.Logger, required bool) embedding.Embedder {
	if cfg.Embedding.Provider == "mock" {
		return embedding.NewMockEmbedder(cfg.Embedding.Dimensions)
	}
	apiKey := os.Getenv(cfg.Embedding.APIKeyEnv)
	if apiKey == "" {
		if required {
			fmt.Fprintf(os.Stderr, "missing %s in environment\n", cfg.Embedding.APIKeyEnv)
			os.Exit(1)
		}
		logger.Warn("embedding provider key not set, serving in degraded (keyword-only) mode",
			zap.String("env", cfg.Embedding.APIKeyEnv))
		return nil
	}
	embedder, err := embedding.NewOpenAIEmbedder(
		apiKey,
		cfg.Embedding.Model,
		cfg.Embedding.Dimensions,
		time.Duration(cfg.Embedding.TimeoutSeconds)*time.Second,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create embedder: %v\n", err)
		os.Exit(1)
	}
	return embedding.NewCachedEmbedder(embedder, cfg.Embedding.CacheSize)
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "path to config file")
	_ = fs.Parse(os.Args[2:])
	_ = godotenv.Load()

	cfg, logger := mustLoadConfig(*configPath)
	defer func() { _ = logger.Sync() }()

	c, err := corpus.Load(cfg.Corpus.Path)
	if err != nil {
		logger.Fatal("corpus failed validation, refusing to serve", zap.Error(err))
	}
	logger.Info("corpus loaded", zap.String("path", cfg.Corpus.Path), zap.Int("entries", c.Len()))

	recordStore, err := store.NewSQLiteStore(cfg.Store.DatabasePath)
	if err != nil {
		logger.Fatal("failed to open record store", zap.Error(err))
	}
	defer func() { _ = recordStore.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	idx, err := store.BuildIndex(ctx, recordStore, c)
	if err != nil {
		logger.Fatal("failed to build embedding index", zap.Error(err))
	}
	logger.Info("embedding index built",
		zap.Int("embeddings", idx.Size()), zap.Int("stale", idx.StaleCount()))

	embedder := buildEmbedder(cfg, logger, false)
	engine := search.NewEngine(c, embedder, idx, &cfg.Ranking, logger)

	w, err := watcher.New(cfg.Store.DatabasePath, func(ctx context.Context) error {
		next, err := store.BuildIndex(ctx, recordStore, c)
		if err != nil {
			return err
		}
		engine.SwapIndex(next)
		return nil
	}, 0, logger)
	if err != nil {
		logger.Fatal("failed to create store watcher", zap.Error(err))
	}
	if err := w.Start(ctx); err != nil {
		logger.Fatal("failed to start store watcher", zap.Error(err))
	}
	defer func() { _ = w.Stop() }()

	srv := server.NewServer(engine, c, &cfg.Server, logger)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	}
}

func runSearch() {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "path to config file")
	limit := fs.Int("limit", 0, "maximum results")
	newUser := fs.Bool("new-user", false, "boost getting-started entries")
	hasProducts := fs.Bool("has-products", false, "caller has products")
	hasSales := fs.Bool("has-sales", false, "caller has recorded sales")
	recentError := fs.Bool("recent-error", false, "caller recently hit an error")
	_ = fs.Parse(os.Args[2:])
	_ = godotenv.Load()

	query := strings.Join(fs.Args(), " ")
	cfg, logger := mustLoadConfig(*configPath)
	defer func() { _ = logger.Sync() }()

	c, err := corpus.Load(cfg.Corpus.Path)
	if err != nil {
		logger.Fatal("corpus failed validation", zap.Error(err))
	}
	recordStore, err := store.NewSQLiteStore(cfg.Store.DatabasePath)
	if err != nil {
		logger.Fatal("failed to open record store", zap.Error(err))
	}
	defer func() { _ = recordStore.Close() }()

	ctx := context.Background()
	idx, err := store.BuildIndex(ctx, recordStore, c)
	if err != nil {
		logger.Fatal("failed to build embedding index", zap.Error(err))
	}

	embedder := buildEmbedder(cfg, logger, false)
	engine := search.NewEngine(c, embedder, idx, &cfg.Ranking, logger)

	qctx := &ranking.QueryContext{
		IsNewUser:   *newUser,
		HasProducts: *hasProducts,
		HasSales:    *hasSales,
		RecentError: *recentError,
	}
	printJSON(engine.Rank(ctx, query, qctx, *limit))
}

func runRelated() {
	fs := flag.NewFlagSet("related", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "path to config file")
	limit := fs.Int("limit", 0, "maximum results")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: helpsearch related [-config path] [-limit n] <entry-id>")
		os.Exit(1)
	}
	cfg, logger := mustLoadConfig(*configPath)
	defer func() { _ = logger.Sync() }()

	c, err := corpus.Load(cfg.Corpus.Path)
	if err != nil {
		logger.Fatal("corpus failed validation", zap.Error(err))
	}
	relatedLimit := *limit
	if relatedLimit <= 0 {
		relatedLimit = cfg.Ranking.RelatedLimit
	}
	printJSON(c.Related(fs.Arg(0), relatedLimit))
}

func runClassify() {
	fs := flag.NewFlagSet("classify", flag.ExitOnError)
	_ = fs.Parse(os.Args[2:])
	printJSON(ranking.Classify(strings.Join(fs.Args(), " ")))
}

func runEmbed() {
	fs := flag.NewFlagSet("embed", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "path to config file")
	rps := fs.Float64("rps", 0, "provider requests per second (overrides config)")
	skipUnchanged := fs.Bool("skip-unchanged", false, "skip entries whose content hash is unchanged")
	_ = fs.Parse(os.Args[2:])
	_ = godotenv.Load()

	cfg, logger := mustLoadConfig(*configPath)
	defer func() { _ = logger.Sync() }()

	c, err := corpus.Load(cfg.Corpus.Path)
	if err != nil {
		logger.Fatal("corpus failed validation", zap.Error(err))
	}
	recordStore, err := store.NewSQLiteStore(cfg.Store.DatabasePath)
	if err != nil {
		logger.Fatal("failed to open record store", zap.Error(err))
	}
	defer func() { _ = recordStore.Close() }()

	embedder := buildEmbedder(cfg, logger, true)
	defer func() { _ = embedder.Close() }()

	opts := pipeline.Options{
		RequestsPerSecond: cfg.Pipeline.RequestsPerSecond,
		SkipUnchanged:     cfg.Pipeline.SkipUnchanged || *skipUnchanged,
	}
	if *rps > 0 {
		opts.RequestsPerSecond = *rps
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := pipeline.New(c, embedder, recordStore, opts, logger).Run(ctx)
	if summary != nil {
		printJSON(summary)
	}
	if err != nil {
		logger.Error("pipeline interrupted", zap.Error(err))
		os.Exit(1)
	}
	if summary.ErrorCount > 0 {
		os.Exit(1)
	}
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
