package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tresnow/internal/catalog"
	"tresnow/internal/config"
	"tresnow/internal/model"
	"tresnow/internal/news"
	"tresnow/internal/newsapi"
	"tresnow/internal/reader"
	web "tresnow/internal/server"
	"tresnow/internal/shop"
	"tresnow/internal/store"
	"tresnow/internal/styleai"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "tresnow",
	Short: "tresnow - fashion news, products, and style analysis backend",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			logger.Fatal("Failed to load config", zap.Error(err))
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		kv, err := store.OpenBadger(cfg.BadgerPath)
		if err != nil {
			logger.Fatal("Failed to open store", zap.Error(err))
		}
		defer kv.Close()

		var cache news.Cache
		if cfg.RedisAddr != "" {
			redisCache, err := news.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
			if err != nil {
				logger.Fatal("Failed to connect to redis", zap.Error(err))
			}
			defer redisCache.Close()
			cache = redisCache
		} else {
			cache = news.NewMemoryCache(cfg.CacheTTL, time.Now)
		}

		var upstream *newsapi.Client
		if cfg.NewsAPIKey != "" {
			upstream = newsapi.New(cfg.NewsAPIKey, cfg.NewsAPIBaseURL, cfg.RequestTimeout)
		}

		service := news.NewService(newsSources(cfg, upstream), cache, logger)

		srv := web.NewServer(web.Deps{
			News:     service,
			Shop:     shop.NewService(nil, logger),
			Favs:     store.NewFavourites(kv),
			Boards:   store.NewMoodBoards(kv, time.Now),
			Reader:   reader.NewReader(logger, cfg.ReadTimeout),
			Upstream: upstream,
			Logger:   logger,
			PageSize: cfg.PageSize,
		})

		go func() {
			if err := srv.Start(cfg.Addr); err != nil {
				logger.Error("Server stopped", zap.Error(err))
				cancel()
			}
		}()

		select {
		case <-sigChan:
			logger.Info("Shutting down...")
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			logger.Error("Shutdown failed", zap.Error(err))
		}
		logger.Info("Goodbye!")
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [image file]",
	Short: "Classify an image into a fashion style category",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(args[0])
		if err != nil {
			logger.Fatal("Failed to open image", zap.Error(err))
		}
		defer f.Close()

		result := styleai.Analyze(f)

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			logger.Fatal("Failed to encode result", zap.Error(err))
		}
		fmt.Println(string(out))
	},
}

var newsPage int

var newsCmd = &cobra.Command{
	Use:   "news [query]",
	Short: "Print a page of fashion articles",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			logger.Fatal("Failed to load config", zap.Error(err))
		}

		var upstream *newsapi.Client
		if cfg.NewsAPIKey != "" {
			upstream = newsapi.New(cfg.NewsAPIKey, cfg.NewsAPIBaseURL, cfg.RequestTimeout)
		}
		cache := news.NewMemoryCache(cfg.CacheTTL, time.Now)
		service := news.NewService(newsSources(cfg, upstream), cache, logger)

		ctx := context.Background()
		var page model.Page
		if len(args) == 1 {
			page, err = service.Search(ctx, args[0], newsPage, cfg.PageSize)
		} else {
			page, err = service.ListAll(ctx, newsPage, cfg.PageSize)
		}
		if err != nil {
			logger.Fatal("Failed to fetch articles", zap.Error(err))
		}

		fmt.Printf("Page %d/%d (%d articles, source: %s)\n\n",
			page.Pagination.CurrentPage, page.Pagination.TotalPages,
			page.Pagination.TotalArticles, page.Source)
		for _, a := range page.Articles {
			fmt.Printf("  [%s] %s (%s)\n", a.Category, a.Title, a.Source)
		}
	},
}

// newsSources builds the ordered fallback chain from the configuration. The
// generated catalog is always the tail, so a page is never empty.
func newsSources(cfg config.Config, upstream *newsapi.Client) []news.Source {
	var sources []news.Source
	if cfg.ProxyURL != "" {
		sources = append(sources, news.NewProxySource(cfg.ProxyURL, cfg.RequestTimeout))
	}
	if upstream != nil {
		sources = append(sources, news.NewAPISource(upstream))
	}
	if len(cfg.FeedURLs) > 0 {
		sources = append(sources, news.NewRSSSource(cfg.FeedURLs, cfg.RequestTimeout))
	}
	sources = append(sources, news.NewCatalogSource(catalog.New(time.Now)))
	return sources
}

func main() {
	var err error
	logger, err = zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	newsCmd.Flags().IntVar(&newsPage, "page", 1, "Page number to print")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(newsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
