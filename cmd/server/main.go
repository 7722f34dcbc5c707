package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/inklog/internal/config"
	"github.com/inklog/internal/db"
	"github.com/inklog/internal/handler"
	"github.com/inklog/internal/router"
	"github.com/inklog/internal/search"
	"github.com/inklog/internal/service"
)

func main() {
	// .env 缺失时直接使用进程环境变量
	_ = godotenv.Load()

	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	gdb, err := db.Init(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	index, err := search.NewIndex(gdb)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize search index")
	}

	assets := db.NewAssetStore(gdb)
	categories := db.NewCategoryStore(gdb)
	blog := service.NewBlogService(
		db.NewPostStore(gdb),
		db.NewStatisticsStore(gdb),
		assets,
		categories,
		index,
		cfg,
		log.Logger,
	)

	api := handler.NewAPI(blog, assets, categories, index, cfg)
	r := router.Setup(api, cfg.GinMode)

	log.Info().Str("addr", cfg.ListenAddr).Msg("starting server")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("failed to run server")
	}
}
