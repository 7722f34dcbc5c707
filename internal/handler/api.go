package handler

import (
	"github.com/inklog/internal/config"
	"github.com/inklog/internal/db"
	"github.com/inklog/internal/search"
	"github.com/inklog/internal/service"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	blog       *service.BlogService
	assets     *db.AssetStore
	categories *db.CategoryStore
	index      *search.Index
	cfg        config.AppConfig
}

// NewAPI constructs a handler set around the mutation pipeline and the
// stores the transport surface reads directly.
func NewAPI(
	blog *service.BlogService,
	assets *db.AssetStore,
	categories *db.CategoryStore,
	index *search.Index,
	cfg config.AppConfig,
) *API {
	return &API{
		blog:       blog,
		assets:     assets,
		categories: categories,
		index:      index,
		cfg:        cfg,
	}
}
