package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inklog/internal/config"
	"github.com/inklog/internal/db"
	"github.com/inklog/internal/handler"
	"github.com/inklog/internal/search"
	"github.com/inklog/internal/service"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouterTest(t *testing.T) *gin.Engine {
	t.Helper()

	dsn := fmt.Sprintf("file:router-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(&db.Post{}, &db.PostStatistics{}, &db.Asset{}, &db.Category{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	index, err := search.NewIndex(gdb)
	if err != nil {
		t.Fatalf("failed to build index: %v", err)
	}

	cfg := config.AppConfig{
		SiteBaseAddr:  "blog.test",
		NumberListSep: ",",
		StringListSep: ";",
		DisplaySep:    ",",
		UploadDir:     t.TempDir(),
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
		zerolog.Nop(),
	)

	api := handler.NewAPI(blog, assets, categories, index, cfg)
	return Setup(api, gin.TestMode)
}

func TestPing(t *testing.T) {
	r := setupRouterTest(t)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "pong" {
		t.Fatalf("message = %q", body.Message)
	}
}

func TestRoutesAreWired(t *testing.T) {
	r := setupRouterTest(t)

	paths := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/posts", http.StatusOK},
		{http.MethodGet, "/api/posts/1/exists", http.StatusOK},
		{http.MethodGet, "/api/posts/999?owner_id=1", http.StatusNotFound},
		{http.MethodGet, "/image/1/999", http.StatusNotFound},
	}

	for _, tc := range paths {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		if rr.Code != tc.want {
			t.Fatalf("%s %s status = %d, want %d", tc.method, tc.path, rr.Code, tc.want)
		}
	}
}
