package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/inklog/internal/handler"
	"github.com/rs/zerolog/log"
)

// Setup 配置 Gin 引擎和路由。
func Setup(api *handler.API, ginMode string) *gin.Engine {
	if ginMode != "" {
		gin.SetMode(ginMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// 图片规范自引用链接，正文内容即通过该路径嵌入图片
	r.GET("/image/:ownerID/:assetID", api.ServeAsset)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/posts", api.ListPosts)
		apiGroup.GET("/posts/search", api.SearchPosts)
		apiGroup.GET("/posts/:id", api.GetPost)
		apiGroup.GET("/posts/:id/exists", api.CheckPostExists)
		apiGroup.POST("/posts", api.CreatePost)
		apiGroup.PUT("/posts/:id", api.UpdatePost)
		apiGroup.DELETE("/posts/:id", api.DeletePost)
		apiGroup.POST("/posts/batch-delete", api.BatchDeletePosts)

		apiGroup.POST("/assets", api.UploadAsset)
		apiGroup.GET("/assets", api.ListAssets)

		apiGroup.GET("/categories", api.ListCategories)
	}

	return r
}

// requestLogger tags every request with an id and logs its outcome.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		start := time.Now()

		c.Next()

		log.Info().
			Str("requestID", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}
