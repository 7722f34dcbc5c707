package handler

import (
	"fmt"
	"image"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/inklog/internal/db"
)

// UploadAsset 处理图片上传请求，落盘后在图片表登记一条引用计数为 0
// 的记录，并返回可嵌入正文的规范自引用链接。
func (a *API) UploadAsset(c *gin.Context) {
	ownerID := parseUintQuery(c, "owner_id", 0)
	if ownerID == 0 {
		respondError(c, http.StatusBadRequest, "missing owner_id")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "missing image file")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "only image uploads are allowed")
		return
	}

	if err := os.MkdirAll(a.cfg.UploadDir, 0o755); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to create upload directory")
		return
	}

	// 生成唯一文件名
	ext := filepath.Ext(file.Filename)
	newFilename := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
	filePath := filepath.Join(a.cfg.UploadDir, newFilename)

	if err := c.SaveUploadedFile(file, filePath); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save file")
		return
	}

	width, height := decodeImageSize(filePath)

	asset := &db.Asset{
		OwnerID: ownerID,
		Title:   file.Filename,
		Path:    filePath,
		Width:   width,
		Height:  height,
	}
	if err := a.assets.Insert(asset); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to register asset")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":  asset.ID,
		"url": fmt.Sprintf("http://%s/image/%d/%d", a.cfg.SiteBaseAddr, ownerID, asset.ID),
	})
}

// ServeAsset 按规范自引用链接回源图片文件。
func (a *API) ServeAsset(c *gin.Context) {
	ownerID, err := parseUintParam(c, "ownerID")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	assetID, err := parseUintParam(c, "assetID")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	asset, err := a.assets.GetByID(assetID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if asset == nil || asset.OwnerID != ownerID {
		respondError(c, http.StatusNotFound, "asset not found")
		return
	}

	c.File(asset.Path)
}

// ListAssets 列出请求方的全部图片及其引用计数。
func (a *API) ListAssets(c *gin.Context) {
	ownerID := parseUintQuery(c, "owner_id", 0)
	if ownerID == 0 {
		respondError(c, http.StatusBadRequest, "missing owner_id")
		return
	}

	assets, err := a.assets.ListByOwner(ownerID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"assets": assets})
}

// ListCategories 按 id 批量解析分类。
func (a *API) ListCategories(c *gin.Context) {
	ids := make([]uint, 0)
	for _, raw := range c.QueryArray("id") {
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}
		parsed := parseUintString(id)
		if parsed != 0 {
			ids = append(ids, parsed)
		}
	}

	categories, err := a.categories.ListByIDs(ids)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func decodeImageSize(path string) (int, int) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
