package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/inklog/internal/db"
	"github.com/inklog/internal/service"
)

type createPostRequest struct {
	OwnerID    uint     `json:"owner_id" binding:"required"`
	Categories []uint   `json:"categories"`
	Labels     []uint   `json:"labels"`
	Status     int      `json:"status" binding:"required"`
	Title      string   `json:"title" binding:"required"`
	Content    string   `json:"content"`
	Summary    string   `json:"summary"`
	Keywords   []string `json:"keywords"`
}

type updatePostRequest struct {
	OwnerID    uint      `json:"owner_id" binding:"required"`
	Categories *[]uint   `json:"categories"`
	Labels     *[]uint   `json:"labels"`
	Status     *int      `json:"status"`
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	Summary    *string   `json:"summary"`
	Keywords   *[]string `json:"keywords"`
}

type batchDeleteRequest struct {
	OwnerID uint   `json:"owner_id" binding:"required"`
	PostIDs []uint `json:"post_ids" binding:"required"`
}

// CreatePost 处理新建文章请求。
func (a *API) CreatePost(c *gin.Context) {
	var req createPostRequest
	if !bindJSON(c, &req, "invalid post payload") {
		return
	}

	status := db.PostStatus(req.Status)
	if !status.Valid() {
		respondError(c, http.StatusBadRequest, "invalid post status")
		return
	}

	id, err := a.blog.Insert(service.InsertInput{
		OwnerID:    req.OwnerID,
		Categories: req.Categories,
		Labels:     req.Labels,
		Status:     status,
		Title:      req.Title,
		Content:    req.Content,
		Summary:    req.Summary,
		Keywords:   req.Keywords,
	})
	if err != nil {
		respondOpError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdatePost 处理文章的部分更新请求，未携带的字段保持原值。
func (a *API) UpdatePost(c *gin.Context) {
	postID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req updatePostRequest
	if !bindJSON(c, &req, "invalid post payload") {
		return
	}

	input := service.UpdateInput{
		Categories: req.Categories,
		Labels:     req.Labels,
		Title:      req.Title,
		Content:    req.Content,
		Summary:    req.Summary,
		Keywords:   req.Keywords,
	}
	if req.Status != nil {
		status := db.PostStatus(*req.Status)
		if !status.Valid() {
			respondError(c, http.StatusBadRequest, "invalid post status")
			return
		}
		input.Status = &status
	}

	if err := a.blog.Update(req.OwnerID, postID, input); err != nil {
		respondOpError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// DeletePost 删除单篇文章。目标不存在时以 deleted=false 响应而非报错。
func (a *API) DeletePost(c *gin.Context) {
	postID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	ownerID := parseUintQuery(c, "owner_id", 0)

	deleted, err := a.blog.Delete(ownerID, postID)
	if err != nil {
		respondOpError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"deleted": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// BatchDeletePosts 顺序删除一组文章，遇到首个失败立即中止。
func (a *API) BatchDeletePosts(c *gin.Context) {
	var req batchDeleteRequest
	if !bindJSON(c, &req, "invalid batch payload") {
		return
	}

	if err := a.blog.BatchDelete(req.OwnerID, req.PostIDs); err != nil {
		respondOpError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": len(req.PostIDs)})
}

// GetPost 返回属于请求方的单篇文章。
func (a *API) GetPost(c *gin.Context) {
	postID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	ownerID := parseUintQuery(c, "owner_id", 0)

	post, err := a.blog.Get(ownerID, postID)
	if err != nil {
		respondOpError(c, err)
		return
	}
	if post == nil {
		respondError(c, http.StatusNotFound, "post not found")
		return
	}

	c.JSON(http.StatusOK, post)
}

// CheckPostExists 仅做存在性检查。
func (a *API) CheckPostExists(c *gin.Context) {
	postID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	exists, err := a.blog.Exists(postID)
	if err != nil {
		respondOpError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

// ListPosts 按状态分页列出文章并附带统计与分类信息。
func (a *API) ListPosts(c *gin.Context) {
	ownerID := parseUintQuery(c, "owner_id", 0)
	status := db.PostStatus(parseIntQuery(c, "status", int(db.StatusPublished)))
	if !status.Valid() {
		respondError(c, http.StatusBadRequest, "invalid post status")
		return
	}

	offset := parseIntQuery(c, "offset", 0)
	limit := parseIntQuery(c, "rows", 10)
	sort := sortRuleFromQuery(c)

	items, err := a.blog.ListByStatus(ownerID, status, offset, limit, sort)
	if err != nil {
		respondOpError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// SearchPosts 查询搜索索引。
func (a *API) SearchPosts(c *gin.Context) {
	terms := strings.TrimSpace(c.Query("q"))
	if terms == "" {
		respondError(c, http.StatusBadRequest, "missing query")
		return
	}

	docs, err := a.index.Search(terms, parseIntQuery(c, "rows", 20))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": docs})
}

func sortRuleFromQuery(c *gin.Context) service.SortRule {
	rule := service.SortRule{}
	switch strings.TrimSpace(c.Query("sort")) {
	case "views":
		rule.By = service.SortByViews
	case "comments":
		rule.By = service.SortByComments
	}
	rule.Ascending = strings.EqualFold(strings.TrimSpace(c.Query("order")), "asc")
	return rule
}
