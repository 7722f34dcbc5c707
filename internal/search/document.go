package search

import (
	"bytes"
	"html"
	"strings"
	"time"

	"github.com/inklog/internal/db"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// Document 是写入索引的文章投影，随文章新增/更新整体重建，随删除整体
// 移除，不作为独立数据源使用。
type Document struct {
	ID        uint `gorm:"primaryKey"`
	PostID    uint `gorm:"uniqueIndex"`
	OwnerID   uint `gorm:"index"`
	Title     string
	Body      string `gorm:"type:text"`
	Summary   string
	Keywords  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 指定自定义表名。
func (Document) TableName() string {
	return "search_documents"
}

var (
	markdown    = goldmark.New()
	stripPolicy = bluemonday.StrictPolicy()
)

// BuildDocument projects a post into its indexable form. Markdown content is
// rendered and stripped to plain prose so matches hit words, not markup.
func BuildDocument(post *db.Post) Document {
	return Document{
		PostID:   post.ID,
		OwnerID:  post.OwnerID,
		Title:    post.Title,
		Body:     plainText(post.Content),
		Summary:  post.Summary,
		Keywords: post.Keywords,
	}
}

func plainText(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	var rendered bytes.Buffer
	if err := markdown.Convert([]byte(content), &rendered); err != nil {
		// Unrenderable content is still worth indexing verbatim.
		return strings.Join(strings.Fields(content), " ")
	}

	stripped := stripPolicy.Sanitize(rendered.String())
	stripped = html.UnescapeString(stripped)
	return strings.Join(strings.Fields(stripped), " ")
}
