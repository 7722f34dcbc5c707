package db

import (
	"errors"

	"gorm.io/gorm"
)

// PostStatus 定义了文章的生命周期状态。
type PostStatus int

const (
	// StatusDraft 草稿，仅博主可见。
	StatusDraft PostStatus = iota + 1
	// StatusPublished 已发布，对外可见。
	StatusPublished
	// StatusVerifyPending 等待审核。处于该状态时更新请求携带的状态
	// 变更会被忽略，其他字段照常更新。
	StatusVerifyPending
	// StatusRecycled 已移入回收站。
	StatusRecycled
)

// Valid reports whether the status is one of the defined lifecycle values.
func (s PostStatus) Valid() bool {
	return s >= StatusDraft && s <= StatusRecycled
}

func (s PostStatus) String() string {
	switch s {
	case StatusDraft:
		return "draft"
	case StatusPublished:
		return "published"
	case StatusVerifyPending:
		return "verify_pending"
	case StatusRecycled:
		return "recycled"
	default:
		return "unknown"
	}
}

// Post 定义了文章模型。分类、标签与关键字以分隔符拼接的列表形式入库。
type Post struct {
	gorm.Model
	OwnerID     uint `gorm:"index;not null"`
	CategoryIDs string
	LabelIDs    string
	Status      PostStatus `gorm:"index"`
	Title       string
	Content     string
	Summary     string
	Keywords    string
	WordCount   int
}

// PostStore wraps post persistence and reports rows affected so callers can
// apply their own zero-rows policy.
type PostStore struct {
	db *gorm.DB
}

// NewPostStore creates a PostStore instance.
func NewPostStore(gdb *gorm.DB) *PostStore {
	return &PostStore{db: gdb}
}

// Insert persists a new post and populates its id.
func (s *PostStore) Insert(post *Post) (int64, error) {
	result := s.db.Create(post)
	return result.RowsAffected, result.Error
}

// Update applies a partial column update to the post with the given id.
func (s *PostStore) Update(id uint, fields map[string]interface{}) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}
	result := s.db.Model(&Post{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

// GetByID fetches a post by id; absence is reported as (nil, nil).
func (s *PostStore) GetByID(id uint) (*Post, error) {
	var post Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetIDByID resolves just the id column, 0 when absent.
func (s *PostStore) GetIDByID(id uint) (uint, error) {
	var found uint
	err := s.db.Model(&Post{}).Select("id").Where("id = ?", id).Scan(&found).Error
	if err != nil {
		return 0, err
	}
	return found, nil
}

// Delete removes a post row by id.
func (s *PostStore) Delete(id uint) (int64, error) {
	result := s.db.Unscoped().Delete(&Post{}, id)
	return result.RowsAffected, result.Error
}

// ListByStatus returns a page of an owner's posts in the given lifecycle
// state. The order clause may reference the joined post_statistics columns.
func (s *PostStore) ListByStatus(ownerID uint, status PostStatus, offset, limit int, order string) ([]Post, error) {
	if order == "" {
		order = "posts.created_at desc"
	}

	var posts []Post
	err := s.db.Model(&Post{}).
		Joins("LEFT JOIN post_statistics ON post_statistics.post_id = posts.id").
		Where("posts.owner_id = ? AND posts.status = ?", ownerID, status).
		Order(order).
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
