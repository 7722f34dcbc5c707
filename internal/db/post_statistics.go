package db

import (
	"time"

	"gorm.io/gorm"
)

// PostStatistics 汇总文章维度的计数数据，与文章一一对应。
type PostStatistics struct {
	ID           uint   `gorm:"primaryKey"`
	PostID       uint   `gorm:"uniqueIndex"`
	ViewCount    uint64 `gorm:"default:0"`
	CommentCount uint64 `gorm:"default:0"`
	LikeCount    uint64 `gorm:"default:0"`
	ShareCount   uint64 `gorm:"default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName 指定自定义表名，避免自动复数化导致的歧义。
func (PostStatistics) TableName() string {
	return "post_statistics"
}

// StatisticsStore wraps the statistics shell records tied to posts.
type StatisticsStore struct {
	db *gorm.DB
}

// NewStatisticsStore creates a StatisticsStore instance.
func NewStatisticsStore(gdb *gorm.DB) *StatisticsStore {
	return &StatisticsStore{db: gdb}
}

// Insert persists the statistics record for a freshly created post.
func (s *StatisticsStore) Insert(stats *PostStatistics) (int64, error) {
	result := s.db.Create(stats)
	return result.RowsAffected, result.Error
}

// DeleteByPostID removes the statistics record keyed by post id.
func (s *StatisticsStore) DeleteByPostID(postID uint) (int64, error) {
	result := s.db.Where("post_id = ?", postID).Delete(&PostStatistics{})
	return result.RowsAffected, result.Error
}

// GetByPostID fetches a single statistics record, nil when absent.
func (s *StatisticsStore) GetByPostID(postID uint) (*PostStatistics, error) {
	var stats []PostStatistics
	if err := s.db.Where("post_id = ?", postID).Limit(1).Find(&stats).Error; err != nil {
		return nil, err
	}
	if len(stats) == 0 {
		return nil, nil
	}
	return &stats[0], nil
}

// ListByPostIDs returns statistics for the given posts; posts without a
// record do not appear in the result.
func (s *StatisticsStore) ListByPostIDs(postIDs []uint) ([]PostStatistics, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var stats []PostStatistics
	if err := s.db.Where("post_id IN ?", postIDs).Find(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
