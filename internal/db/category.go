package db

import "gorm.io/gorm"

// Category 定义了文章分类模型。
type Category struct {
	gorm.Model
	OwnerID     uint `gorm:"index"`
	Name        string
	Description string
}

// CategoryStore wraps category lookups used by result assembly.
type CategoryStore struct {
	db *gorm.DB
}

// NewCategoryStore creates a CategoryStore instance.
func NewCategoryStore(gdb *gorm.DB) *CategoryStore {
	return &CategoryStore{db: gdb}
}

// ListByIDs returns the categories matching the given ids.
func (s *CategoryStore) ListByIDs(ids []uint) ([]Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var categories []Category
	if err := s.db.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
