package search

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IndexError marks a failure of the index surface itself. Mutations that hit
// it have already been applied to the primary store; the caller decides what
// that inconsistency window means.
type IndexError struct {
	Op  string
	Err error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("search index %s: %v", e.Op, e.Err)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}

// Index keeps the denormalized search documents in their own table. Matching
// uses LIKE over the plain-text columns; the table is rebuilt row-wise by the
// mutation pipeline and never joined against the primary records.
type Index struct {
	db *gorm.DB
}

// NewIndex prepares the document table and returns the index handle.
func NewIndex(gdb *gorm.DB) (*Index, error) {
	if err := gdb.AutoMigrate(&Document{}); err != nil {
		return nil, &IndexError{Op: "migrate", Err: err}
	}
	return &Index{db: gdb}, nil
}

// Add stores the document for a freshly created post.
func (ix *Index) Add(doc Document) error {
	if err := ix.db.Create(&doc).Error; err != nil {
		return &IndexError{Op: "add", Err: err}
	}
	return nil
}

// Update replaces the document for a post, inserting it when the post was
// never indexed.
func (ix *Index) Update(doc Document) error {
	err := ix.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "post_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"owner_id", "title", "body", "summary", "keywords", "updated_at",
		}),
	}).Create(&doc).Error
	if err != nil {
		return &IndexError{Op: "update", Err: err}
	}
	return nil
}

// Delete drops the document of the given post.
func (ix *Index) Delete(postID uint) error {
	if err := ix.db.Where("post_id = ?", postID).Delete(&Document{}).Error; err != nil {
		return &IndexError{Op: "delete", Err: err}
	}
	return nil
}

// Search returns documents whose text fields contain terms, newest first.
func (ix *Index) Search(terms string, limit int) ([]Document, error) {
	if limit <= 0 {
		limit = 20
	}

	like := "%" + terms + "%"
	var docs []Document
	err := ix.db.
		Where("title LIKE ? OR body LIKE ? OR summary LIKE ? OR keywords LIKE ?", like, like, like, like).
		Order("updated_at desc").
		Limit(limit).
		Find(&docs).Error
	if err != nil {
		return nil, &IndexError{Op: "search", Err: err}
	}
	return docs, nil
}
