package service

import (
	"time"

	"github.com/inklog/internal/db"
)

// SortBy selects the column a listing is ordered on.
type SortBy int

const (
	SortByCreated SortBy = iota
	SortByViews
	SortByComments
)

// SortRule describes listing order; the zero value is newest first.
type SortRule struct {
	By        SortBy
	Ascending bool
}

func (r SortRule) orderClause() string {
	column := "posts.created_at"
	switch r.By {
	case SortByViews:
		column = "post_statistics.view_count"
	case SortByComments:
		column = "post_statistics.comment_count"
	}

	direction := "desc"
	if r.Ascending {
		direction = "asc"
	}
	return column + " " + direction
}

// ListPosts runs the fixed listing skeleton (page of posts, their
// statistics, their resolved categories) and hands the three to assemble
// for result construction. Callers that need a custom result shape supply
// their own assemble; ListByStatus below provides the default one.
func ListPosts[R any](
	s *BlogService,
	ownerID uint,
	status db.PostStatus,
	offset, limit int,
	sort SortRule,
	assemble func(posts []db.Post, statsByPost map[uint]db.PostStatistics, categoriesByPost map[uint][]db.Category) (R, error),
) (R, error) {
	var zero R

	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	posts, err := s.posts.ListByStatus(ownerID, status, offset, limit, sort.orderClause())
	if err != nil {
		return zero, persistenceError("list posts", err)
	}

	postIDs := make([]uint, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
	}

	stats, err := s.stats.ListByPostIDs(postIDs)
	if err != nil {
		return zero, persistenceError("list post statistics", err)
	}
	statsByPost := make(map[uint]db.PostStatistics, len(stats))
	for _, stat := range stats {
		statsByPost[stat.PostID] = stat
	}

	categoryIDsByPost := make(map[uint][]uint, len(posts))
	distinct := make(map[uint]struct{})
	var allCategoryIDs []uint
	for _, post := range posts {
		ids := splitUints(post.CategoryIDs, s.site.NumberListSeparator())
		categoryIDsByPost[post.ID] = ids
		for _, id := range ids {
			if _, ok := distinct[id]; ok {
				continue
			}
			distinct[id] = struct{}{}
			allCategoryIDs = append(allCategoryIDs, id)
		}
	}

	categories, err := s.categories.ListByIDs(allCategoryIDs)
	if err != nil {
		return zero, persistenceError("list categories", err)
	}
	categoryByID := make(map[uint]db.Category, len(categories))
	for _, category := range categories {
		categoryByID[category.ID] = category
	}

	categoriesByPost := make(map[uint][]db.Category, len(posts))
	for postID, ids := range categoryIDsByPost {
		for _, id := range ids {
			if category, ok := categoryByID[id]; ok {
				categoriesByPost[postID] = append(categoriesByPost[postID], category)
			}
		}
	}

	return assemble(posts, statsByPost, categoriesByPost)
}

// ListItem is the default listing projection.
type ListItem struct {
	PostID       uint          `json:"post_id"`
	OwnerID      uint          `json:"owner_id"`
	Title        string        `json:"title"`
	Summary      string        `json:"summary"`
	Status       db.PostStatus `json:"status"`
	WordCount    int           `json:"word_count"`
	ViewCount    uint64        `json:"view_count"`
	CommentCount uint64        `json:"comment_count"`
	Categories   []db.Category `json:"categories,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

// ListByStatus returns a page of an owner's posts in the given state,
// assembled into the default list items.
func (s *BlogService) ListByStatus(ownerID uint, status db.PostStatus, offset, limit int, sort SortRule) ([]ListItem, error) {
	return ListPosts(s, ownerID, status, offset, limit, sort,
		func(posts []db.Post, statsByPost map[uint]db.PostStatistics, categoriesByPost map[uint][]db.Category) ([]ListItem, error) {
			items := make([]ListItem, 0, len(posts))
			for _, post := range posts {
				stat := statsByPost[post.ID]
				items = append(items, ListItem{
					PostID:       post.ID,
					OwnerID:      post.OwnerID,
					Title:        post.Title,
					Summary:      post.Summary,
					Status:       post.Status,
					WordCount:    post.WordCount,
					ViewCount:    stat.ViewCount,
					CommentCount: stat.CommentCount,
					Categories:   categoriesByPost[post.ID],
					CreatedAt:    post.CreatedAt,
				})
			}
			return items, nil
		})
}
