package service

import (
	"testing"

	"github.com/inklog/internal/db"
	"gorm.io/gorm"
)

func modelWithID(id uint) gorm.Model {
	return gorm.Model{ID: id}
}

func TestListByStatusAssemblesStatisticsAndCategories(t *testing.T) {
	fx := newPipelineFixture(t)

	fx.categories.categories[1] = db.Category{Model: modelWithID(1), Name: "tooling"}
	fx.categories.categories[2] = db.Category{Model: modelWithID(2), Name: "essays"}

	id, err := fx.svc.Insert(InsertInput{
		OwnerID:    5,
		Categories: []uint{1, 2},
		Status:     db.StatusPublished,
		Title:      "post one",
		Content:    "body",
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	fx.stats.byPost[id] = db.PostStatistics{PostID: id, ViewCount: 12, CommentCount: 3}

	items, err := fx.svc.ListByStatus(5, db.StatusPublished, 0, 10, SortRule{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}

	item := items[0]
	if item.PostID != id || item.Title != "post one" {
		t.Fatalf("unexpected item %+v", item)
	}
	if item.ViewCount != 12 || item.CommentCount != 3 {
		t.Fatalf("statistics not attached: %+v", item)
	}
	if len(item.Categories) != 2 {
		t.Fatalf("categories not resolved: %+v", item.Categories)
	}
}

func TestListByStatusFiltersOwnerAndStatus(t *testing.T) {
	fx := newPipelineFixture(t)

	if _, err := fx.svc.Insert(InsertInput{OwnerID: 1, Status: db.StatusPublished, Title: "mine", Content: "c"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := fx.svc.Insert(InsertInput{OwnerID: 1, Status: db.StatusDraft, Title: "draft", Content: "c"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := fx.svc.Insert(InsertInput{OwnerID: 2, Status: db.StatusPublished, Title: "theirs", Content: "c"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	items, err := fx.svc.ListByStatus(1, db.StatusPublished, 0, 10, SortRule{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].Title != "mine" {
		t.Fatalf("expected only owner 1's published post, got %+v", items)
	}
}

func TestSortRuleOrderClause(t *testing.T) {
	cases := []struct {
		rule SortRule
		want string
	}{
		{SortRule{}, "posts.created_at desc"},
		{SortRule{By: SortByViews}, "post_statistics.view_count desc"},
		{SortRule{By: SortByComments, Ascending: true}, "post_statistics.comment_count asc"},
	}
	for _, tc := range cases {
		if got := tc.rule.orderClause(); got != tc.want {
			t.Fatalf("orderClause(%+v) = %q, want %q", tc.rule, got, tc.want)
		}
	}
}
