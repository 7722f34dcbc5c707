package db

import (
	"errors"
	"testing"
)

func TestAssetStoreUseCountRoundTrip(t *testing.T) {
	store := NewAssetStore(setupStoreTestDB(t))

	asset := &Asset{OwnerID: 1, Title: "cover.png"}
	if err := store.Insert(asset); err != nil {
		t.Fatalf("insert: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := store.IncrementUseCount(asset.ID); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}
	if err := store.DecrementUseCount(asset.ID); err != nil {
		t.Fatalf("decrement: %v", err)
	}

	got, err := store.GetByID(asset.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UseCount != 2 {
		t.Fatalf("use count = %d, want 2", got.UseCount)
	}
}

func TestAssetStoreDecrementUnderflow(t *testing.T) {
	store := NewAssetStore(setupStoreTestDB(t))

	asset := &Asset{OwnerID: 1, Title: "zero.png"}
	if err := store.Insert(asset); err != nil {
		t.Fatalf("insert: %v", err)
	}

	err := store.DecrementUseCount(asset.ID)
	if !errors.Is(err, ErrUseCountUnderflow) {
		t.Fatalf("expected underflow error, got %v", err)
	}

	got, err := store.GetByID(asset.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UseCount != 0 {
		t.Fatalf("use count = %d, must stay at 0", got.UseCount)
	}
}

func TestAssetStoreToleratesMissingAsset(t *testing.T) {
	store := NewAssetStore(setupStoreTestDB(t))

	if err := store.IncrementUseCount(404); err != nil {
		t.Fatalf("increment of a missing asset must be tolerated: %v", err)
	}
	if err := store.DecrementUseCount(404); err != nil {
		t.Fatalf("decrement of a missing asset must be tolerated: %v", err)
	}
}
