package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/crispwatch/media-gateway/internal/domain"
	"github.com/crispwatch/media-gateway/internal/repository"
)

func TestGetHistoryEmpty(t *testing.T) {
	svc := NewService(&fakeUpstream{}, newMemStore(), nil)

	entries, err := svc.GetHistory(context.Background(), 99)
	if err != nil {
		t.Fatalf("empty history must not be an error: %v", err)
	}
	if entries == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestGetHistoryPreservesOrder(t *testing.T) {
	store := newMemStore()
	svc := NewService(&fakeUpstream{}, store, nil)
	ctx := context.Background()

	for i, title := range []string{"first", "second", "third"} {
		store.AppendHistory(ctx, 1, domain.HistoryEntry{
			ExternalID: int64(i + 1),
			Category:   domain.CategoryMovie,
			Title:      title,
			CreatedAt:  time.Now(),
		})
	}

	entries, err := svc.GetHistory(ctx, 1)
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, want := range []string{"first", "second", "third"} {
		if entries[i].Title != want {
			t.Errorf("entry %d = %q, want %q", i, entries[i].Title, want)
		}
	}
}

func TestGetHistoryStorageFailure(t *testing.T) {
	store := newMemStore()
	store.listErr = &repository.PersistenceError{Op: "list history", Err: errors.New("down")}
	svc := NewService(&fakeUpstream{}, store, nil)

	_, err := svc.GetHistory(context.Background(), 1)
	if !repository.IsPersistenceError(err) {
		t.Errorf("read path must surface storage failure, got %v", err)
	}
}

func TestDeleteHistoryItemRemovesAllCategories(t *testing.T) {
	store := newMemStore()
	svc := NewService(&fakeUpstream{}, store, nil)
	ctx := context.Background()

	// same external id in two categories, plus an unrelated entry
	store.AppendHistory(ctx, 1, domain.HistoryEntry{ExternalID: 42, Category: domain.CategoryMovie, Title: "m"})
	store.AppendHistory(ctx, 1, domain.HistoryEntry{ExternalID: 42, Category: domain.CategoryTV, Title: "t"})
	store.AppendHistory(ctx, 1, domain.HistoryEntry{ExternalID: 7, Category: domain.CategoryMovie, Title: "keep"})

	if err := svc.DeleteHistoryItem(ctx, 1, "42"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	entries, _ := svc.GetHistory(ctx, 1)
	if len(entries) != 1 {
		t.Fatalf("expected 1 surviving entry, got %d", len(entries))
	}
	if entries[0].ExternalID != 7 {
		t.Errorf("wrong entry survived: %+v", entries[0])
	}

	// second delete of the same id is a no-op success
	if err := svc.DeleteHistoryItem(ctx, 1, "42"); err != nil {
		t.Errorf("repeated delete must succeed, got %v", err)
	}
}

func TestDeleteHistoryItemValidation(t *testing.T) {
	store := newMemStore()
	svc := NewService(&fakeUpstream{}, store, nil)

	for _, raw := range []string{"", "abc", "12.5", "12abc"} {
		err := svc.DeleteHistoryItem(context.Background(), 1, raw)
		if !errors.Is(err, domain.ErrInvalidID) {
			t.Errorf("DeleteHistoryItem(%q): expected ErrInvalidID, got %v", raw, err)
		}
	}
}

func TestDeleteHistoryItemStorageFailure(t *testing.T) {
	store := newMemStore()
	store.removeErr = &repository.PersistenceError{Op: "remove history", Err: errors.New("down")}
	svc := NewService(&fakeUpstream{}, store, nil)

	err := svc.DeleteHistoryItem(context.Background(), 1, "42")
	if !repository.IsPersistenceError(err) {
		t.Errorf("expected storage failure to surface, got %v", err)
	}
}
