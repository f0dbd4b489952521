package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/inkwell/showcase-api/internal/core/domain"
)

type stubFavoritesRepo struct {
	favs map[string]*domain.Favorite // userID + ":" + contentID
}

func newStubFavoritesRepo() *stubFavoritesRepo {
	return &stubFavoritesRepo{favs: make(map[string]*domain.Favorite)}
}

func (r *stubFavoritesRepo) ListByUser(_ context.Context, userID string) ([]*domain.Favorite, error) {
	var out []*domain.Favorite
	for _, f := range r.favs {
		if f.UserID == userID {
			clone := *f
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubFavoritesRepo) Add(_ context.Context, f *domain.Favorite) error {
	key := f.UserID + ":" + f.ContentID
	if _, dup := r.favs[key]; dup {
		return domain.ErrFavoriteExists
	}
	clone := *f
	r.favs[key] = &clone
	return nil
}

func (r *stubFavoritesRepo) Remove(_ context.Context, userID, contentID string) error {
	key := userID + ":" + contentID
	if _, ok := r.favs[key]; !ok {
		return domain.ErrFavoriteNotFound
	}
	delete(r.favs, key)
	return nil
}

func TestFavoritesService_AddListRemove(t *testing.T) {
	svc := NewFavoritesService(newStubFavoritesRepo(), zerolog.Nop())
	ctx := context.Background()

	if err := svc.Add(ctx, "user_1", "content_a"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Add(ctx, "user_1", "content_b"); err != nil {
		t.Fatalf("add: %v", err)
	}

	favs, err := svc.List(ctx, "user_1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(favs) != 2 {
		t.Fatalf("expected 2 favorites, got %d", len(favs))
	}

	if err := svc.Remove(ctx, "user_1", "content_a"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	favs, _ = svc.List(ctx, "user_1")
	if len(favs) != 1 {
		t.Fatalf("expected 1 favorite after removal, got %d", len(favs))
	}
}

func TestFavoritesService_AddDuplicate(t *testing.T) {
	svc := NewFavoritesService(newStubFavoritesRepo(), zerolog.Nop())
	ctx := context.Background()

	if err := svc.Add(ctx, "user_1", "content_a"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Add(ctx, "user_1", "content_a"); !errors.Is(err, domain.ErrFavoriteExists) {
		t.Fatalf("expected ErrFavoriteExists, got %v", err)
	}
}

func TestFavoritesService_RemoveMissing(t *testing.T) {
	svc := NewFavoritesService(newStubFavoritesRepo(), zerolog.Nop())

	if err := svc.Remove(context.Background(), "user_1", "nope"); !errors.Is(err, domain.ErrFavoriteNotFound) {
		t.Fatalf("expected ErrFavoriteNotFound, got %v", err)
	}
}
