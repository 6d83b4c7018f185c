// Copyright (c) 2026 Kasane. All rights reserved.

package bookmark

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasaneapp/kasane/pkg/pagination"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeRepo struct {
	upsertCalls int
	upsertMark  *Bookmark
	inserted    bool

	deleteBulkIDs []int64
	moveIDs       []int64
	moveType      Type

	listType Type
}

func (f *fakeRepo) ListByUser(_ context.Context, _ int64, _ bool, shelfType Type, _, _ int) ([]*Bookmark, int, error) {
	f.listType = shelfType
	return []*Bookmark{}, 0, nil
}

func (f *fakeRepo) FindForBook(context.Context, int64, int64) (*Bookmark, error) {
	return &Bookmark{}, nil
}

func (f *fakeRepo) Upsert(_ context.Context, mark *Bookmark) (bool, error) {
	f.upsertCalls++
	f.upsertMark = mark
	return f.inserted, nil
}

func (f *fakeRepo) Update(context.Context, int64, *Bookmark) error { return nil }

func (f *fakeRepo) Delete(context.Context, int64, int64) error { return nil }

func (f *fakeRepo) DeleteBulk(_ context.Context, _ int64, ids []int64) (int, error) {
	f.deleteBulkIDs = ids
	return len(ids), nil
}

func (f *fakeRepo) Move(_ context.Context, _ int64, ids []int64, shelfType Type) (int, error) {
	f.moveIDs = ids
	f.moveType = shelfType
	return len(ids), nil
}

func TestSaveBookmark_Valid(t *testing.T) {
	repo := &fakeRepo{inserted: true}
	service := NewService(repo, discardLogger())

	created, err := service.SaveBookmark(context.Background(), &Bookmark{
		UserID:    1,
		BookID:    10,
		ChapterID: 100,
		Type:      TypeReading,
	})
	require.NoError(t, err)

	assert.True(t, created)
	assert.Equal(t, 1, repo.upsertCalls)
}

func TestSaveBookmark_RejectsUnknownType(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(repo, discardLogger())

	_, err := service.SaveBookmark(context.Background(), &Bookmark{
		BookID:    10,
		ChapterID: 100,
		Type:      Type("WISHLIST"),
	})

	assert.Error(t, err)
	assert.Equal(t, 0, repo.upsertCalls)
}

func TestSaveBookmark_RequiresBookAndChapter(t *testing.T) {
	service := NewService(&fakeRepo{}, discardLogger())

	_, err := service.SaveBookmark(context.Background(), &Bookmark{Type: TypeReading})
	assert.Error(t, err)
}

func TestUpdateBookmark_RejectsEmptyChange(t *testing.T) {
	service := NewService(&fakeRepo{}, discardLogger())

	err := service.UpdateBookmark(context.Background(), 1, &Bookmark{ID: 5})
	assert.Error(t, err)
}

func TestListShelf_RejectsUnknownTypeFilter(t *testing.T) {
	service := NewService(&fakeRepo{}, discardLogger())

	_, _, err := service.ListShelf(context.Background(), 1, false, Type("WISHLIST"), pagination.Params{Page: 1, Limit: 20})
	assert.Error(t, err)
}

func TestListShelf_EmptyTypeMeansAll(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(repo, discardLogger())

	_, _, err := service.ListShelf(context.Background(), 1, false, "", pagination.Params{Page: 1, Limit: 20})
	require.NoError(t, err)

	assert.Equal(t, Type(""), repo.listType)
}

func TestDeleteBookmarks_CleansIDSet(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(repo, discardLogger())

	affected, err := service.DeleteBookmarks(context.Background(), 1, []int64{5, 0, 5, -3, 7})
	require.NoError(t, err)

	assert.Equal(t, []int64{5, 7}, repo.deleteBulkIDs)
	assert.Equal(t, 2, affected)
}

func TestDeleteBookmarks_RejectsEmptySet(t *testing.T) {
	service := NewService(&fakeRepo{}, discardLogger())

	_, err := service.DeleteBookmarks(context.Background(), 1, []int64{0, -1})
	assert.Error(t, err)
}

func TestMoveBookmarks_Valid(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(repo, discardLogger())

	affected, err := service.MoveBookmarks(context.Background(), 1, []int64{3, 4}, TypeFinished)
	require.NoError(t, err)

	assert.Equal(t, 2, affected)
	assert.Equal(t, TypeFinished, repo.moveType)
	assert.Equal(t, []int64{3, 4}, repo.moveIDs)
}

func TestMoveBookmarks_RejectsUnknownType(t *testing.T) {
	service := NewService(&fakeRepo{}, discardLogger())

	_, err := service.MoveBookmarks(context.Background(), 1, []int64{3}, Type("SHELVED"))
	assert.Error(t, err)
}
