package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewRepo(db)
	require.NoError(t, repo.InitSchema(context.Background()))
	return repo
}

func TestUpsertThenGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, "abc", "https://example.com"))

	got, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", got)
}

func TestUpsertOverwrites(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, "abc", "https://one.test"))
	require.NoError(t, repo.Upsert(ctx, "abc", "https://two.test"))

	got, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "https://two.test", got)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "overwrite must not duplicate the row")
}

func TestGetUnknownCode(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, "keep", "https://keep.test"))

	assert.NoError(t, repo.Delete(ctx, "neverexisted"))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(ctx, "keep"))
	_, err = repo.Get(ctx, "keep")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAllNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, code := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Upsert(ctx, code, "https://"+code+".test"))
		time.Sleep(5 * time.Millisecond)
	}

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].ShortCode)
	assert.Equal(t, "second", all[1].ShortCode)
	assert.Equal(t, "first", all[2].ShortCode)
}

func TestEmptyCodeRejected(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyCode)
	assert.ErrorIs(t, repo.Upsert(ctx, "", "https://example.com"), ErrEmptyCode)
	assert.ErrorIs(t, repo.Delete(ctx, ""), ErrEmptyCode)
}
