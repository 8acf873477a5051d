package service

import (
	"context"
	"testing"

	"shortlink/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := repository.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := repository.NewRepo(db)
	require.NoError(t, repo.InitSchema(context.Background()))
	return NewService(repo, nil)
}

func TestSaveResolveRemove(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "abc", "https://example.com"))

	got, err := svc.Resolve(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", got)

	require.NoError(t, svc.Remove(ctx, "abc"))

	_, err = svc.Resolve(ctx, "abc")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListReflectsStore(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "a", "https://a.test"))
	require.NoError(t, svc.Save(ctx, "b", "https://b.test"))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
