package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lendingapi/internal/entity"
	"lendingapi/internal/library"
)

func TestBookMemory(t *testing.T) {
	ctx := context.Background()
	repo := NewBookMemory()

	_, err := repo.FindByID(ctx, "b1")
	assert.Equal(t, library.KindNotFound, library.KindOf(err))

	saved, err := repo.Save(ctx, entity.Book{ID: "b1", Title: "Dune", ISBN: "111"})
	require.NoError(t, err)
	assert.Equal(t, "b1", saved.ID)

	got, err := repo.FindByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)

	exists, err := repo.ExistsByISBN(ctx, "111")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByISBN(ctx, "222")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsByID(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, exists)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.DeleteByID(ctx, "b1"))
	_, err = repo.FindByID(ctx, "b1")
	assert.Equal(t, library.KindNotFound, library.KindOf(err))
}

func TestBookMemory_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewBookMemory()

	_, err := repo.Save(ctx, entity.Book{ID: "b1", Title: "Dune", ISBN: "111"})
	require.NoError(t, err)
	_, err = repo.Save(ctx, entity.Book{ID: "b1", Title: "Dune Messiah", ISBN: "111", Borrowed: true})
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", got.Title)
	assert.True(t, got.Borrowed)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemberMemory(t *testing.T) {
	ctx := context.Background()
	repo := NewMemberMemory()

	_, err := repo.FindByID(ctx, "m1")
	assert.Equal(t, library.KindNotFound, library.KindOf(err))

	_, err = repo.Save(ctx, entity.Member{ID: "m1", Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)

	exists, err := repo.ExistsByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByID(ctx, "m2")
	require.NoError(t, err)
	assert.False(t, exists)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
