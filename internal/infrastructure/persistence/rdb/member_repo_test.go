package rdb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/address"
	"github.com/xiebiao/bookshop/internal/domain/member"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/rdb/rdbtest"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

func TestMemberRepository_CRUD(t *testing.T) {
	db := rdbtest.Open(t)
	repo := db.Repos().Members
	ctx := context.Background()

	m, err := member.NewMember("userA", address.New("Seoul", "1", "1111"))
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, m))
	assert.NotZero(t, m.ID)

	found, err := repo.FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m, found)

	byName, err := repo.FindByName(ctx, "userA")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, m.ID, byName[0].ID)

	none, err := repo.FindByName(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, m.Rename("userA2"))
	require.NoError(t, repo.Update(ctx, m))
	found, err = repo.FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "userA2", found.Name)
}

func TestMemberRepository_Duplicate(t *testing.T) {
	db := rdbtest.Open(t)
	repo := db.Repos().Members
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &member.Member{Name: "dup"}))
	err := repo.Create(ctx, &member.Member{Name: "dup"})
	assert.ErrorIs(t, err, member.ErrDuplicateMember)
}

func TestMemberRepository_NotFound(t *testing.T) {
	db := rdbtest.Open(t)
	repo := db.Repos().Members
	ctx := context.Background()

	_, err := repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
	assert.True(t, apperrors.IsNotFound(err))

	err = repo.Update(ctx, &member.Member{ID: 999, Name: "ghost"})
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
}

func TestMemberRepository_FindAllOrdered(t *testing.T) {
	db := rdbtest.Open(t)
	repo := db.Repos().Members
	ctx := context.Background()

	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, repo.Create(ctx, &member.Member{Name: name}))
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{all[0].Name, all[1].Name, all[2].Name})
}

func TestStoreUnavailable_ClosedDB(t *testing.T) {
	db := rdbtest.Open(t)
	repo := db.Repos().Members

	sqlDB, err := db.Gorm.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = repo.FindAll(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsStoreUnavailable(err))
}
