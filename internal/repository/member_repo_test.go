package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/gym_go_server/internal/model"
	"github.com/qs3c/gym_go_server/internal/testutil"
)

func TestMemberRepository_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMemberRepository(db)
	gym := testutil.TestGym(t, db)

	member := &model.Member{
		GymID:    gym.ID,
		Username: "alice",
		Password: "pass",
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "123",
		JoinDate: time.Now(),
		IsActive: true,
	}
	err := repo.Create(member)
	require.NoError(t, err)
	assert.NotZero(t, member.ID)
}

func TestMemberRepository_GetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMemberRepository(db)
	gym := testutil.TestGym(t, db)

	created := testutil.TestMember(t, db, gym.ID, testutil.WithMemberName("Bob"))

	found, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", found.Name)
	assert.Equal(t, gym.ID, found.GymID)
}

func TestMemberRepository_GetByUsername(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMemberRepository(db)
	gym := testutil.TestGym(t, db)

	testutil.TestMember(t, db, gym.ID, testutil.WithMemberUsername("charlie"))

	found, err := repo.GetByUsername("charlie")
	require.NoError(t, err)
	assert.Equal(t, "charlie", found.Username)
}

func TestMemberRepository_GetByUsername_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMemberRepository(db)

	_, err := repo.GetByUsername("ghost")
	assert.Error(t, err)
}

func TestMemberRepository_ListByGym(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMemberRepository(db)
	gym := testutil.TestGym(t, db)
	otherGym := testutil.TestGym(t, db)

	testutil.TestMember(t, db, gym.ID, testutil.WithMemberUsername("m1"))
	testutil.TestMember(t, db, gym.ID, testutil.WithMemberUsername("m2"))
	testutil.TestMember(t, db, otherGym.ID, testutil.WithMemberUsername("m3"))

	members, err := repo.ListByGym(gym.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestMemberRepository_CountByGym(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMemberRepository(db)
	gym := testutil.TestGym(t, db)

	count, err := repo.CountByGym(gym.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	testutil.TestMember(t, db, gym.ID, testutil.WithMemberUsername("c1"))
	testutil.TestMember(t, db, gym.ID, testutil.WithMemberUsername("c2"))

	count, err = repo.CountByGym(gym.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestMemberRepository_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMemberRepository(db)
	gym := testutil.TestGym(t, db)

	member := testutil.TestMember(t, db, gym.ID)
	member.Phone = "999"
	member.IsActive = false
	err := repo.Update(member)
	require.NoError(t, err)

	found, err := repo.GetByID(member.ID)
	require.NoError(t, err)
	assert.Equal(t, "999", found.Phone)
	assert.False(t, found.IsActive)
}
