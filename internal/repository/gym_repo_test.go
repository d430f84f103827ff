package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/gym_go_server/internal/model"
	"github.com/qs3c/gym_go_server/internal/testutil"
)

func TestGymRepository_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewGymRepository(db)

	gym := &model.Gym{
		Name:          "Iron Temple",
		Address:       "5 Main Road",
		Phone:         "5551234",
		Email:         "iron@example.com",
		AdminUsername: "iron_admin",
		AdminPassword: "pass",
	}
	err := repo.Create(gym)
	require.NoError(t, err)
	assert.NotZero(t, gym.ID)
}

func TestGymRepository_GetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewGymRepository(db)

	created := testutil.TestGym(t, db, testutil.WithGymName("Lookup Gym"))

	found, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lookup Gym", found.Name)
}

func TestGymRepository_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewGymRepository(db)

	_, err := repo.GetByID(99999)
	assert.Error(t, err)
}

func TestGymRepository_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewGymRepository(db)

	gym := testutil.TestGym(t, db)
	gym.Name = "Renamed Gym"
	err := repo.Update(gym)
	require.NoError(t, err)

	found, err := repo.GetByID(gym.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Gym", found.Name)
}

func TestGymRepository_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewGymRepository(db)

	gym := testutil.TestGym(t, db)
	err := repo.Delete(gym.ID)
	require.NoError(t, err)

	_, err = repo.GetByID(gym.ID)
	assert.Error(t, err)
}

func TestGymRepository_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewGymRepository(db)

	first := testutil.TestGym(t, db)
	second := testutil.TestGym(t, db)

	gyms, err := repo.List()
	require.NoError(t, err)
	require.Len(t, gyms, 2)
	// Ordered by id ascending
	assert.Equal(t, first.ID, gyms[0].ID)
	assert.Equal(t, second.ID, gyms[1].ID)
}
