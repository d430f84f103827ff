package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/qs3c/gym_go_server/internal/model"
	"github.com/qs3c/gym_go_server/internal/model/dto"
	"github.com/qs3c/gym_go_server/internal/repository"
	"github.com/qs3c/gym_go_server/internal/testutil"
)

func setupMemberService(t *testing.T) (*MemberService, *gorm.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	memberRepo := repository.NewMemberRepository(db)
	userRepo := repository.NewUserRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	service := NewMemberService(memberRepo, userRepo, paymentRepo, attendanceRepo)

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return service, db, cleanup
}

func TestMemberService_Create_Success(t *testing.T) {
	service, db, cleanup := setupMemberService(t)
	defer cleanup()

	gym := testutil.TestGym(t, db)

	info, err := service.Create(gym.ID, &dto.CreateMemberRequest{
		Username: "alice",
		Password: "secret",
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "123",
	})
	require.NoError(t, err)
	assert.NotZero(t, info.ID)
	assert.Equal(t, gym.ID, info.GymID)
	assert.True(t, info.IsActive)
	assert.Equal(t, time.Now().Format("2006-01-02"), info.JoinDate)

	// Paired member login account
	var user model.User
	err = db.Where("username = ?", "alice").First(&user).Error
	require.NoError(t, err)
	assert.Equal(t, model.RoleMember, user.Role)
	assert.Equal(t, "secret", user.Password)
	require.NotNil(t, user.GymID)
	assert.Equal(t, gym.ID, *user.GymID)
}

func TestMemberService_Create_MissingFields(t *testing.T) {
	service, db, cleanup := setupMemberService(t)
	defer cleanup()

	gym := testutil.TestGym(t, db)

	cases := []dto.CreateMemberRequest{
		{Username: "", Password: "p", Name: "n"},
		{Username: "u", Password: "", Name: "n"},
		{Username: "u", Password: "p", Name: ""},
	}
	for _, req := range cases {
		_, err := service.Create(gym.ID, &req)
		assert.Equal(t, ErrMissingFields, err)
	}
}

func TestMemberService_Update_PreservesIdentity(t *testing.T) {
	service, db, cleanup := setupMemberService(t)
	defer cleanup()

	gym := testutil.TestGym(t, db)
	created, err := service.Create(gym.ID, &dto.CreateMemberRequest{
		Username: "bob",
		Password: "pass",
		Name:     "Bob",
	})
	require.NoError(t, err)

	updated, err := service.Update(created.ID, &dto.UpdateMemberRequest{
		Username: "bob",
		Password: "newpass",
		Name:     "Bobby",
		Phone:    "555",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.GymID, updated.GymID)
	assert.Equal(t, created.JoinDate, updated.JoinDate)
	assert.Equal(t, "Bobby", updated.Name)
	assert.Equal(t, "555", updated.Phone)
}

func TestMemberService_Update_NotFound(t *testing.T) {
	service, _, cleanup := setupMemberService(t)
	defer cleanup()

	_, err := service.Update(99999, &dto.UpdateMemberRequest{
		Username: "u", Password: "p", Name: "n",
	})
	assert.Equal(t, ErrMemberNotFound, err)
}

func TestMemberService_GetByUsername(t *testing.T) {
	service, db, cleanup := setupMemberService(t)
	defer cleanup()

	gym := testutil.TestGym(t, db)
	testutil.TestMember(t, db, gym.ID, testutil.WithMemberUsername("carol"))

	info, err := service.GetByUsername("carol")
	require.NoError(t, err)
	assert.Equal(t, "carol", info.Username)

	_, err = service.GetByUsername("ghost")
	assert.Equal(t, ErrMemberNotFound, err)
}

func TestMemberService_List(t *testing.T) {
	service, db, cleanup := setupMemberService(t)
	defer cleanup()

	gym := testutil.TestGym(t, db)
	otherGym := testutil.TestGym(t, db)
	testutil.TestMember(t, db, gym.ID, testutil.WithMemberUsername("l1"))
	testutil.TestMember(t, db, gym.ID, testutil.WithMemberUsername("l2"))
	testutil.TestMember(t, db, otherGym.ID, testutil.WithMemberUsername("l3"))

	members, err := service.List(gym.ID)
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestMemberService_Profile(t *testing.T) {
	service, db, cleanup := setupMemberService(t)
	defer cleanup()

	gym := testutil.TestGym(t, db)
	member := testutil.TestMember(t, db, gym.ID,
		testutil.WithMemberUsername("dave"),
		testutil.WithMemberName("Dave"),
	)

	now := time.Now()
	testutil.TestPayment(t, db, member.ID,
		testutil.WithEndDate(now.AddDate(0, 0, 20)),
	)

	thisMonth := now.Format("2006-01-02")
	testutil.TestAttendance(t, db, member.ID, gym.ID, testutil.WithDate(thisMonth))

	profile, err := service.Profile("dave")
	require.NoError(t, err)
	assert.Equal(t, "Dave", profile.Member.Name)
	require.NotNil(t, profile.CurrentPlan)
	assert.Equal(t, model.PlanMonthly, profile.CurrentPlan.Type)
	assert.Equal(t, int64(1), profile.MonthlyVisits)
	require.Len(t, profile.RecentRecords, 1)
	assert.Equal(t, "Dave", profile.RecentRecords[0].MemberName)
}

func TestMemberService_Profile_NoPlan(t *testing.T) {
	service, db, cleanup := setupMemberService(t)
	defer cleanup()

	gym := testutil.TestGym(t, db)
	testutil.TestMember(t, db, gym.ID, testutil.WithMemberUsername("eve"))

	profile, err := service.Profile("eve")
	require.NoError(t, err)
	assert.Nil(t, profile.CurrentPlan)
	assert.Equal(t, int64(0), profile.MonthlyVisits)
	assert.Empty(t, profile.RecentRecords)
}

func TestMemberService_Profile_RecentRecordsCapped(t *testing.T) {
	service, db, cleanup := setupMemberService(t)
	defer cleanup()

	gym := testutil.TestGym(t, db)
	member := testutil.TestMember(t, db, gym.ID, testutil.WithMemberUsername("frank"))

	for i := 1; i <= 12; i++ {
		testutil.TestAttendance(t, db, member.ID, gym.ID,
			testutil.WithDate(time.Date(2026, 7, i, 0, 0, 0, 0, time.UTC).Format("2006-01-02")),
		)
	}

	profile, err := service.Profile("frank")
	require.NoError(t, err)
	assert.Len(t, profile.RecentRecords, 10)
	// Most recent first
	assert.Equal(t, "2026-07-12", profile.RecentRecords[0].Date)
}

func TestMemberService_Profile_NotFound(t *testing.T) {
	service, _, cleanup := setupMemberService(t)
	defer cleanup()

	_, err := service.Profile("nobody")
	assert.Equal(t, ErrMemberNotFound, err)
}

func TestMemberService_GetForGym(t *testing.T) {
	service, db, cleanup := setupMemberService(t)
	defer cleanup()

	gym := testutil.TestGym(t, db)
	otherGym := testutil.TestGym(t, db)
	member := testutil.TestMember(t, db, gym.ID, testutil.WithMemberUsername("gina"))

	info, err := service.GetForGym(member.ID, gym.ID)
	require.NoError(t, err)
	assert.Equal(t, member.ID, info.ID)

	// Another gym's member reads as not found
	_, err = service.GetForGym(member.ID, otherGym.ID)
	assert.Equal(t, ErrMemberNotFound, err)

	_, err = service.GetForGym(99999, gym.ID)
	assert.Equal(t, ErrMemberNotFound, err)
}

func TestMemberService_Create_RollsBackOnFailure(t *testing.T) {
	service, db, cleanup := setupMemberService(t)
	defer cleanup()

	gym := testutil.TestGym(t, db)

	// Break the paired account insert: the member row must not survive alone
	require.NoError(t, db.Migrator().DropTable(&model.User{}))

	_, err := service.Create(gym.ID, &dto.CreateMemberRequest{
		Username: "half", Password: "p", Name: "Half",
	})
	require.Error(t, err)

	var count int64
	db.Model(&model.Member{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
