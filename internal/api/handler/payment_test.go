package handler

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/qs3c/gym_go_server/internal/model"
	"github.com/qs3c/gym_go_server/internal/model/dto"
	"github.com/qs3c/gym_go_server/internal/pkg/response"
	"github.com/qs3c/gym_go_server/internal/repository"
	"github.com/qs3c/gym_go_server/internal/service"
	"github.com/qs3c/gym_go_server/internal/testutil"
)

func setupPaymentHandler(t *testing.T) (*PaymentHandler, *gorm.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	memberRepo := repository.NewMemberRepository(db)
	userRepo := repository.NewUserRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	paymentService := service.NewPaymentService(paymentRepo, memberRepo)
	memberService := service.NewMemberService(memberRepo, userRepo, paymentRepo, attendanceRepo)
	handler := NewPaymentHandler(paymentService, memberService)

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return handler, db, cleanup
}

func TestPaymentHandler_Create_Success(t *testing.T) {
	handler, db, cleanup := setupPaymentHandler(t)
	defer cleanup()

	gym := testutil.TestGym(t, db)
	member := testutil.TestMember(t, db, gym.ID, testutil.WithMemberName("Alice"))

	router := gin.New()
	router.Use(withUser(gymAdmin(gym.ID)))
	router.POST("/payments", handler.Create)

	w := performRequest(router, "POST", "/payments", dto.CreatePaymentRequest{
		MemberID: member.ID,
		Type:     model.PlanMonthly,
	})
	resp := parseResponse(t, w)

	assert.Equal(t, response.CodeSuccess, resp.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(1000), data["amount"])
	assert.Equal(t, model.PaymentStatusActive, data["status"])
	assert.Equal(t, "Alice", data["member_name"])
}

func TestPaymentHandler_Create_InvalidPlanType(t *testing.T) {
	handler, db, cleanup := setupPaymentHandler(t)
	defer cleanup()

	gym := testutil.TestGym(t, db)
	member := testutil.TestMember(t, db, gym.ID)

	router := gin.New()
	router.Use(withUser(gymAdmin(gym.ID)))
	router.POST("/payments", handler.Create)

	// Binding oneof rejects the unknown plan type
	w := performRequest(router, "POST", "/payments", map[string]interface{}{
		"member_id": member.ID,
		"type":      "weekly",
	})
	resp := parseResponse(t, w)

	assert.Equal(t, response.CodeParamError, resp.Code)
}

func TestPaymentHandler_Create_MemberNotFound(t *testing.T) {
	handler, db, cleanup := setupPaymentHandler(t)
	defer cleanup()

	gym := testutil.TestGym(t, db)

	router := gin.New()
	router.Use(withUser(gymAdmin(gym.ID)))
	router.POST("/payments", handler.Create)

	w := performRequest(router, "POST", "/payments", dto.CreatePaymentRequest{
		MemberID: 99999,
		Type:     model.PlanDaily,
	})
	resp := parseResponse(t, w)

	assert.Equal(t, response.CodeResourceNotFound, resp.Code)
}

func TestPaymentHandler_List(t *testing.T) {
	handler, db, cleanup := setupPaymentHandler(t)
	defer cleanup()

	gym := testutil.TestGym(t, db)
	member := testutil.TestMember(t, db, gym.ID, testutil.WithMemberName("Bob"))
	testutil.TestPayment(t, db, member.ID)

	router := gin.New()
	router.Use(withUser(gymAdmin(gym.ID)))
	router.GET("/payments", handler.List)

	w := performRequest(router, "GET", "/payments", nil)
	resp := parseResponse(t, w)

	assert.Equal(t, response.CodeSuccess, resp.Code)
	items := resp.Data.([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Bob", items[0].(map[string]interface{})["member_name"])
}

func TestPaymentHandler_MyPayments(t *testing.T) {
	handler, db, cleanup := setupPaymentHandler(t)
	defer cleanup()

	gym := testutil.TestGym(t, db)
	member := testutil.TestMember(t, db, gym.ID, testutil.WithMemberUsername("carol"))

	now := time.Now()
	testutil.TestPayment(t, db, member.ID, testutil.WithEndDate(now.AddDate(0, 0, -1)))

	memberUser := &model.User{
		ID:       2000,
		Username: "carol",
		Role:     model.RoleMember,
		GymID:    &gym.ID,
	}

	router := gin.New()
	router.Use(withUser(memberUser))
	router.GET("/me/payments", handler.MyPayments)

	w := performRequest(router, "GET", "/me/payments", nil)
	resp := parseResponse(t, w)

	assert.Equal(t, response.CodeSuccess, resp.Code)
	items := resp.Data.([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	// Stored status stays active, derived status reports expired
	assert.Equal(t, model.PaymentStatusActive, item["status"])
	assert.Equal(t, model.PaymentStatusExpired, item["effective_status"])
}

func TestPaymentHandler_MyPayments_NoMemberRecord(t *testing.T) {
	handler, _, cleanup := setupPaymentHandler(t)
	defer cleanup()

	router := gin.New()
	router.Use(withUser(&model.User{ID: 1, Username: "ghost", Role: model.RoleMember}))
	router.GET("/me/payments", handler.MyPayments)

	w := performRequest(router, "GET", "/me/payments", nil)
	resp := parseResponse(t, w)

	assert.Equal(t, response.CodeResourceNotFound, resp.Code)
}
