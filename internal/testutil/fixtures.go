package testutil

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/gym_go_server/internal/model"
)

// TestUser 创建测试账号
func TestUser(t *testing.T, db *gorm.DB, opts ...func(*model.User)) *model.User {
	t.Helper()

	user := &model.User{
		Username: fmt.Sprintf("testuser_%d", time.Now().UnixNano()%100000),
		Password: "password123",
		Role:     model.RoleMember,
	}

	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// WithUsername 设置用户名
func WithUsername(username string) func(*model.User) {
	return func(u *model.User) {
		u.Username = username
	}
}

// WithPassword 设置密码
func WithPassword(password string) func(*model.User) {
	return func(u *model.User) {
		u.Password = password
	}
}

// WithRole 设置角色
func WithRole(role string) func(*model.User) {
	return func(u *model.User) {
		u.Role = role
	}
}

// WithUserGym 设置账号所属场馆
func WithUserGym(gymID int64) func(*model.User) {
	return func(u *model.User) {
		u.GymID = &gymID
	}
}

// TestGym 创建测试场馆
func TestGym(t *testing.T, db *gorm.DB, opts ...func(*model.Gym)) *model.Gym {
	t.Helper()

	gym := &model.Gym{
		Name:          fmt.Sprintf("Test Gym %d", time.Now().UnixNano()%100000),
		Address:       "1 Test Street",
		Phone:         "1234567890",
		Email:         "gym@example.com",
		AdminUsername: fmt.Sprintf("gymadmin_%d", time.Now().UnixNano()%100000),
		AdminPassword: "adminpass",
	}

	for _, opt := range opts {
		opt(gym)
	}

	if err := db.Create(gym).Error; err != nil {
		t.Fatalf("Failed to create test gym: %v", err)
	}

	return gym
}

// WithGymName 设置场馆名
func WithGymName(name string) func(*model.Gym) {
	return func(g *model.Gym) {
		g.Name = name
	}
}

// TestMember 创建测试会员
func TestMember(t *testing.T, db *gorm.DB, gymID int64, opts ...func(*model.Member)) *model.Member {
	t.Helper()

	n := time.Now().UnixNano() % 100000
	member := &model.Member{
		GymID:    gymID,
		Username: fmt.Sprintf("member_%d", n),
		Password: "memberpass",
		Name:     fmt.Sprintf("Test Member %d", n),
		Email:    "member@example.com",
		Phone:    "0987654321",
		JoinDate: time.Now(),
		IsActive: true,
	}

	for _, opt := range opts {
		opt(member)
	}

	if err := db.Create(member).Error; err != nil {
		t.Fatalf("Failed to create test member: %v", err)
	}

	return member
}

// WithMemberUsername 设置会员用户名
func WithMemberUsername(username string) func(*model.Member) {
	return func(m *model.Member) {
		m.Username = username
	}
}

// WithMemberName 设置会员姓名
func WithMemberName(name string) func(*model.Member) {
	return func(m *model.Member) {
		m.Name = name
	}
}

// TestPayment 创建测试支付记录
func TestPayment(t *testing.T, db *gorm.DB, memberID int64, opts ...func(*model.PaymentPlan)) *model.PaymentPlan {
	t.Helper()

	now := time.Now()
	payment := &model.PaymentPlan{
		MemberID:  memberID,
		Type:      model.PlanMonthly,
		Amount:    1000,
		StartDate: now,
		EndDate:   now.AddDate(0, 0, 30),
		Status:    model.PaymentStatusActive,
	}

	for _, opt := range opts {
		opt(payment)
	}

	if err := db.Create(payment).Error; err != nil {
		t.Fatalf("Failed to create test payment: %v", err)
	}

	return payment
}

// WithPlanType 设置套餐类型
func WithPlanType(planType string) func(*model.PaymentPlan) {
	return func(p *model.PaymentPlan) {
		p.Type = planType
	}
}

// WithEndDate 设置到期时间
func WithEndDate(endDate time.Time) func(*model.PaymentPlan) {
	return func(p *model.PaymentPlan) {
		p.EndDate = endDate
	}
}

// WithPaymentStatus 设置落库状态
func WithPaymentStatus(status string) func(*model.PaymentPlan) {
	return func(p *model.PaymentPlan) {
		p.Status = status
	}
}

// TestAttendance 创建测试考勤记录
func TestAttendance(t *testing.T, db *gorm.DB, memberID, gymID int64, opts ...func(*model.Attendance)) *model.Attendance {
	t.Helper()

	record := &model.Attendance{
		MemberID: memberID,
		GymID:    gymID,
		Date:     time.Now().Format("2006-01-02"),
		CheckIn:  "09:00:00 AM",
	}

	for _, opt := range opts {
		opt(record)
	}

	if err := db.Create(record).Error; err != nil {
		t.Fatalf("Failed to create test attendance: %v", err)
	}

	return record
}

// WithDate 设置考勤日期
func WithDate(date string) func(*model.Attendance) {
	return func(a *model.Attendance) {
		a.Date = date
	}
}

// WithCheckOut 设置签退时间
func WithCheckOut(checkOut string) func(*model.Attendance) {
	return func(a *model.Attendance) {
		a.CheckOut = checkOut
	}
}
