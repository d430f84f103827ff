package dto

// CreateMemberRequest 新增会员请求
type CreateMemberRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
}

// UpdateMemberRequest 编辑会员请求。ID、GymID、JoinDate 不受影响。
type UpdateMemberRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
}

// MemberInfo 会员信息
type MemberInfo struct {
	ID       int64  `json:"id"`
	GymID    int64  `json:"gym_id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	JoinDate string `json:"join_date"`
	IsActive bool   `json:"is_active"`
}

// MemberProfile 会员端首页聚合数据
type MemberProfile struct {
	Member        *MemberInfo       `json:"member"`
	CurrentPlan   *PaymentInfo      `json:"current_plan,omitempty"`
	MonthlyVisits int64             `json:"monthly_visits"`
	RecentRecords []*AttendanceInfo `json:"recent_records"`
}
