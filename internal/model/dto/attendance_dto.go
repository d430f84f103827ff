package dto

// CheckinRequest 会员扫码签到请求，QRData 为扫出的原始字符串
type CheckinRequest struct {
	QRData string `json:"qr_data" binding:"required"`
}

// AttendanceInfo 考勤记录
type AttendanceInfo struct {
	ID         int64  `json:"id"`
	MemberID   int64  `json:"member_id"`
	MemberName string `json:"member_name,omitempty"`
	GymID      int64  `json:"gym_id"`
	Date       string `json:"date"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out,omitempty"`
	Duration   string `json:"duration"` // "1h 30m" 或 "in progress"
}

// MarkResult 打卡结果
type MarkResult struct {
	State  string          `json:"state"` // checked_in, completed, already_completed
	Record *AttendanceInfo `json:"record"`
}

// GymStats 管理端看板统计
type GymStats struct {
	MemberCount   int64 `json:"member_count"`
	TodayCheckins int64 `json:"today_checkins"`
	ActivePlans   int64 `json:"active_plans"`
}
