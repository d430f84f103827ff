package dto

// CreatePaymentRequest 新增套餐请求。Amount 为 0 时取套餐表默认价。
type CreatePaymentRequest struct {
	MemberID int64   `json:"member_id" binding:"required"`
	Type     string  `json:"type" binding:"required,oneof=daily monthly 3month 6month 1year"`
	Amount   float64 `json:"amount" binding:"omitempty,gt=0"`
}

// PaymentInfo 套餐信息。Status 为落库值，EffectiveStatus 按 EndDate 实时推导。
type PaymentInfo struct {
	ID              int64   `json:"id"`
	MemberID        int64   `json:"member_id"`
	MemberName      string  `json:"member_name,omitempty"`
	Type            string  `json:"type"`
	Amount          float64 `json:"amount"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Status          string  `json:"status"`
	EffectiveStatus string  `json:"effective_status"`
}
