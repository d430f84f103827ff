package model

import (
	"time"
)

// 套餐类型
const (
	PlanDaily   = "daily"
	PlanMonthly = "monthly"
	Plan3Month  = "3month"
	Plan6Month  = "6month"
	Plan1Year   = "1year"
)

// 支付状态。落库状态创建后不会被定时改写，过期在读取时推导。
const (
	PaymentStatusActive  = "active"
	PaymentStatusExpired = "expired"
	PaymentStatusPending = "pending"
)

// PaymentPlan 会员购买的套餐，EndDate 由套餐时长表在创建时算出。
type PaymentPlan struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	MemberID  int64     `gorm:"not null;index" json:"member_id"`
	Type      string    `gorm:"size:20;not null" json:"type"` // daily, monthly, 3month, 6month, 1year
	Amount    float64   `gorm:"type:decimal(10,2)" json:"amount"`
	StartDate time.Time `gorm:"not null" json:"start_date"`
	EndDate   time.Time `gorm:"not null;index" json:"end_date"`
	Status    string    `gorm:"size:20;default:active" json:"status"` // active, expired, pending
	CreatedAt time.Time `json:"created_at"`
}

func (PaymentPlan) TableName() string {
	return "payments"
}
