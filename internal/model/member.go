package model

import (
	"time"
)

// Member 会员档案，与一条 member 角色的 User 配对（同用户名密码）。
// 当前套餐不落库，由支付记录实时推导。
type Member struct {
	ID       int64     `gorm:"primaryKey" json:"id"`
	GymID    int64     `gorm:"not null;index" json:"gym_id"`
	Username string    `gorm:"size:50;not null;index" json:"username"`
	Password string    `gorm:"size:100;not null" json:"-"`
	Name     string    `gorm:"size:100;not null" json:"name"`
	Email    string    `gorm:"size:100" json:"email"`
	Phone    string    `gorm:"size:30" json:"phone"`
	JoinDate time.Time `gorm:"not null" json:"join_date"`
	IsActive bool      `gorm:"default:true" json:"is_active"`
}

func (Member) TableName() string {
	return "members"
}
