package model

import (
	"time"
)

// 用户角色
const (
	RoleSuperadmin = "superadmin"
	RoleGymAdmin   = "gymadmin"
	RoleMember     = "member"
)

// User 登录账号。gymadmin / member 通过 GymID 关联场馆。
// 用户名唯一性沿用前端约定，不加唯一索引。
type User struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;index;not null" json:"username"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      string    `gorm:"size:20;not null;index" json:"role"` // superadmin, gymadmin, member
	GymID     *int64    `gorm:"index" json:"gym_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
