package model

import (
	"time"
)

// Gym 场馆。创建时生成配套的 gymadmin 账号和签到二维码。
// ID 创建后不可变，二维码内容为 gym:<id>:<name>。
type Gym struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Address       string    `gorm:"size:255" json:"address"`
	Phone         string    `gorm:"size:30" json:"phone"`
	Email         string    `gorm:"size:100" json:"email"`
	AdminUsername string    `gorm:"size:50;not null" json:"admin_username"`
	AdminPassword string    `gorm:"size:100;not null" json:"-"`
	QRCode        string    `gorm:"type:text" json:"qr_code"` // 图片 URL 或 base64 data URL
	CreatedAt     time.Time `json:"created_at"`
}

func (Gym) TableName() string {
	return "gyms"
}
