package model

// Attendance 考勤记录，(member_id, date) 每天至多一条。
// CheckIn / CheckOut 保存为 "03:04:05 PM" 格式的时间串，Date 为 "2006-01-02"。
// CheckOut 写入后当天即为终态。
type Attendance struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	MemberID int64  `gorm:"not null;index:idx_member_date" json:"member_id"`
	GymID    int64  `gorm:"not null;index" json:"gym_id"`
	Date     string `gorm:"size:10;not null;index:idx_member_date" json:"date"`
	CheckIn  string `gorm:"size:20;not null" json:"check_in"`
	CheckOut string `gorm:"size:20" json:"check_out,omitempty"`
}

func (Attendance) TableName() string {
	return "attendance"
}
