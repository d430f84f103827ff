package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/gym_go_server/internal/model"
)

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) Create(record *model.Attendance) error {
	return r.db.Create(record).Error
}

// GetByMemberAndDate 查会员某天的记录，(member_id, date) 每天至多一条
func (r *AttendanceRepository) GetByMemberAndDate(memberID int64, date string) (*model.Attendance, error) {
	var record model.Attendance
	err := r.db.Where("member_id = ? AND date = ?", memberID, date).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *AttendanceRepository) Update(record *model.Attendance) error {
	return r.db.Save(record).Error
}

func (r *AttendanceRepository) ListByGym(gymID int64) ([]*model.Attendance, error) {
	var records []*model.Attendance
	err := r.db.Where("gym_id = ?", gymID).Order("date DESC, id DESC").Find(&records).Error
	return records, err
}

func (r *AttendanceRepository) ListByMember(memberID int64) ([]*model.Attendance, error) {
	var records []*model.Attendance
	err := r.db.Where("member_id = ?", memberID).Order("date DESC, id DESC").Find(&records).Error
	return records, err
}

// CountByMemberAndPrefix 统计日期前缀命中的记录数（"2026-09" 即当月）
func (r *AttendanceRepository) CountByMemberAndPrefix(memberID int64, datePrefix string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Attendance{}).
		Where("member_id = ? AND date LIKE ?", memberID, datePrefix+"%").
		Count(&count).Error
	return count, err
}

// CountByGymAndDate 某场馆某天的打卡数（看板统计）
func (r *AttendanceRepository) CountByGymAndDate(gymID int64, date string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Attendance{}).
		Where("gym_id = ? AND date = ?", gymID, date).
		Count(&count).Error
	return count, err
}
