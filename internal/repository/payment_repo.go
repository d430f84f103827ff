package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/gym_go_server/internal/model"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(payment *model.PaymentPlan) error {
	return r.db.Create(payment).Error
}

func (r *PaymentRepository) GetByID(id int64) (*model.PaymentPlan, error) {
	var payment model.PaymentPlan
	err := r.db.Where("id = ?", id).First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) ListByMember(memberID int64) ([]*model.PaymentPlan, error) {
	var payments []*model.PaymentPlan
	err := r.db.Where("member_id = ?", memberID).Order("id ASC").Find(&payments).Error
	return payments, err
}

// ListByMembers 批量查一组会员的支付记录（管理端列表）
func (r *PaymentRepository) ListByMembers(memberIDs []int64) ([]*model.PaymentPlan, error) {
	if len(memberIDs) == 0 {
		return nil, nil
	}
	var payments []*model.PaymentPlan
	err := r.db.Where("member_id IN ?", memberIDs).Order("id ASC").Find(&payments).Error
	return payments, err
}

// FirstActive 返回按存储顺序第一条未过期且落库状态为 active 的记录。
// 多条同时命中时不保证是最近一条，保持原有语义。
func (r *PaymentRepository) FirstActive(memberID int64, now time.Time) (*model.PaymentPlan, error) {
	var payment model.PaymentPlan
	err := r.db.Where("member_id = ? AND end_date >= ? AND status = ?",
		memberID, now, model.PaymentStatusActive).
		Order("id ASC").First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// CountActiveByMembers 统计一组会员中未过期 active 套餐的数量
func (r *PaymentRepository) CountActiveByMembers(memberIDs []int64, now time.Time) (int64, error) {
	if len(memberIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&model.PaymentPlan{}).
		Where("member_id IN ? AND end_date >= ? AND status = ?",
			memberIDs, now, model.PaymentStatusActive).
		Count(&count).Error
	return count, err
}
