package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/gym_go_server/internal/model"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// WithTx 返回绑定到指定事务的仓储
func (r *MemberRepository) WithTx(tx *gorm.DB) *MemberRepository {
	return &MemberRepository{db: tx}
}

func (r *MemberRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

func (r *MemberRepository) Create(member *model.Member) error {
	return r.db.Create(member).Error
}

func (r *MemberRepository) GetByID(id int64) (*model.Member, error) {
	var member model.Member
	err := r.db.Where("id = ?", id).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByUsername 会员端用登录用户名反查会员档案
func (r *MemberRepository) GetByUsername(username string) (*model.Member, error) {
	var member model.Member
	err := r.db.Where("username = ?", username).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepository) Update(member *model.Member) error {
	return r.db.Save(member).Error
}

// ListByGym 按场馆过滤（过滤查询，不是存储关系）
func (r *MemberRepository) ListByGym(gymID int64) ([]*model.Member, error) {
	var members []*model.Member
	err := r.db.Where("gym_id = ?", gymID).Order("id ASC").Find(&members).Error
	return members, err
}

func (r *MemberRepository) CountByGym(gymID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Member{}).Where("gym_id = ?", gymID).Count(&count).Error
	return count, err
}
