package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/gym_go_server/internal/model"
)

type GymRepository struct {
	db *gorm.DB
}

func NewGymRepository(db *gorm.DB) *GymRepository {
	return &GymRepository{db: db}
}

// WithTx 返回绑定到指定事务的仓储
func (r *GymRepository) WithTx(tx *gorm.DB) *GymRepository {
	return &GymRepository{db: tx}
}

func (r *GymRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

func (r *GymRepository) Create(gym *model.Gym) error {
	return r.db.Create(gym).Error
}

func (r *GymRepository) GetByID(id int64) (*model.Gym, error) {
	var gym model.Gym
	err := r.db.Where("id = ?", id).First(&gym).Error
	if err != nil {
		return nil, err
	}
	return &gym, nil
}

func (r *GymRepository) Update(gym *model.Gym) error {
	return r.db.Save(gym).Error
}

// Delete 只删场馆本身，不级联会员/支付/考勤/管理员账号
func (r *GymRepository) Delete(id int64) error {
	return r.db.Delete(&model.Gym{}, id).Error
}

func (r *GymRepository) List() ([]*model.Gym, error) {
	var gyms []*model.Gym
	err := r.db.Order("id ASC").Find(&gyms).Error
	return gyms, err
}
