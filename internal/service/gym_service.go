package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/qs3c/gym_go_server/internal/model"
	"github.com/qs3c/gym_go_server/internal/model/dto"
	"github.com/qs3c/gym_go_server/internal/pkg/oss"
	"github.com/qs3c/gym_go_server/internal/pkg/qrcode"
	"github.com/qs3c/gym_go_server/internal/repository"
)

var (
	ErrMissingFields = errors.New("请填写所有必填项")
	ErrGymNotFound   = errors.New("场馆不存在")
)

type GymService struct {
	gymRepo   *repository.GymRepository
	userRepo  *repository.UserRepository
	ossClient *oss.Client // 可为 nil，此时二维码以 data URL 落库
}

func NewGymService(gymRepo *repository.GymRepository, userRepo *repository.UserRepository, ossClient *oss.Client) *GymService {
	return &GymService{
		gymRepo:   gymRepo,
		userRepo:  userRepo,
		ossClient: ossClient,
	}
}

// Create 创建场馆：落库拿到 ID、生成二维码回写、建配套 gymadmin 账号，
// 三步在同一事务内，任一步失败整体回滚。
func (s *GymService) Create(req *dto.CreateGymRequest) (*dto.GymInfo, error) {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.AdminUsername) == "" ||
		strings.TrimSpace(req.AdminPassword) == "" {
		return nil, ErrMissingFields
	}

	gym := &model.Gym{
		Name:          req.Name,
		Address:       req.Address,
		Phone:         req.Phone,
		Email:         req.Email,
		AdminUsername: req.AdminUsername,
		AdminPassword: req.AdminPassword,
	}

	err := s.gymRepo.Transaction(func(tx *gorm.DB) error {
		gymTx := s.gymRepo.WithTx(tx)
		if err := gymTx.Create(gym); err != nil {
			return err
		}

		qrImage, err := s.renderQR(gym.ID, gym.Name)
		if err != nil {
			return err
		}
		gym.QRCode = qrImage
		if err := gymTx.Update(gym); err != nil {
			return err
		}

		adminUser := &model.User{
			Username: req.AdminUsername,
			Password: req.AdminPassword,
			Role:     model.RoleGymAdmin,
			GymID:    &gym.ID,
		}
		return s.userRepo.WithTx(tx).Create(adminUser)
	})
	if err != nil {
		return nil, err
	}

	return buildGymInfo(gym), nil
}

// Update 按 ID 整体替换可编辑字段并重新生成二维码（名字可能变了）。
// ID 与 CreatedAt 不可变。
func (s *GymService) Update(id int64, req *dto.UpdateGymRequest) (*dto.GymInfo, error) {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.AdminUsername) == "" ||
		strings.TrimSpace(req.AdminPassword) == "" {
		return nil, ErrMissingFields
	}

	gym, err := s.gymRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}

	gym.Name = req.Name
	gym.Address = req.Address
	gym.Phone = req.Phone
	gym.Email = req.Email
	gym.AdminUsername = req.AdminUsername
	gym.AdminPassword = req.AdminPassword

	qrImage, err := s.renderQR(gym.ID, gym.Name)
	if err != nil {
		return nil, err
	}
	gym.QRCode = qrImage

	if err := s.gymRepo.Update(gym); err != nil {
		return nil, err
	}

	return buildGymInfo(gym), nil
}

// Delete 只删场馆记录。会员、支付、考勤和管理员账号成为孤儿数据，
// 这是沿用的产品行为，不做级联。
func (s *GymService) Delete(id int64) error {
	if _, err := s.gymRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGymNotFound
		}
		return err
	}
	return s.gymRepo.Delete(id)
}

func (s *GymService) Get(id int64) (*dto.GymInfo, error) {
	gym, err := s.gymRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}
	return buildGymInfo(gym), nil
}

func (s *GymService) List() ([]*dto.GymInfo, error) {
	gyms, err := s.gymRepo.List()
	if err != nil {
		return nil, err
	}

	infos := make([]*dto.GymInfo, 0, len(gyms))
	for _, gym := range gyms {
		infos = append(infos, buildGymInfo(gym))
	}
	return infos, nil
}

// renderQR 渲染签到二维码。配置了 OSS 就传图床返回 URL，
// 否则内联成 data URL。
func (s *GymService) renderQR(gymID int64, gymName string) (string, error) {
	payload := qrcode.BuildPayload(gymID, gymName)

	if s.ossClient != nil {
		png, err := qrcode.Encode(payload)
		if err != nil {
			return "", err
		}
		return s.ossClient.UploadGymQR(gymID, png)
	}

	return qrcode.EncodeDataURL(payload)
}

func buildGymInfo(gym *model.Gym) *dto.GymInfo {
	return &dto.GymInfo{
		ID:            gym.ID,
		Name:          gym.Name,
		Address:       gym.Address,
		Phone:         gym.Phone,
		Email:         gym.Email,
		AdminUsername: gym.AdminUsername,
		QRCode:        gym.QRCode,
		CreatedAt:     gym.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
