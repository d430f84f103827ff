package service

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/gym_go_server/internal/model"
	"github.com/qs3c/gym_go_server/internal/model/dto"
	"github.com/qs3c/gym_go_server/internal/repository"
)

var ErrMemberNotFound = errors.New("会员不存在")

type MemberService struct {
	memberRepo     *repository.MemberRepository
	userRepo       *repository.UserRepository
	paymentRepo    *repository.PaymentRepository
	attendanceRepo *repository.AttendanceRepository
}

func NewMemberService(
	memberRepo *repository.MemberRepository,
	userRepo *repository.UserRepository,
	paymentRepo *repository.PaymentRepository,
	attendanceRepo *repository.AttendanceRepository,
) *MemberService {
	return &MemberService{
		memberRepo:     memberRepo,
		userRepo:       userRepo,
		paymentRepo:    paymentRepo,
		attendanceRepo: attendanceRepo,
	}
}

// Create 新增会员并建配套的 member 账号（同用户名密码）。
// isActive 固定 true，joinDate 取当前时间。
func (s *MemberService) Create(gymID int64, req *dto.CreateMemberRequest) (*dto.MemberInfo, error) {
	if strings.TrimSpace(req.Username) == "" ||
		strings.TrimSpace(req.Password) == "" ||
		strings.TrimSpace(req.Name) == "" {
		return nil, ErrMissingFields
	}

	member := &model.Member{
		GymID:    gymID,
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		JoinDate: time.Now(),
		IsActive: true,
	}
	memberUser := &model.User{
		Username: req.Username,
		Password: req.Password,
		Role:     model.RoleMember,
		GymID:    &gymID,
	}

	// 会员档案和登录账号同一事务写入，避免出现只有一半的会员
	err := s.memberRepo.Transaction(func(tx *gorm.DB) error {
		if err := s.memberRepo.WithTx(tx).Create(member); err != nil {
			return err
		}
		return s.userRepo.WithTx(tx).Create(memberUser)
	})
	if err != nil {
		return nil, err
	}

	return buildMemberInfo(member), nil
}

// Update 覆盖可编辑字段。ID、GymID、JoinDate 保留原值。
func (s *MemberService) Update(id int64, req *dto.UpdateMemberRequest) (*dto.MemberInfo, error) {
	if strings.TrimSpace(req.Username) == "" ||
		strings.TrimSpace(req.Password) == "" ||
		strings.TrimSpace(req.Name) == "" {
		return nil, ErrMissingFields
	}

	member, err := s.memberRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	member.Username = req.Username
	member.Password = req.Password
	member.Name = req.Name
	member.Email = req.Email
	member.Phone = req.Phone

	if err := s.memberRepo.Update(member); err != nil {
		return nil, err
	}

	return buildMemberInfo(member), nil
}

func (s *MemberService) Get(id int64) (*dto.MemberInfo, error) {
	member, err := s.memberRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return buildMemberInfo(member), nil
}

// GetForGym 限定场馆取会员。别的场馆的会员对调用方来说等同于不存在，
// 不暴露其是否存在。
func (s *MemberService) GetForGym(id, gymID int64) (*dto.MemberInfo, error) {
	info, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if info.GymID != gymID {
		return nil, ErrMemberNotFound
	}
	return info, nil
}

// GetByUsername 用登录用户名反查会员档案（会员端接口定位自己用）
func (s *MemberService) GetByUsername(username string) (*dto.MemberInfo, error) {
	member, err := s.memberRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return buildMemberInfo(member), nil
}

// List 某场馆的全部会员
func (s *MemberService) List(gymID int64) ([]*dto.MemberInfo, error) {
	members, err := s.memberRepo.ListByGym(gymID)
	if err != nil {
		return nil, err
	}

	infos := make([]*dto.MemberInfo, 0, len(members))
	for _, m := range members {
		infos = append(infos, buildMemberInfo(m))
	}
	return infos, nil
}

// Profile 会员端首页聚合：档案 + 当前套餐（实时推导）+ 本月打卡数 + 最近记录
func (s *MemberService) Profile(username string) (*dto.MemberProfile, error) {
	member, err := s.memberRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	now := time.Now()
	profile := &dto.MemberProfile{
		Member:        buildMemberInfo(member),
		RecentRecords: []*dto.AttendanceInfo{},
	}

	current, err := s.paymentRepo.FirstActive(member.ID, now)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if current != nil {
		profile.CurrentPlan = buildPaymentInfo(current, "", now)
	}

	visits, err := s.attendanceRepo.CountByMemberAndPrefix(member.ID, now.Format("2006-01"))
	if err != nil {
		return nil, err
	}
	profile.MonthlyVisits = visits

	records, err := s.attendanceRepo.ListByMember(member.ID)
	if err != nil {
		return nil, err
	}
	if len(records) > 10 {
		records = records[:10]
	}
	for _, r := range records {
		profile.RecentRecords = append(profile.RecentRecords, buildAttendanceInfo(r, member.Name))
	}

	return profile, nil
}

func buildMemberInfo(member *model.Member) *dto.MemberInfo {
	return &dto.MemberInfo{
		ID:       member.ID,
		GymID:    member.GymID,
		Username: member.Username,
		Name:     member.Name,
		Email:    member.Email,
		Phone:    member.Phone,
		JoinDate: member.JoinDate.Format("2006-01-02"),
		IsActive: member.IsActive,
	}
}
