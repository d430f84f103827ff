package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/gym_go_server/internal/model"
	"github.com/qs3c/gym_go_server/internal/model/dto"
	"github.com/qs3c/gym_go_server/internal/repository"
)

var (
	ErrUnknownPlanType = errors.New("未知的套餐类型")
	ErrNoActivePlan    = errors.New("没有生效中的套餐")
)

// Plan 套餐定义：默认价格 + 有效天数
type Plan struct {
	Name     string
	Amount   float64
	Duration int // 天
}

// 固定套餐表，EndDate = StartDate + Duration 天
var planTable = map[string]Plan{
	model.PlanDaily:   {Name: "Daily Plan", Amount: 50, Duration: 1},
	model.PlanMonthly: {Name: "Monthly Plan", Amount: 1000, Duration: 30},
	model.Plan3Month:  {Name: "3 Month Plan", Amount: 2700, Duration: 90},
	model.Plan6Month:  {Name: "6 Month Plan", Amount: 5000, Duration: 180},
	model.Plan1Year:   {Name: "1 Year Plan", Amount: 9000, Duration: 365},
}

// PlanFor 查套餐表
func PlanFor(planType string) (Plan, bool) {
	p, ok := planTable[planType]
	return p, ok
}

type PaymentService struct {
	paymentRepo *repository.PaymentRepository
	memberRepo  *repository.MemberRepository
}

func NewPaymentService(paymentRepo *repository.PaymentRepository, memberRepo *repository.MemberRepository) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		memberRepo:  memberRepo,
	}
}

// Create 购买套餐。金额缺省取套餐表默认价，落库状态固定 active，
// 之后不会被定时改写，过期与否由读取方推导。
func (s *PaymentService) Create(req *dto.CreatePaymentRequest) (*dto.PaymentInfo, error) {
	plan, ok := planTable[req.Type]
	if !ok {
		return nil, ErrUnknownPlanType
	}

	member, err := s.memberRepo.GetByID(req.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	amount := req.Amount
	if amount == 0 {
		amount = plan.Amount
	}

	startDate := time.Now()
	payment := &model.PaymentPlan{
		MemberID:  member.ID,
		Type:      req.Type,
		Amount:    amount,
		StartDate: startDate,
		EndDate:   startDate.AddDate(0, 0, plan.Duration),
		Status:    model.PaymentStatusActive,
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, err
	}

	return buildPaymentInfo(payment, member.Name, startDate), nil
}

// ListForMember 会员的全部支付记录
func (s *PaymentService) ListForMember(memberID int64) ([]*dto.PaymentInfo, error) {
	payments, err := s.paymentRepo.ListByMember(memberID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	infos := make([]*dto.PaymentInfo, 0, len(payments))
	for _, p := range payments {
		infos = append(infos, buildPaymentInfo(p, "", now))
	}
	return infos, nil
}

// ListForGym 管理端支付列表：场馆全部会员的记录，会员查不到时显示 Unknown
func (s *PaymentService) ListForGym(gymID int64) ([]*dto.PaymentInfo, error) {
	members, err := s.memberRepo.ListByGym(gymID)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(members))
	ids := make([]int64, 0, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
		ids = append(ids, m.ID)
	}

	payments, err := s.paymentRepo.ListByMembers(ids)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	infos := make([]*dto.PaymentInfo, 0, len(payments))
	for _, p := range payments {
		name, ok := names[p.MemberID]
		if !ok {
			name = "Unknown"
		}
		infos = append(infos, buildPaymentInfo(p, name, now))
	}
	return infos, nil
}

// CurrentPlanFor 推导当前套餐：end_date 未过且落库状态 active，
// 取存储顺序的第一条。多条同时命中时不保证最新，维持原有语义。
func (s *PaymentService) CurrentPlanFor(memberID int64) (*dto.PaymentInfo, error) {
	now := time.Now()
	payment, err := s.paymentRepo.FirstActive(memberID, now)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActivePlan
		}
		return nil, err
	}
	return buildPaymentInfo(payment, "", now), nil
}

// DeriveStatus 读取时推导有效状态：落库 active 但已过 end_date 算 expired。
// 落库值本身不改。
func DeriveStatus(p *model.PaymentPlan, now time.Time) string {
	if p.Status == model.PaymentStatusActive && p.EndDate.Before(now) {
		return model.PaymentStatusExpired
	}
	return p.Status
}

func buildPaymentInfo(p *model.PaymentPlan, memberName string, now time.Time) *dto.PaymentInfo {
	return &dto.PaymentInfo{
		ID:              p.ID,
		MemberID:        p.MemberID,
		MemberName:      memberName,
		Type:            p.Type,
		Amount:          p.Amount,
		StartDate:       p.StartDate.Format("2006-01-02"),
		EndDate:         p.EndDate.Format("2006-01-02"),
		Status:          p.Status,
		EffectiveStatus: DeriveStatus(p, now),
	}
}
