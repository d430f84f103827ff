package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/gym_go_server/internal/model"
	"github.com/qs3c/gym_go_server/internal/model/dto"
	"github.com/qs3c/gym_go_server/internal/pkg/qrcode"
	"github.com/qs3c/gym_go_server/internal/pkg/ws"
	"github.com/qs3c/gym_go_server/internal/repository"
)

var ErrGymMismatch = errors.New("二维码不属于你的场馆")

// 时间串格式沿用存量数据："2006-01-02" 日期，"03:04:05 PM" 打卡时间
const (
	dateLayout = "2006-01-02"
	timeLayout = "03:04:05 PM"
)

// 打卡状态机：not_present -> checked_in -> completed，当天 completed 即终态
const (
	StateCheckedIn        = "checked_in"
	StateCompleted        = "completed"
	StateAlreadyCompleted = "already_completed"
)

type AttendanceService struct {
	attendanceRepo *repository.AttendanceRepository
	memberRepo     *repository.MemberRepository
	userRepo       *repository.UserRepository
	hub            *ws.Hub // 可为 nil（测试、无推送场景）
}

func NewAttendanceService(
	attendanceRepo *repository.AttendanceRepository,
	memberRepo *repository.MemberRepository,
	userRepo *repository.UserRepository,
	hub *ws.Hub,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		memberRepo:     memberRepo,
		userRepo:       userRepo,
		hub:            hub,
	}
}

// Mark 打卡。当天无记录则签到，已签到未签退则签退，
// 已签退则不做任何修改只返回提示。
func (s *AttendanceService) Mark(memberID, gymID int64) (*dto.MarkResult, error) {
	now := time.Now()
	today := now.Format(dateLayout)

	record, err := s.attendanceRepo.GetByMemberAndDate(memberID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	memberName := s.memberName(memberID)

	// 无记录：签到
	if record == nil {
		record = &model.Attendance{
			MemberID: memberID,
			GymID:    gymID,
			Date:     today,
			CheckIn:  now.Format(timeLayout),
		}
		if err := s.attendanceRepo.Create(record); err != nil {
			return nil, err
		}
		s.notifyAdmins(gymID, ws.TypeCheckin, record, memberName)
		return &dto.MarkResult{
			State:  StateCheckedIn,
			Record: buildAttendanceInfo(record, memberName),
		}, nil
	}

	// 已签退：终态，不再变更
	if record.CheckOut != "" {
		return &dto.MarkResult{
			State:  StateAlreadyCompleted,
			Record: buildAttendanceInfo(record, memberName),
		}, nil
	}

	// 已签到：签退
	record.CheckOut = now.Format(timeLayout)
	if err := s.attendanceRepo.Update(record); err != nil {
		return nil, err
	}
	s.notifyAdmins(gymID, ws.TypeCheckout, record, memberName)
	return &dto.MarkResult{
		State:  StateCompleted,
		Record: buildAttendanceInfo(record, memberName),
	}, nil
}

// MarkViaQR 扫码打卡。先解析并校验二维码归属，场馆不匹配直接报错、
// 不产生任何写入；校验通过后走同一个状态机。
func (s *AttendanceService) MarkViaQR(memberID int64, qrData string) (*dto.MarkResult, error) {
	payload, err := qrcode.ParsePayload(qrData)
	if err != nil {
		return nil, err
	}

	member, err := s.memberRepo.GetByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	if payload.GymID != member.GymID {
		return nil, ErrGymMismatch
	}

	return s.Mark(member.ID, member.GymID)
}

// ListForGym 管理端考勤列表，会员查不到时显示 Unknown
func (s *AttendanceService) ListForGym(gymID int64) ([]*dto.AttendanceInfo, error) {
	records, err := s.attendanceRepo.ListByGym(gymID)
	if err != nil {
		return nil, err
	}

	members, err := s.memberRepo.ListByGym(gymID)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	infos := make([]*dto.AttendanceInfo, 0, len(records))
	for _, r := range records {
		name, ok := names[r.MemberID]
		if !ok {
			name = "Unknown"
		}
		infos = append(infos, buildAttendanceInfo(r, name))
	}
	return infos, nil
}

func (s *AttendanceService) ListForMember(memberID int64) ([]*dto.AttendanceInfo, error) {
	records, err := s.attendanceRepo.ListByMember(memberID)
	if err != nil {
		return nil, err
	}

	infos := make([]*dto.AttendanceInfo, 0, len(records))
	for _, r := range records {
		infos = append(infos, buildAttendanceInfo(r, ""))
	}
	return infos, nil
}

// MonthlyCount 当前自然月的打卡天数
func (s *AttendanceService) MonthlyCount(memberID int64) (int64, error) {
	return s.attendanceRepo.CountByMemberAndPrefix(memberID, time.Now().Format("2006-01"))
}

// Duration 按固定参考日解析两个时间串求差，格式化成 "1h 30m"。
// 未签退返回 "in progress"。只在签到签退同天且顺序正常时正确。
func Duration(checkIn, checkOut string) string {
	if checkOut == "" {
		return "in progress"
	}

	in, err := time.Parse(timeLayout, checkIn)
	if err != nil {
		return "in progress"
	}
	out, err := time.Parse(timeLayout, checkOut)
	if err != nil {
		return "in progress"
	}

	elapsed := out.Sub(in)
	hours := int(elapsed.Hours())
	minutes := int(elapsed.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

func (s *AttendanceService) memberName(memberID int64) string {
	member, err := s.memberRepo.GetByID(memberID)
	if err != nil {
		return "Unknown"
	}
	return member.Name
}

// notifyAdmins 把打卡事件推给场馆的全部管理员连接
func (s *AttendanceService) notifyAdmins(gymID int64, eventType string, record *model.Attendance, memberName string) {
	if s.hub == nil {
		return
	}

	admins, err := s.userRepo.ListByGymAndRole(gymID, model.RoleGymAdmin)
	if err != nil || len(admins) == 0 {
		return
	}

	ids := make([]int64, 0, len(admins))
	for _, a := range admins {
		ids = append(ids, a.ID)
	}
	s.hub.SendToUsers(ids, &ws.Message{
		Type: eventType,
		Data: buildAttendanceInfo(record, memberName),
	})
}

func buildAttendanceInfo(r *model.Attendance, memberName string) *dto.AttendanceInfo {
	return &dto.AttendanceInfo{
		ID:         r.ID,
		MemberID:   r.MemberID,
		MemberName: memberName,
		GymID:      r.GymID,
		Date:       r.Date,
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		Duration:   Duration(r.CheckIn, r.CheckOut),
	}
}
