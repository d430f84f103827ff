package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/gym_go_server/internal/api/middleware"
	"github.com/qs3c/gym_go_server/internal/model/dto"
	"github.com/qs3c/gym_go_server/internal/pkg/qrcode"
	"github.com/qs3c/gym_go_server/internal/pkg/response"
	"github.com/qs3c/gym_go_server/internal/service"
)

type AttendanceHandler struct {
	attendanceService *service.AttendanceService
	memberService     *service.MemberService
	statsService      *service.StatsService
}

func NewAttendanceHandler(
	attendanceService *service.AttendanceService,
	memberService *service.MemberService,
	statsService *service.StatsService,
) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
		memberService:     memberService,
		statsService:      statsService,
	}
}

// Mark 管理端手动打卡
// POST /api/v1/attendance/:memberId/mark
func (h *AttendanceHandler) Mark(c *gin.Context) {
	user, _ := middleware.GetUser(c)
	if user.GymID == nil {
		response.PermissionError(c, "")
		return
	}

	memberID, err := strconv.ParseInt(c.Param("memberId"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的会员 ID")
		return
	}

	// 只能给本场馆的会员打卡
	member, err := h.memberService.GetForGym(memberID, *user.GymID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMemberNotFound):
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	result, err := h.attendanceService.Mark(member.ID, member.GymID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	writeMarkResult(c, result)
}

// List 当前场馆的考勤记录
// GET /api/v1/attendance
func (h *AttendanceHandler) List(c *gin.Context) {
	user, _ := middleware.GetUser(c)
	if user.GymID == nil {
		response.PermissionError(c, "")
		return
	}

	infos, err := h.attendanceService.ListForGym(*user.GymID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, infos)
}

// Stats 管理端看板统计
// GET /api/v1/stats
func (h *AttendanceHandler) Stats(c *gin.Context) {
	user, _ := middleware.GetUser(c)
	if user.GymID == nil {
		response.PermissionError(c, "")
		return
	}

	stats, err := h.statsService.GymStats(c.Request.Context(), *user.GymID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, stats)
}

// Checkin 会员扫码打卡。二维码格式错误或场馆不匹配都不产生写入。
// POST /api/v1/me/checkin
func (h *AttendanceHandler) Checkin(c *gin.Context) {
	user, _ := middleware.GetUser(c)

	var req dto.CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	member, err := h.memberService.GetByUsername(user.Username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMemberNotFound):
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	result, err := h.attendanceService.MarkViaQR(member.ID, req.QRData)
	if err != nil {
		switch {
		case errors.Is(err, qrcode.ErrInvalidFormat):
			response.QRError(c, err.Error())
		case errors.Is(err, service.ErrGymMismatch):
			response.QRError(c, err.Error())
		case errors.Is(err, service.ErrMemberNotFound):
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	writeMarkResult(c, result)
}

// MyAttendance 会员自己的考勤记录
// GET /api/v1/me/attendance
func (h *AttendanceHandler) MyAttendance(c *gin.Context) {
	user, _ := middleware.GetUser(c)

	member, err := h.memberService.GetByUsername(user.Username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMemberNotFound):
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	infos, err := h.attendanceService.ListForMember(member.ID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, infos)
}

func writeMarkResult(c *gin.Context, result *dto.MarkResult) {
	switch result.State {
	case service.StateCheckedIn:
		response.SuccessWithMessage(c, "签到成功", result)
	case service.StateCompleted:
		response.SuccessWithMessage(c, "签退成功", result)
	default:
		// 已完成当天打卡，不再变更
		response.SuccessWithMessage(c, "今天的打卡已完成", result)
	}
}
