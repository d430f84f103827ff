package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/gym_go_server/internal/api/middleware"
	"github.com/qs3c/gym_go_server/internal/model/dto"
	"github.com/qs3c/gym_go_server/internal/pkg/response"
	"github.com/qs3c/gym_go_server/internal/service"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
	memberService  *service.MemberService
}

func NewPaymentHandler(paymentService *service.PaymentService, memberService *service.MemberService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		memberService:  memberService,
	}
}

// Create 为会员购买套餐
// POST /api/v1/payments
func (h *PaymentHandler) Create(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	info, err := h.paymentService.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownPlanType):
			response.ParamError(c, err.Error())
		case errors.Is(err, service.ErrMemberNotFound):
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "套餐添加成功", info)
}

// List 当前场馆的全部支付记录
// GET /api/v1/payments
func (h *PaymentHandler) List(c *gin.Context) {
	user, _ := middleware.GetUser(c)
	if user.GymID == nil {
		response.PermissionError(c, "")
		return
	}

	infos, err := h.paymentService.ListForGym(*user.GymID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, infos)
}

// MyPayments 会员自己的支付记录
// GET /api/v1/me/payments
func (h *PaymentHandler) MyPayments(c *gin.Context) {
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

	infos, err := h.paymentService.ListForMember(member.ID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, infos)
}
