package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/gym_go_server/internal/api/middleware"
	"github.com/qs3c/gym_go_server/internal/model/dto"
	"github.com/qs3c/gym_go_server/internal/pkg/response"
	"github.com/qs3c/gym_go_server/internal/service"
)

type MemberHandler struct {
	memberService *service.MemberService
}

func NewMemberHandler(memberService *service.MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// Create 新增会员（连带 member 账号），作用域为当前管理员的场馆
// POST /api/v1/members
func (h *MemberHandler) Create(c *gin.Context) {
	user, _ := middleware.GetUser(c)
	if user.GymID == nil {
		response.PermissionError(c, "")
		return
	}

	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	info, err := h.memberService.Create(*user.GymID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			response.ParamError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "会员添加成功", info)
}

// List 当前场馆的会员列表
// GET /api/v1/members
func (h *MemberHandler) List(c *gin.Context) {
	user, _ := middleware.GetUser(c)
	if user.GymID == nil {
		response.PermissionError(c, "")
		return
	}

	infos, err := h.memberService.List(*user.GymID)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, infos)
}

// Get 会员详情，只能查本场馆的会员
// GET /api/v1/members/:id
func (h *MemberHandler) Get(c *gin.Context) {
	user, _ := middleware.GetUser(c)
	if user.GymID == nil {
		response.PermissionError(c, "")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的会员 ID")
		return
	}

	info, err := h.memberService.GetForGym(id, *user.GymID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMemberNotFound):
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, info)
}

// Update 编辑会员，只能改本场馆的会员。ID、所属场馆、入会日期不变。
// PUT /api/v1/members/:id
func (h *MemberHandler) Update(c *gin.Context) {
	user, _ := middleware.GetUser(c)
	if user.GymID == nil {
		response.PermissionError(c, "")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的会员 ID")
		return
	}

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	if _, err := h.memberService.GetForGym(id, *user.GymID); err != nil {
		switch {
		case errors.Is(err, service.ErrMemberNotFound):
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	info, err := h.memberService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			response.ParamError(c, err.Error())
		case errors.Is(err, service.ErrMemberNotFound):
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "会员更新成功", info)
}

// Profile 会员端首页聚合
// GET /api/v1/me/profile
func (h *MemberHandler) Profile(c *gin.Context) {
	user, _ := middleware.GetUser(c)

	profile, err := h.memberService.Profile(user.Username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMemberNotFound):
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, profile)
}
