package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qs3c/gym_go_server/internal/model/dto"
	"github.com/qs3c/gym_go_server/internal/pkg/response"
	"github.com/qs3c/gym_go_server/internal/service"
)

type GymHandler struct {
	gymService *service.GymService
}

func NewGymHandler(gymService *service.GymService) *GymHandler {
	return &GymHandler{
		gymService: gymService,
	}
}

// Create 创建场馆（连带 gymadmin 账号和签到二维码）
// POST /api/v1/gyms
func (h *GymHandler) Create(c *gin.Context) {
	var req dto.CreateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	info, err := h.gymService.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			response.ParamError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "场馆创建成功", info)
}

// List 全部场馆
// GET /api/v1/gyms
func (h *GymHandler) List(c *gin.Context) {
	infos, err := h.gymService.List()
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, infos)
}

// Get 场馆详情
// GET /api/v1/gyms/:id
func (h *GymHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的场馆 ID")
		return
	}

	info, err := h.gymService.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGymNotFound):
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, info)
}

// Update 更新场馆并重新生成二维码
// PUT /api/v1/gyms/:id
func (h *GymHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的场馆 ID")
		return
	}

	var req dto.UpdateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	info, err := h.gymService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			response.ParamError(c, err.Error())
		case errors.Is(err, service.ErrGymNotFound):
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "场馆更新成功", info)
}

// Delete 删除场馆。不级联，孤儿数据保留。
// DELETE /api/v1/gyms/:id
func (h *GymHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "无效的场馆 ID")
		return
	}

	if err := h.gymService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrGymNotFound):
			response.NotFoundError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.SuccessWithMessage(c, "场馆已删除", nil)
}
