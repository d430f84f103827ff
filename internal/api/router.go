package api

import (
	"github.com/gin-gonic/gin"

	"github.com/qs3c/gym_go_server/config"
	"github.com/qs3c/gym_go_server/internal/api/handler"
	"github.com/qs3c/gym_go_server/internal/api/middleware"
	"github.com/qs3c/gym_go_server/internal/model"
	"github.com/qs3c/gym_go_server/internal/pkg/session"
)

type Router struct {
	authHandler       *handler.AuthHandler
	gymHandler        *handler.GymHandler
	memberHandler     *handler.MemberHandler
	paymentHandler    *handler.PaymentHandler
	attendanceHandler *handler.AttendanceHandler
	websocketHandler  *handler.WebSocketHandler
	sessions          *session.Store
	cfg               *config.Config
}

func NewRouter(
	authHandler *handler.AuthHandler,
	gymHandler *handler.GymHandler,
	memberHandler *handler.MemberHandler,
	paymentHandler *handler.PaymentHandler,
	attendanceHandler *handler.AttendanceHandler,
	websocketHandler *handler.WebSocketHandler,
	sessions *session.Store,
	cfg *config.Config,
) *Router {
	return &Router{
		authHandler:       authHandler,
		gymHandler:        gymHandler,
		memberHandler:     memberHandler,
		paymentHandler:    paymentHandler,
		attendanceHandler: attendanceHandler,
		websocketHandler:  websocketHandler,
		sessions:          sessions,
		cfg:               cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS(r.cfg.CORS))

	api := engine.Group("/api/v1")
	{
		// WebSocket（场馆管理员收考勤事件）
		api.GET("/ws", r.websocketHandler.Handle)

		// 公开接口 - 认证
		api.POST("/auth/login", r.authHandler.Login)

		// 需要认证的接口
		authenticated := api.Group("")
		authenticated.Use(middleware.Auth(r.cfg.JWT.Secret, r.sessions))
		{
			authenticated.POST("/auth/logout", r.authHandler.Logout)
			authenticated.GET("/auth/me", r.authHandler.Me)

			// 超级管理员 - 场馆管理
			gyms := authenticated.Group("/gyms")
			gyms.Use(middleware.RequireRole(model.RoleSuperadmin))
			{
				gyms.POST("", r.gymHandler.Create)
				gyms.GET("", r.gymHandler.List)
				gyms.GET("/:id", r.gymHandler.Get)
				gyms.PUT("/:id", r.gymHandler.Update)
				gyms.DELETE("/:id", r.gymHandler.Delete)
			}

			// 场馆管理员 - 会员/支付/考勤
			admin := authenticated.Group("")
			admin.Use(middleware.RequireRole(model.RoleGymAdmin))
			{
				admin.POST("/members", r.memberHandler.Create)
				admin.GET("/members", r.memberHandler.List)
				admin.GET("/members/:id", r.memberHandler.Get)
				admin.PUT("/members/:id", r.memberHandler.Update)

				admin.POST("/payments", r.paymentHandler.Create)
				admin.GET("/payments", r.paymentHandler.List)

				admin.POST("/attendance/:memberId/mark", r.attendanceHandler.Mark)
				admin.GET("/attendance", r.attendanceHandler.List)
				admin.GET("/stats", r.attendanceHandler.Stats)
			}

			// 会员端
			me := authenticated.Group("/me")
			me.Use(middleware.RequireRole(model.RoleMember))
			{
				me.GET("/profile", r.memberHandler.Profile)
				me.GET("/payments", r.paymentHandler.MyPayments)
				me.GET("/attendance", r.attendanceHandler.MyAttendance)
				me.POST("/checkin", r.attendanceHandler.Checkin)
			}
		}
	}

	return engine
}
