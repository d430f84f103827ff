package main

import (
	"fmt"
	"log"

	"github.com/qs3c/gym_go_server/config"
	"github.com/qs3c/gym_go_server/internal/api"
	"github.com/qs3c/gym_go_server/internal/api/handler"
	"github.com/qs3c/gym_go_server/internal/database"
	"github.com/qs3c/gym_go_server/internal/pkg/cron"
	"github.com/qs3c/gym_go_server/internal/pkg/oss"
	"github.com/qs3c/gym_go_server/internal/pkg/session"
	"github.com/qs3c/gym_go_server/internal/pkg/ws"
	"github.com/qs3c/gym_go_server/internal/repository"
	"github.com/qs3c/gym_go_server/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化数据库
	db, err := database.New(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database connected")

	// 初始化 Redis
	rdb, err := database.NewRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect redis: %v", err)
	}
	log.Println("Redis connected")

	// 会话存储
	sessions := session.NewStore(rdb, cfg.Session.TTLHours)

	// OSS（可选，没配就内联 data URL）
	var ossClient *oss.Client
	if cfg.OSS.Endpoint != "" {
		ossClient, err = oss.NewClient(&cfg.OSS)
		if err != nil {
			log.Fatalf("Failed to init OSS client: %v", err)
		}
		log.Println("OSS client ready")
	}

	// WebSocket Hub
	wsHub := ws.NewHub()

	// 初始化 Repository
	userRepo := repository.NewUserRepository(db)
	gymRepo := repository.NewGymRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	// 初始化 Service
	authService := service.NewAuthService(userRepo, sessions, cfg)
	gymService := service.NewGymService(gymRepo, userRepo, ossClient)
	memberService := service.NewMemberService(memberRepo, userRepo, paymentRepo, attendanceRepo)
	paymentService := service.NewPaymentService(paymentRepo, memberRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo, memberRepo, userRepo, wsHub)
	statsService := service.NewStatsService(gymRepo, memberRepo, paymentRepo, attendanceRepo, rdb, cfg)

	// 播种初始超级管理员
	if err := authService.SeedSuperadmin(); err != nil {
		log.Fatalf("Failed to seed superadmin: %v", err)
	}

	// 定时任务
	cronService := cron.NewService(statsService)
	cronService.Start()
	defer cronService.Stop()

	// 初始化 Handler
	authHandler := handler.NewAuthHandler(authService)
	gymHandler := handler.NewGymHandler(gymService)
	memberHandler := handler.NewMemberHandler(memberService)
	paymentHandler := handler.NewPaymentHandler(paymentService, memberService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService, memberService, statsService)
	websocketHandler := handler.NewWebSocketHandler(wsHub, cfg.JWT.Secret)

	// 初始化 Router
	router := api.NewRouter(
		authHandler,
		gymHandler,
		memberHandler,
		paymentHandler,
		attendanceHandler,
		websocketHandler,
		sessions,
		cfg,
	)
	engine := router.Setup()

	// 启动服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := engine.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
