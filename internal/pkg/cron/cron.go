package cron

import (
	"context"
	"log"
	"time"

	"github.com/qs3c/gym_go_server/internal/service"
)

// Service 后台定时任务：每天零点重算全部场馆的看板统计缓存
type Service struct {
	statsService *service.StatsService
	stopChan     chan struct{}
}

func NewService(statsService *service.StatsService) *Service {
	return &Service{
		statsService: statsService,
		stopChan:     make(chan struct{}),
	}
}

// Start 启动定时任务
func (s *Service) Start() {
	go s.runDailyStatsRefresh()
	log.Println("Cron service started (stats refresh)")
}

// Stop 停止定时任务
func (s *Service) Stop() {
	close(s.stopChan)
	log.Println("Cron service stopped")
}

// runDailyStatsRefresh 每日统计刷新任务
func (s *Service) runDailyStatsRefresh() {
	now := time.Now().UTC()
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
	timer := time.NewTimer(nextMidnight.Sub(now))

	for {
		select {
		case <-s.stopChan:
			timer.Stop()
			return
		case <-timer.C:
			s.refreshStats()
			timer.Reset(24 * time.Hour)
		}
	}
}

func (s *Service) refreshStats() {
	log.Println("Starting daily stats refresh...")
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.statsService.RefreshAll(ctx); err != nil {
		log.Printf("Failed to refresh stats: %v", err)
		return
	}
	log.Println("Daily stats refresh completed")
}

// RunNow 立即执行一次刷新（用于测试或手动触发）
func (s *Service) RunNow(ctx context.Context) error {
	return s.statsService.RefreshAll(ctx)
}
