package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/qs3c/gym_go_server/config"
	"github.com/qs3c/gym_go_server/internal/model/dto"
	"github.com/qs3c/gym_go_server/internal/repository"
)

const statsKeyPrefix = "stats:gym:"

// StatsService 管理端看板统计，Redis 缓存加速，夜间定时刷新
type StatsService struct {
	gymRepo        *repository.GymRepository
	memberRepo     *repository.MemberRepository
	paymentRepo    *repository.PaymentRepository
	attendanceRepo *repository.AttendanceRepository
	rdb            *redis.Client
	cacheTTL       time.Duration
}

func NewStatsService(
	gymRepo *repository.GymRepository,
	memberRepo *repository.MemberRepository,
	paymentRepo *repository.PaymentRepository,
	attendanceRepo *repository.AttendanceRepository,
	rdb *redis.Client,
	cfg *config.Config,
) *StatsService {
	ttl := time.Duration(cfg.Stats.CacheTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &StatsService{
		gymRepo:        gymRepo,
		memberRepo:     memberRepo,
		paymentRepo:    paymentRepo,
		attendanceRepo: attendanceRepo,
		rdb:            rdb,
		cacheTTL:       ttl,
	}
}

// GymStats 读缓存，未命中则现算并回填
func (s *StatsService) GymStats(ctx context.Context, gymID int64) (*dto.GymStats, error) {
	key := fmt.Sprintf("%s%d", statsKeyPrefix, gymID)

	if s.rdb != nil {
		val, err := s.rdb.Get(ctx, key).Result()
		if err == nil {
			var stats dto.GymStats
			if jsonErr := json.Unmarshal([]byte(val), &stats); jsonErr == nil {
				return &stats, nil
			}
		}
	}

	stats, err := s.compute(gymID)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if data, err := json.Marshal(stats); err == nil {
			s.rdb.Set(ctx, key, data, s.cacheTTL)
		}
	}

	return stats, nil
}

// Refresh 重算并覆盖某场馆的缓存
func (s *StatsService) Refresh(ctx context.Context, gymID int64) error {
	stats, err := s.compute(gymID)
	if err != nil {
		return err
	}
	if s.rdb == nil {
		return nil
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	key := fmt.Sprintf("%s%d", statsKeyPrefix, gymID)
	return s.rdb.Set(ctx, key, data, s.cacheTTL).Err()
}

// RefreshAll 全部场馆重算（定时任务入口）
func (s *StatsService) RefreshAll(ctx context.Context) error {
	gyms, err := s.gymRepo.List()
	if err != nil {
		return err
	}
	for _, gym := range gyms {
		if err := s.Refresh(ctx, gym.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *StatsService) compute(gymID int64) (*dto.GymStats, error) {
	now := time.Now()

	memberCount, err := s.memberRepo.CountByGym(gymID)
	if err != nil {
		return nil, err
	}

	todayCheckins, err := s.attendanceRepo.CountByGymAndDate(gymID, now.Format(dateLayout))
	if err != nil {
		return nil, err
	}

	members, err := s.memberRepo.ListByGym(gymID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}

	activePlans, err := s.paymentRepo.CountActiveByMembers(ids, now)
	if err != nil {
		return nil, err
	}

	return &dto.GymStats{
		MemberCount:   memberCount,
		TodayCheckins: todayCheckins,
		ActivePlans:   activePlans,
	}, nil
}
