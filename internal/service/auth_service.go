package service

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/qs3c/gym_go_server/config"
	"github.com/qs3c/gym_go_server/internal/model"
	"github.com/qs3c/gym_go_server/internal/model/dto"
	"github.com/qs3c/gym_go_server/internal/pkg/jwt"
	"github.com/qs3c/gym_go_server/internal/pkg/session"
	"github.com/qs3c/gym_go_server/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrSessionNotFound    = errors.New("会话不存在或已过期")
	ErrUserNotFound       = errors.New("用户不存在")
)

type AuthService struct {
	userRepo *repository.UserRepository
	sessions *session.Store
	cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, sessions *session.Store, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
		cfg:      cfg,
	}
}

// SeedSuperadmin 用户表为空时播种初始超级管理员。
// 账号密码取配置，默认 superadmin / admin123。
func (s *AuthService) SeedSuperadmin() error {
	count, err := s.userRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	username := s.cfg.Bootstrap.SuperadminUsername
	if username == "" {
		username = "superadmin"
	}
	password := s.cfg.Bootstrap.SuperadminPassword
	if password == "" {
		password = "admin123"
	}

	user := &model.User{
		Username: username,
		Password: password,
		Role:     model.RoleSuperadmin,
	}
	if err := s.userRepo.Create(user); err != nil {
		return err
	}

	log.Printf("Seeded bootstrap superadmin %q (id=%d)", username, user.ID)
	return nil
}

// Login 用户名密码精确匹配登录。失败统一返回一种错误，不区分原因。
// 命中后签发 Token 并把完整用户记录写入会话存储。
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByCredentials(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	token, err := jwt.GenerateToken(user.ID, s.cfg.JWT.Secret, s.cfg.JWT.ExpireHours)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Save(ctx, user); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  buildUserInfo(user),
	}, nil
}

// Logout 清除活跃会话，Token 随之在服务端失效
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	return s.sessions.Delete(ctx, userID)
}

// CurrentUser 读取活跃会话，不存在视为未登录
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*dto.UserInfo, error) {
	user, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrSessionNotFound
	}
	return buildUserInfo(user), nil
}

// SessionExists 会话是否仍然有效（认证中间件用）
func (s *AuthService) SessionExists(ctx context.Context, userID int64) (bool, error) {
	user, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

func buildUserInfo(user *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		GymID:     user.GymID,
		CreatedAt: user.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
