// Package auth 管理员登录、刷新Token、登出
//
// 教学要点：会员写接口需要管理员Token。管理员账号来自配置，
// 密码只以bcrypt哈希的形式保存在内存中
package auth

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/jwt"
)

// TokenStore 会话与黑名单存储（由Redis实现）
type TokenStore interface {
	SaveSession(ctx context.Context, username string, data map[string]any, ttl time.Duration) error
	AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error
	IsInBlacklist(ctx context.Context, token string) (bool, error)
}

// Credentials 管理员账号
type Credentials struct {
	Username     string
	PasswordHash []byte // 为空表示未配置管理员，所有登录都会失败
}

// NewCredentials 从配置读取管理员账号
// 配置了明文密码时（仅限本地开发）在启动时做一次bcrypt
func NewCredentials(cfg *config.Config) (*Credentials, error) {
	c := &Credentials{Username: cfg.Auth.AdminUsername}
	switch {
	case cfg.Auth.AdminPasswordHash != "":
		c.PasswordHash = []byte(cfg.Auth.AdminPasswordHash)
	case cfg.Auth.AdminPassword != "":
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.Wrap(err, "管理员密码哈希失败")
		}
		c.PasswordHash = hash
	default:
		slog.Warn("未配置管理员密码，会员写接口不可用")
	}
	return c, nil
}

// Verify 校验用户名密码
func (c *Credentials) Verify(username, password string) error {
	if len(c.PasswordHash) == 0 || username != c.Username {
		return apperrors.ErrInvalidPassword
	}
	if err := bcrypt.CompareHashAndPassword(c.PasswordHash, []byte(password)); err != nil {
		return apperrors.ErrInvalidPassword
	}
	return nil
}

// LoginUseCase 登录用例
type LoginUseCase struct {
	credentials *Credentials
	jwtManager  *jwt.Manager
	store       TokenStore
	sessionTTL  time.Duration
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(credentials *Credentials, jwtManager *jwt.Manager, store TokenStore, cfg *config.Config) *LoginUseCase {
	return &LoginUseCase{
		credentials: credentials,
		jwtManager:  jwtManager,
		store:       store,
		sessionTTL:  cfg.JWT.RefreshTokenExpire,
	}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string
	Password string
	ClientIP string
}

// Execute 校验密码并签发Token对
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*jwt.TokenPair, error) {
	if err := uc.credentials.Verify(req.Username, req.Password); err != nil {
		return nil, err
	}

	pair, err := uc.jwtManager.GenerateToken(req.Username)
	if err != nil {
		return nil, err
	}

	// 会话保存失败不影响登录
	session := map[string]any{
		"login_at": time.Now().Unix(),
		"ip":       req.ClientIP,
	}
	if err := uc.store.SaveSession(ctx, req.Username, session, uc.sessionTTL); err != nil {
		slog.WarnContext(ctx, "保存登录会话失败", slog.Any("error", err))
	}
	return pair, nil
}

// RefreshUseCase 刷新Access Token
type RefreshUseCase struct {
	jwtManager *jwt.Manager
}

// NewRefreshUseCase 创建刷新用例
func NewRefreshUseCase(jwtManager *jwt.Manager) *RefreshUseCase {
	return &RefreshUseCase{jwtManager: jwtManager}
}

// RefreshResponse 新的Access Token
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Execute 用Refresh Token换Access Token
func (uc *RefreshUseCase) Execute(_ context.Context, refreshToken string) (*RefreshResponse, error) {
	token, err := uc.jwtManager.RefreshAccessToken(refreshToken)
	if err != nil {
		return nil, err
	}
	return &RefreshResponse{
		AccessToken: token,
		ExpiresIn:   int64(uc.jwtManager.AccessTokenExpire().Seconds()),
	}, nil
}

// LogoutUseCase 登出：把Access Token放进黑名单，直到它自然过期
type LogoutUseCase struct {
	jwtManager *jwt.Manager
	store      TokenStore
}

// NewLogoutUseCase 创建登出用例
func NewLogoutUseCase(jwtManager *jwt.Manager, store TokenStore) *LogoutUseCase {
	return &LogoutUseCase{jwtManager: jwtManager, store: store}
}

// Execute 执行登出
func (uc *LogoutUseCase) Execute(ctx context.Context, accessToken string) error {
	claims, err := uc.jwtManager.ParseAccessToken(accessToken)
	if err != nil {
		return err
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	return uc.store.AddToBlacklist(ctx, accessToken, ttl)
}
