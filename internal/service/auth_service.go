package service

import (
	"odyssey_backend/internal/config"
	"odyssey_backend/internal/util"
	"odyssey_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// AuthService 单用户接入：访问密钥换取 JWT。
// Enabled=false 时中间件直接放行，本服务不参与
type AuthService struct {
	config config.AuthConfig
}

func NewAuthService(cfg config.AuthConfig) *AuthService {
	return &AuthService{config: cfg}
}

// Link 校验访问密钥（bcrypt比对），通过后签发令牌
func (s *AuthService) Link(accessKey string) (string, error) {
	if accessKey == "" {
		return "", util.ValidationError("access key must not be empty")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.config.AccessKeyHash), []byte(accessKey)); err != nil {
		logger.Log.Warn("访问密钥校验失败")
		return "", util.ErrUnauthorized
	}
	token, err := util.GenerateJWT(s.config.JWTSecret, s.config.ExpireTime)
	if err != nil {
		return "", err
	}
	return token, nil
}
