package service

import (
	"Daybook/internal/api/config"
	"Daybook/internal/pkg/consts"
	"Daybook/internal/pkg/redis"
	"Daybook/internal/pkg/security"
	"context"
	log "log/slog"
)

type AdminService interface {
	Login(ctx context.Context, password string) (string, error)
	Logout(ctx context.Context, tokenString string) error
}

type adminServiceImpl struct{}

func NewAdminService() AdminService {
	return &adminServiceImpl{}
}

// Login 校验控制台口令并签发 Token。单管理员模型，不存在注册流程。
func (s *adminServiceImpl) Login(ctx context.Context, password string) (string, error) {
	if err := security.CheckPasswordHash(password, config.Cfg.Admin.PasswordHash); err != nil {
		return "", ErrPasswordIncorrect
	}

	token, err := security.GenerateToken("admin")
	if err != nil {
		log.ErrorContext(ctx, "generate admin token failed", "err", err)
		return "", UnExpectedError
	}
	return token, nil
}

// Logout 把 Token 签名登记为吊销，有效期与 Token 本身一致
func (s *adminServiceImpl) Logout(ctx context.Context, tokenString string) error {
	signature, err := security.ExtractSignature(tokenString)
	if err != nil {
		return ErrParamInvalid
	}
	return redis.SetWithExpiration(ctx, consts.AdminTokenRevokedKey+signature, "1", security.JWTExpirationTime)
}
