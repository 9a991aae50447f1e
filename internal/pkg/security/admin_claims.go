package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const JWTExpirationTime = time.Hour * 24

// AdminClaims 管理端 Token 中携带的业务信息
type AdminClaims struct {
	Subject string `json:"subject"`
	jwt.RegisteredClaims
}
