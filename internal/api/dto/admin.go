package dto

// AdminLoginDTO 管理端登录请求
type AdminLoginDTO struct {
	Password string `json:"password" binding:"required"`
}

// TokenDTO 登录成功后返回的 Token
type TokenDTO struct {
	Token string `json:"token"`
}
