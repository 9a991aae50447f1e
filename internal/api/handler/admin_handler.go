package handler

import (
	"Daybook/internal/api/dto"
	"Daybook/internal/pkg/response"
	"Daybook/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminSvc service.AdminService
}

func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{
		adminSvc: adminSvc,
	}
}

// Login 控制台口令登录
func (s *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	token, err := s.adminSvc.Login(c.Request.Context(), req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.TokenDTO{Token: token})
}

// Logout 吊销当前 Token
func (s *AdminHandler) Logout(c *gin.Context) {
	if err := s.adminSvc.Logout(c.Request.Context(), c.GetString("token")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
