package handler

import (
	"Daybook/internal/api/dto"
	"Daybook/internal/pkg/response"
	"Daybook/internal/pkg/util"
	"Daybook/internal/service"

	"github.com/gin-gonic/gin"
)

type VisitorHandler struct {
	visitorSvc service.VisitorService
}

func NewVisitorHandler(visitorSvc service.VisitorService) *VisitorHandler {
	return &VisitorHandler{
		visitorSvc: visitorSvc,
	}
}

// TrackVisit 访客访问上报
func (s *VisitorHandler) TrackVisit(c *gin.Context) {
	var req dto.VisitDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.visitorSvc.Track(c.Request.Context(), req.Path, req.Referrer, util.HashIP(c.ClientIP())); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Summary 访客统计摘要（管理端）
func (s *VisitorHandler) Summary(c *gin.Context) {
	summary, err := s.visitorSvc.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summary)
}
