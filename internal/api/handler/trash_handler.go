package handler

import (
	"Daybook/internal/api/dto"
	"Daybook/internal/pkg/response"
	"Daybook/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TrashHandler struct {
	trashSvc service.TrashService
}

func NewTrashHandler(trashSvc service.TrashService) *TrashHandler {
	return &TrashHandler{
		trashSvc: trashSvc,
	}
}

// ListTrash 回收站条目列表，按删除时间倒序
func (s *TrashHandler) ListTrash(c *gin.Context) {
	items, err := s.trashSvc.ListTrash(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

// RestoreTrash 恢复条目为活跃文档
func (s *TrashHandler) RestoreTrash(c *gin.Context) {
	trashID, err := primitive.ObjectIDFromHex(c.Param("trash_id"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.trashSvc.Restore(c.Request.Context(), trashID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// PurgeTrash 彻底删除条目，内容不可找回
func (s *TrashHandler) PurgeTrash(c *gin.Context) {
	trashID, err := primitive.ObjectIDFromHex(c.Param("trash_id"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.trashSvc.PermanentlyDelete(c.Request.Context(), trashID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// SweepTrash 手动触发到期清扫
func (s *TrashHandler) SweepTrash(c *gin.Context) {
	count, err := s.trashSvc.SweepExpired(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.SweepResultDTO{Purged: count})
}
