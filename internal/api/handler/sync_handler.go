package handler

import (
	"Daybook/internal/pkg/response"
	"Daybook/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SyncHandler struct {
	syncSvc service.SyncService
}

func NewSyncHandler(syncSvc service.SyncService) *SyncHandler {
	return &SyncHandler{
		syncSvc: syncSvc,
	}
}

// SyncCommentCount 重算单个帖子的评论计数
func (s *SyncHandler) SyncCommentCount(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("post_id"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	count, err := s.syncSvc.SyncCommentCount(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"comment_count": count})
}

// SyncReactionCounts 重算单个帖子的表态计数
func (s *SyncHandler) SyncReactionCounts(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("post_id"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	counts, err := s.syncSvc.SyncPostReactionCounts(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, counts)
}

// SyncAllCommentCounts 全量重算评论计数
func (s *SyncHandler) SyncAllCommentCounts(c *gin.Context) {
	report, err := s.syncSvc.SyncAllCommentCounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}

// SyncAllReactionCounts 全量重算表态计数
func (s *SyncHandler) SyncAllReactionCounts(c *gin.Context) {
	report, err := s.syncSvc.SyncAllReactionCounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}
