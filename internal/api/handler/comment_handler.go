package handler

import (
	"Daybook/internal/api/dto"
	"Daybook/internal/pkg/consts"
	"Daybook/internal/pkg/response"
	"Daybook/internal/pkg/util"
	"Daybook/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CommentHandler struct {
	commentSvc service.CommentService
	trashSvc   service.TrashService
}

func NewCommentHandler(commentSvc service.CommentService, trashSvc service.TrashService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
		trashSvc:   trashSvc,
	}
}

// ListComments 帖子下的评论列表
func (s *CommentHandler) ListComments(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("post_id"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	comments, err := s.commentSvc.ListComments(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

// CreateComment 匿名发表评论
func (s *CommentHandler) CreateComment(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("post_id"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.commentSvc.CreateComment(c.Request.Context(), postID, req.Text, util.HashIP(c.ClientIP()), false)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

// ReplyComment 作者回复（管理端），评论带 is_author_reply 标记
func (s *CommentHandler) ReplyComment(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("post_id"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.commentSvc.CreateComment(c.Request.Context(), postID, req.Text, util.HashIP(c.ClientIP()), true)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

// DeleteComment 删除评论（管理端），进入回收站而非直接销毁
func (s *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := primitive.ObjectIDFromHex(c.Param("comment_id"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	trashID, err := s.trashSvc.MoveToTrash(c.Request.Context(), consts.TrashTypeComment, commentID, c.GetString("subject"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"trash_id": trashID.Hex()})
}
