package handler

import (
	"Daybook/internal/api/dto"
	"Daybook/internal/pkg/consts"
	"Daybook/internal/pkg/response"
	"Daybook/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PostHandler struct {
	postSvc  service.PostService
	trashSvc service.TrashService
}

func NewPostHandler(postSvc service.PostService, trashSvc service.TrashService) *PostHandler {
	return &PostHandler{
		postSvc:  postSvc,
		trashSvc: trashSvc,
	}
}

// ListPosts 公开帖子列表
func (s *PostHandler) ListPosts(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	pageSize, _ := strconv.ParseInt(c.DefaultQuery("page_size", "20"), 10, 64)

	result, err := s.postSvc.ListPosts(c.Request.Context(), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetPost 帖子详情
func (s *PostHandler) GetPost(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("post_id"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	post, err := s.postSvc.GetPost(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// CreatePost 新建帖子（管理端）
func (s *PostHandler) CreatePost(c *gin.Context) {
	var req dto.PostBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// UpdatePost 修改帖子（管理端）
func (s *PostHandler) UpdatePost(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("post_id"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.PostBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.postSvc.UpdatePost(c.Request.Context(), postID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// DeletePost 删除帖子（管理端），进入回收站而非直接销毁
func (s *PostHandler) DeletePost(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("post_id"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	trashID, err := s.trashSvc.MoveToTrash(c.Request.Context(), consts.TrashTypePost, postID, c.GetString("subject"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"trash_id": trashID.Hex()})
}

// SharePost 分享计数上报
func (s *PostHandler) SharePost(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("post_id"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.postSvc.IncrementShare(c.Request.Context(), postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
