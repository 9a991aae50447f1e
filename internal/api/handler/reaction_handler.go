package handler

import (
	"Daybook/internal/api/dto"
	"Daybook/internal/model"
	"Daybook/internal/pkg/response"
	"Daybook/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

type ReactionHandler struct {
	reactionSvc service.ReactionService
	postSvc     service.PostService
}

func NewReactionHandler(reactionSvc service.ReactionService, postSvc service.PostService) *ReactionHandler {
	return &ReactionHandler{
		reactionSvc: reactionSvc,
		postSvc:     postSvc,
	}
}

// TogglePostReaction 帖子表态切换
func (s *ReactionHandler) TogglePostReaction(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("post_id"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.ReactionToggleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	state, err := s.reactionSvc.Toggle(c.Request.Context(), req.UserID, model.ReactionTarget{PostID: postID}, req.ReactionType)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}

// ToggleCommentReaction 评论表态切换
func (s *ReactionHandler) ToggleCommentReaction(c *gin.Context) {
	commentID, err := primitive.ObjectIDFromHex(c.Param("comment_id"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.ReactionToggleDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	state, err := s.reactionSvc.Toggle(c.Request.Context(), req.UserID, model.ReactionTarget{CommentID: commentID}, req.ReactionType)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}

// GetPostReactionState 获取帖子当前表态计数与访客自己的表态
func (s *ReactionHandler) GetPostReactionState(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("post_id"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.Query("user_id")

	ctx := c.Request.Context()
	state := &dto.ReactionStateDTO{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		post, err := s.postSvc.GetPost(gCtx, postID)
		if err != nil {
			return err
		}
		state.Counts = post.Reactions
		return nil
	})
	g.Go(func() error {
		if userID != "" {
			state.UserReaction, _ = s.reactionSvc.GetUserReaction(gCtx, userID, model.ReactionTarget{PostID: postID})
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}
