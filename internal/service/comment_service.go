package service

import (
	"Daybook/internal/model"
	"Daybook/internal/repository"
	"context"
	"errors"
	log "log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CommentService interface {
	CreateComment(ctx context.Context, postID primitive.ObjectID, text, ipHash string, isAuthorReply bool) (*model.Comment, error)
	ListComments(ctx context.Context, postID primitive.ObjectID) ([]*model.Comment, error)
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
}

func NewCommentService(commentRepo repository.CommentRepo, postRepo repository.PostRepo) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment 发表评论。父帖子的冗余评论计数随创建递增，
// 权威口径仍以重算为准。
func (s *commentServiceImpl) CreateComment(ctx context.Context, postID primitive.ObjectID, text, ipHash string, isAuthorReply bool) (*model.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &model.Comment{
		PostID:        postID,
		Text:          text,
		IPHash:        ipHash,
		IsAuthorReply: isAuthorReply,
	}

	id, err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}
	comment.ID = id

	if err = s.postRepo.IncCommentCount(ctx, postID, 1); err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			log.WarnContext(ctx, "increment comment count failed", "post_id", postID.Hex(), "err", err)
		}
	}

	return comment, nil
}

func (s *commentServiceImpl) ListComments(ctx context.Context, postID primitive.ObjectID) ([]*model.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	return s.commentRepo.ListByPost(ctx, postID)
}
