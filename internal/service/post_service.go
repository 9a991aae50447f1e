package service

import (
	"Daybook/internal/api/dto"
	"Daybook/internal/model"
	"Daybook/internal/pkg/consts"
	"Daybook/internal/pkg/util"
	"Daybook/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PostService interface {
	CreatePost(ctx context.Context, req *dto.PostBaseDTO) (*model.Post, error)
	UpdatePost(ctx context.Context, postID primitive.ObjectID, req *dto.PostBaseDTO) error
	GetPost(ctx context.Context, postID primitive.ObjectID) (*model.Post, error)
	ListPosts(ctx context.Context, page, pageSize int64) (*dto.PostPageDTO, error)
	IncrementShare(ctx context.Context, postID primitive.ObjectID) error
}

type postServiceImpl struct {
	postRepo repository.PostRepo
}

func NewPostService(postRepo repository.PostRepo) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
	}
}

func validMood(mood string) bool {
	if mood == "" {
		return true
	}
	for _, m := range consts.Moods {
		if m == mood {
			return true
		}
	}
	return false
}

func (s *postServiceImpl) CreatePost(ctx context.Context, req *dto.PostBaseDTO) (*model.Post, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrParamInvalid
	}
	if !validMood(req.Mood) {
		return nil, ErrMoodInvalid
	}

	post := &model.Post{
		Title:   req.Title,
		Content: req.Content,
		Date:    date,
		Tags:    util.NormalizeTags(req.Tags),
		Mood:    req.Mood,
	}

	id, err := s.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}
	post.ID = id
	return post, nil
}

func (s *postServiceImpl) UpdatePost(ctx context.Context, postID primitive.ObjectID, req *dto.PostBaseDTO) error {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return ErrParamInvalid
	}
	if !validMood(req.Mood) {
		return ErrMoodInvalid
	}

	fields := bson.M{
		"title":   req.Title,
		"content": req.Content,
		"date":    date,
		"tags":    util.NormalizeTags(req.Tags),
		"mood":    req.Mood,
	}

	if err = s.postRepo.Update(ctx, postID, fields); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, postID primitive.ObjectID) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// ListPosts 公开浏览列表，按日记日期倒序分页
func (s *postServiceImpl) ListPosts(ctx context.Context, page, pageSize int64) (*dto.PostPageDTO, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	posts, err := s.postRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.PostPageDTO{
		Posts:    posts,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

// IncrementShare 分享计数只增不减，原子递增
func (s *postServiceImpl) IncrementShare(ctx context.Context, postID primitive.ObjectID) error {
	if err := s.postRepo.IncShareCount(ctx, postID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}
