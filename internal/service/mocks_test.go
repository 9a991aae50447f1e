package service

import (
	"Daybook/internal/model"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockPostRepo struct {
	mock.Mock
}

func (m *MockPostRepo) Create(ctx context.Context, post *model.Post) (primitive.ObjectID, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockPostRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepo) List(ctx context.Context, page, pageSize int64) ([]*model.Post, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Post), args.Error(1)
}

func (m *MockPostRepo) ListIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]primitive.ObjectID), args.Error(1)
}

func (m *MockPostRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepo) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockPostRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepo) IncCommentCount(ctx context.Context, id primitive.ObjectID, delta int64) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *MockPostRepo) IncShareCount(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepo) IncReaction(ctx context.Context, id primitive.ObjectID, reactionType string, delta int64) error {
	args := m.Called(ctx, id, reactionType, delta)
	return args.Error(0)
}

func (m *MockPostRepo) SetCommentCount(ctx context.Context, id primitive.ObjectID, count int64) error {
	args := m.Called(ctx, id, count)
	return args.Error(0)
}

func (m *MockPostRepo) SetReactionCounts(ctx context.Context, id primitive.ObjectID, counts model.ReactionCounts) error {
	args := m.Called(ctx, id, counts)
	return args.Error(0)
}

type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) Create(ctx context.Context, comment *model.Comment) (primitive.ObjectID, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockCommentRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepo) ListByPost(ctx context.Context, postID primitive.ObjectID) ([]*model.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *MockCommentRepo) CountByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepo) IncReaction(ctx context.Context, id primitive.ObjectID, reactionType string, delta int64) error {
	args := m.Called(ctx, id, reactionType, delta)
	return args.Error(0)
}

func (m *MockCommentRepo) SetReactionCounts(ctx context.Context, id primitive.ObjectID, counts model.ReactionCounts) error {
	args := m.Called(ctx, id, counts)
	return args.Error(0)
}

type MockTrashRepo struct {
	mock.Mock
}

func (m *MockTrashRepo) Insert(ctx context.Context, item *model.TrashItem) (primitive.ObjectID, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockTrashRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.TrashItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrashItem), args.Error(1)
}

func (m *MockTrashRepo) List(ctx context.Context) ([]*model.TrashItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.TrashItem), args.Error(1)
}

func (m *MockTrashRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTrashRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockReactionRepo struct {
	mock.Mock
}

func (m *MockReactionRepo) Get(ctx context.Context, userID string, target model.ReactionTarget) (*model.UserReaction, error) {
	args := m.Called(ctx, userID, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserReaction), args.Error(1)
}

func (m *MockReactionRepo) Upsert(ctx context.Context, userID string, target model.ReactionTarget, reactionType string) error {
	args := m.Called(ctx, userID, target, reactionType)
	return args.Error(0)
}

func (m *MockReactionRepo) Delete(ctx context.Context, userID string, target model.ReactionTarget) error {
	args := m.Called(ctx, userID, target)
	return args.Error(0)
}

func (m *MockReactionRepo) ListByTarget(ctx context.Context, target model.ReactionTarget) ([]*model.UserReaction, error) {
	args := m.Called(ctx, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.UserReaction), args.Error(1)
}
