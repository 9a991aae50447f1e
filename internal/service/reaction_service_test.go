package service

import (
	"Daybook/internal/model"
	"Daybook/internal/pkg/consts"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newReactionFixture() (*MockReactionRepo, *MockPostRepo, *MockCommentRepo, ReactionService) {
	reactionRepo := new(MockReactionRepo)
	postRepo := new(MockPostRepo)
	commentRepo := new(MockCommentRepo)
	syncSvc := NewSyncService(postRepo, commentRepo, reactionRepo)
	svc := NewReactionService(reactionRepo, postRepo, commentRepo, syncSvc)
	return reactionRepo, postRepo, commentRepo, svc
}

func TestToggleAddsReaction(t *testing.T) {
	postID := primitive.NewObjectID()
	target := model.ReactionTarget{PostID: postID}
	userID := "visitor-7"

	reactionRepo, postRepo, _, svc := newReactionFixture()

	postRepo.On("GetByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
	reactionRepo.On("Get", mock.Anything, userID, target).Return(nil, nil)
	reactionRepo.On("Upsert", mock.Anything, userID, target, consts.ReactionLike).Return(nil)

	// 写入后的重算以台账为权威口径
	reactionRepo.On("ListByTarget", mock.Anything, target).
		Return(reactionsFor(target, consts.ReactionLike), nil)
	postRepo.On("SetReactionCounts", mock.Anything, postID, model.ReactionCounts{Like: 1}).Return(nil)

	state, err := svc.Toggle(context.Background(), userID, target, consts.ReactionLike)

	require.NoError(t, err)
	assert.Equal(t, consts.ReactionLike, state.UserReaction)
	assert.Equal(t, model.ReactionCounts{Like: 1}, state.Counts)

	reactionRepo.AssertExpectations(t)
	postRepo.AssertExpectations(t)
}

func TestToggleSameTypeRemoves(t *testing.T) {
	postID := primitive.NewObjectID()
	target := model.ReactionTarget{PostID: postID}
	userID := "visitor-7"

	reactionRepo, postRepo, _, svc := newReactionFixture()

	postRepo.On("GetByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
	reactionRepo.On("Get", mock.Anything, userID, target).
		Return(&model.UserReaction{UserID: userID, PostID: postID, ReactionType: consts.ReactionLike}, nil)
	reactionRepo.On("Delete", mock.Anything, userID, target).Return(nil)

	reactionRepo.On("ListByTarget", mock.Anything, target).
		Return([]*model.UserReaction{}, nil)
	postRepo.On("SetReactionCounts", mock.Anything, postID, model.ReactionCounts{}).Return(nil)

	state, err := svc.Toggle(context.Background(), userID, target, consts.ReactionLike)

	require.NoError(t, err)
	assert.Empty(t, state.UserReaction)
	assert.Equal(t, model.ReactionCounts{}, state.Counts)

	reactionRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	reactionRepo.AssertExpectations(t)
}

func TestToggleDifferentTypeOverwrites(t *testing.T) {
	postID := primitive.NewObjectID()
	target := model.ReactionTarget{PostID: postID}
	userID := "visitor-7"

	reactionRepo, postRepo, _, svc := newReactionFixture()

	postRepo.On("GetByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
	reactionRepo.On("Get", mock.Anything, userID, target).
		Return(&model.UserReaction{UserID: userID, PostID: postID, ReactionType: consts.ReactionLike}, nil)
	// 换类型是覆盖写，不产生第二条台账记录
	reactionRepo.On("Upsert", mock.Anything, userID, target, consts.ReactionLove).Return(nil)

	reactionRepo.On("ListByTarget", mock.Anything, target).
		Return(reactionsFor(target, consts.ReactionLove), nil)
	postRepo.On("SetReactionCounts", mock.Anything, postID, model.ReactionCounts{Love: 1}).Return(nil)

	state, err := svc.Toggle(context.Background(), userID, target, consts.ReactionLove)

	require.NoError(t, err)
	assert.Equal(t, consts.ReactionLove, state.UserReaction)
	assert.Equal(t, model.ReactionCounts{Love: 1}, state.Counts)

	reactionRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleResyncFailureFallsBackToLocalArithmetic(t *testing.T) {
	postID := primitive.NewObjectID()
	target := model.ReactionTarget{PostID: postID}
	userID := "visitor-7"

	reactionRepo, postRepo, _, svc := newReactionFixture()

	reactionRepo.On("Get", mock.Anything, userID, target).
		Return(&model.UserReaction{UserID: userID, PostID: postID, ReactionType: consts.ReactionLike}, nil)
	reactionRepo.On("Upsert", mock.Anything, userID, target, consts.ReactionLove).Return(nil)

	// 重算路径失败
	reactionRepo.On("ListByTarget", mock.Anything, target).
		Return(nil, errors.New("connection reset"))

	// 兜底：旧类型 -1、新类型 +1，读回当前计数
	postRepo.On("IncReaction", mock.Anything, postID, consts.ReactionLike, int64(-1)).Return(nil)
	postRepo.On("IncReaction", mock.Anything, postID, consts.ReactionLove, int64(1)).Return(nil)
	postRepo.On("GetByID", mock.Anything, postID).
		Return(&model.Post{ID: postID, Reactions: model.ReactionCounts{Like: 4, Love: 2}}, nil)

	state, err := svc.Toggle(context.Background(), userID, target, consts.ReactionLove)

	require.NoError(t, err)
	assert.Equal(t, consts.ReactionLove, state.UserReaction)
	assert.Equal(t, model.ReactionCounts{Like: 4, Love: 2}, state.Counts)

	postRepo.AssertExpectations(t)
	reactionRepo.AssertExpectations(t)
}

func TestToggleCommentTarget(t *testing.T) {
	commentID := primitive.NewObjectID()
	target := model.ReactionTarget{CommentID: commentID}
	userID := "visitor-9"

	reactionRepo, _, commentRepo, svc := newReactionFixture()

	commentRepo.On("GetByID", mock.Anything, commentID).Return(&model.Comment{ID: commentID}, nil)
	reactionRepo.On("Get", mock.Anything, userID, target).Return(nil, nil)
	reactionRepo.On("Upsert", mock.Anything, userID, target, consts.ReactionWow).Return(nil)
	reactionRepo.On("ListByTarget", mock.Anything, target).
		Return(reactionsFor(target, consts.ReactionWow), nil)
	commentRepo.On("SetReactionCounts", mock.Anything, commentID, model.ReactionCounts{Wow: 1}).Return(nil)

	state, err := svc.Toggle(context.Background(), userID, target, consts.ReactionWow)

	require.NoError(t, err)
	assert.Equal(t, consts.ReactionWow, state.UserReaction)
	assert.Equal(t, model.ReactionCounts{Wow: 1}, state.Counts)
}

func TestToggleTargetMissing(t *testing.T) {
	postID := primitive.NewObjectID()
	target := model.ReactionTarget{PostID: postID}

	reactionRepo, postRepo, _, svc := newReactionFixture()
	postRepo.On("GetByID", mock.Anything, postID).Return(nil, nil)

	_, err := svc.Toggle(context.Background(), "visitor-7", target, consts.ReactionLike)

	assert.ErrorIs(t, err, ErrPostNotFound)
	reactionRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleValidation(t *testing.T) {
	_, _, _, svc := newReactionFixture()
	postID := primitive.NewObjectID()

	tests := []struct {
		name         string
		target       model.ReactionTarget
		reactionType string
		wantErr      error
	}{
		{
			name:         "未知表态类型",
			target:       model.ReactionTarget{PostID: postID},
			reactionType: "sparkle",
			wantErr:      ErrReactionInvalid,
		},
		{
			name:         "空目标",
			target:       model.ReactionTarget{},
			reactionType: consts.ReactionLike,
			wantErr:      ErrTargetInvalid,
		},
		{
			name: "帖子评论同时指定",
			target: model.ReactionTarget{
				PostID:    postID,
				CommentID: primitive.NewObjectID(),
			},
			reactionType: consts.ReactionLike,
			wantErr:      ErrTargetInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Toggle(context.Background(), "visitor-7", tt.target, tt.reactionType)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetUserReaction(t *testing.T) {
	postID := primitive.NewObjectID()
	target := model.ReactionTarget{PostID: postID}

	reactionRepo, _, _, svc := newReactionFixture()
	reactionRepo.On("Get", mock.Anything, "visitor-7", target).
		Return(&model.UserReaction{ReactionType: consts.ReactionSad}, nil)

	current, err := svc.GetUserReaction(context.Background(), "visitor-7", target)

	require.NoError(t, err)
	assert.Equal(t, consts.ReactionSad, current)
}

func TestGetUserReactionNone(t *testing.T) {
	target := model.ReactionTarget{PostID: primitive.NewObjectID()}

	reactionRepo, _, _, svc := newReactionFixture()
	reactionRepo.On("Get", mock.Anything, "visitor-7", target).Return(nil, nil)

	current, err := svc.GetUserReaction(context.Background(), "visitor-7", target)

	require.NoError(t, err)
	assert.Empty(t, current)
}

func TestSetUserReactionValidation(t *testing.T) {
	_, _, _, svc := newReactionFixture()
	err := svc.SetUserReaction(context.Background(), "visitor-7",
		model.ReactionTarget{PostID: primitive.NewObjectID()}, "sparkle")
	assert.ErrorIs(t, err, ErrReactionInvalid)
}
