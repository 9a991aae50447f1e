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

func reactionsFor(target model.ReactionTarget, types ...string) []*model.UserReaction {
	out := make([]*model.UserReaction, 0, len(types))
	for i, rt := range types {
		out = append(out, &model.UserReaction{
			ID:           primitive.NewObjectID(),
			UserID:       string(rune('a' + i)),
			PostID:       target.PostID,
			CommentID:    target.CommentID,
			ReactionType: rt,
		})
	}
	return out
}

func TestSyncCommentCountIdempotent(t *testing.T) {
	postID := primitive.NewObjectID()

	postRepo := new(MockPostRepo)
	commentRepo := new(MockCommentRepo)
	reactionRepo := new(MockReactionRepo)

	postRepo.On("GetByID", mock.Anything, postID).Return(&model.Post{ID: postID, CommentCount: 99}, nil)
	commentRepo.On("CountByPost", mock.Anything, postID).Return(int64(3), nil)
	postRepo.On("SetCommentCount", mock.Anything, postID, int64(3)).Return(nil)

	svc := NewSyncService(postRepo, commentRepo, reactionRepo)

	// 连续两次重算给出同一权威值
	for i := 0; i < 2; i++ {
		count, err := svc.SyncCommentCount(context.Background(), postID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	}

	postRepo.AssertExpectations(t)
	commentRepo.AssertExpectations(t)
}

func TestSyncCommentCountPostNotFound(t *testing.T) {
	postRepo := new(MockPostRepo)
	postID := primitive.NewObjectID()
	postRepo.On("GetByID", mock.Anything, postID).Return(nil, nil)

	svc := NewSyncService(postRepo, new(MockCommentRepo), new(MockReactionRepo))
	_, err := svc.SyncCommentCount(context.Background(), postID)

	assert.ErrorIs(t, err, ErrPostNotFound)
	postRepo.AssertNotCalled(t, "SetCommentCount", mock.Anything, mock.Anything, mock.Anything)
}

func TestSyncPostReactionCountsTally(t *testing.T) {
	postID := primitive.NewObjectID()
	target := model.ReactionTarget{PostID: postID}

	postRepo := new(MockPostRepo)
	commentRepo := new(MockCommentRepo)
	reactionRepo := new(MockReactionRepo)

	postRepo.On("GetByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
	reactionRepo.On("ListByTarget", mock.Anything, target).
		Return(reactionsFor(target, consts.ReactionLike, consts.ReactionLike, consts.ReactionLove), nil)

	expected := model.ReactionCounts{Like: 2, Love: 1}
	postRepo.On("SetReactionCounts", mock.Anything, postID, expected).Return(nil)

	svc := NewSyncService(postRepo, commentRepo, reactionRepo)
	counts, err := svc.SyncPostReactionCounts(context.Background(), postID)

	require.NoError(t, err)
	assert.Equal(t, expected, counts)
	assert.Equal(t, int64(3), counts.Total())

	postRepo.AssertExpectations(t)
	reactionRepo.AssertExpectations(t)
}

func TestSyncPostReactionCountsIgnoresUnknownTypes(t *testing.T) {
	postID := primitive.NewObjectID()
	target := model.ReactionTarget{PostID: postID}

	postRepo := new(MockPostRepo)
	reactionRepo := new(MockReactionRepo)

	postRepo.On("GetByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
	reactionRepo.On("ListByTarget", mock.Anything, target).
		Return(reactionsFor(target, consts.ReactionWow, "sparkle", consts.ReactionSad), nil)

	expected := model.ReactionCounts{Wow: 1, Sad: 1}
	postRepo.On("SetReactionCounts", mock.Anything, postID, expected).Return(nil)

	svc := NewSyncService(postRepo, new(MockCommentRepo), reactionRepo)
	counts, err := svc.SyncPostReactionCounts(context.Background(), postID)

	require.NoError(t, err)
	assert.Equal(t, expected, counts)
}

func TestSyncCommentReactionCounts(t *testing.T) {
	commentID := primitive.NewObjectID()
	target := model.ReactionTarget{CommentID: commentID}

	commentRepo := new(MockCommentRepo)
	reactionRepo := new(MockReactionRepo)

	commentRepo.On("GetByID", mock.Anything, commentID).Return(&model.Comment{ID: commentID}, nil)
	reactionRepo.On("ListByTarget", mock.Anything, target).
		Return(reactionsFor(target, consts.ReactionLaugh), nil)

	expected := model.ReactionCounts{Laugh: 1}
	commentRepo.On("SetReactionCounts", mock.Anything, commentID, expected).Return(nil)

	svc := NewSyncService(new(MockPostRepo), commentRepo, reactionRepo)
	counts, err := svc.SyncCommentReactionCounts(context.Background(), commentID)

	require.NoError(t, err)
	assert.Equal(t, expected, counts)
	commentRepo.AssertExpectations(t)
}

func TestSyncAllCommentCountsBatchResilience(t *testing.T) {
	ids := []primitive.ObjectID{
		primitive.NewObjectID(),
		primitive.NewObjectID(),
		primitive.NewObjectID(),
	}

	postRepo := new(MockPostRepo)
	commentRepo := new(MockCommentRepo)

	postRepo.On("ListIDs", mock.Anything).Return(ids, nil)

	// 第二个帖子的重算失败，批次继续处理其余帖子
	for i, id := range ids {
		postRepo.On("GetByID", mock.Anything, id).Return(&model.Post{ID: id}, nil)
		if i == 1 {
			commentRepo.On("CountByPost", mock.Anything, id).
				Return(int64(0), errors.New("connection reset"))
			continue
		}
		commentRepo.On("CountByPost", mock.Anything, id).Return(int64(5), nil)
		postRepo.On("SetCommentCount", mock.Anything, id, int64(5)).Return(nil)
	}

	svc := NewSyncService(postRepo, commentRepo, new(MockReactionRepo))
	report, err := svc.SyncAllCommentCounts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, report.Synced)
	assert.Equal(t, 1, report.Errors)

	postRepo.AssertExpectations(t)
	commentRepo.AssertExpectations(t)
}

func TestSyncAllReactionCounts(t *testing.T) {
	id := primitive.NewObjectID()
	target := model.ReactionTarget{PostID: id}

	postRepo := new(MockPostRepo)
	reactionRepo := new(MockReactionRepo)

	postRepo.On("ListIDs", mock.Anything).Return([]primitive.ObjectID{id}, nil)
	postRepo.On("GetByID", mock.Anything, id).Return(&model.Post{ID: id}, nil)
	reactionRepo.On("ListByTarget", mock.Anything, target).
		Return(reactionsFor(target, consts.ReactionAngry), nil)
	postRepo.On("SetReactionCounts", mock.Anything, id, model.ReactionCounts{Angry: 1}).Return(nil)

	svc := NewSyncService(postRepo, new(MockCommentRepo), reactionRepo)
	report, err := svc.SyncAllReactionCounts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Synced)
	assert.Zero(t, report.Errors)
}

func TestSyncAllListFails(t *testing.T) {
	postRepo := new(MockPostRepo)
	postRepo.On("ListIDs", mock.Anything).Return(nil, errors.New("timeout"))

	svc := NewSyncService(postRepo, new(MockCommentRepo), new(MockReactionRepo))
	report, err := svc.SyncAllCommentCounts(context.Background())

	assert.Error(t, err)
	assert.Nil(t, report)
}
