package service

import (
	"Daybook/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateComment(t *testing.T) {
	postID := primitive.NewObjectID()
	commentID := primitive.NewObjectID()

	postRepo := new(MockPostRepo)
	commentRepo := new(MockCommentRepo)

	postRepo.On("GetByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
	commentRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).
		Return(commentID, nil)
	postRepo.On("IncCommentCount", mock.Anything, postID, int64(1)).Return(nil)

	svc := NewCommentService(commentRepo, postRepo)
	comment, err := svc.CreateComment(context.Background(), postID, "写得真好", "ab12cd34", false)

	require.NoError(t, err)
	assert.Equal(t, commentID, comment.ID)
	assert.Equal(t, postID, comment.PostID)
	assert.Equal(t, "写得真好", comment.Text)
	assert.False(t, comment.IsAuthorReply)

	postRepo.AssertExpectations(t)
	commentRepo.AssertExpectations(t)
}

func TestCreateCommentParentMissing(t *testing.T) {
	postRepo := new(MockPostRepo)
	commentRepo := new(MockCommentRepo)

	postID := primitive.NewObjectID()
	postRepo.On("GetByID", mock.Anything, postID).Return(nil, nil)

	svc := NewCommentService(commentRepo, postRepo)
	_, err := svc.CreateComment(context.Background(), postID, "写得真好", "", false)

	assert.ErrorIs(t, err, ErrPostNotFound)
	commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListCommentsParentMissing(t *testing.T) {
	postRepo := new(MockPostRepo)
	postID := primitive.NewObjectID()
	postRepo.On("GetByID", mock.Anything, postID).Return(nil, nil)

	svc := NewCommentService(new(MockCommentRepo), postRepo)
	_, err := svc.ListComments(context.Background(), postID)

	assert.ErrorIs(t, err, ErrPostNotFound)
}
