package repository

import (
	"Daybook/internal/model"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CommentRepo interface {
	Create(ctx context.Context, comment *model.Comment) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Comment, error)
	ListByPost(ctx context.Context, postID primitive.ObjectID) ([]*model.Comment, error)
	CountByPost(ctx context.Context, postID primitive.ObjectID) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	IncReaction(ctx context.Context, id primitive.ObjectID, reactionType string, delta int64) error
	SetReactionCounts(ctx context.Context, id primitive.ObjectID, counts model.ReactionCounts) error
}

type commentRepoImpl struct {
	col *mongo.Collection
}

func NewCommentRepo(db *mongo.Database) CommentRepo {
	return &commentRepoImpl{
		col: db.Collection("comments"),
	}
}

func (s *commentRepoImpl) Create(ctx context.Context, comment *model.Comment) (primitive.ObjectID, error) {
	comment.CreatedAt = time.Now()

	result, err := s.col.InsertOne(ctx, comment)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// GetByID 按 ID 查询，不存在时返回 (nil, nil)
func (s *commentRepoImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Comment, error) {
	var comment model.Comment
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// ListByPost 按发布时间正序返回帖子下的全部评论
func (s *commentRepoImpl) ListByPost(ctx context.Context, postID primitive.ObjectID) ([]*model.Comment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := s.col.Find(ctx, bson.M{"post_id": postID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var comments []*model.Comment
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CountByPost 评论计数的权威口径
func (s *commentRepoImpl) CountByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"post_id": postID})
}

func (s *commentRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// IncReaction 原子增减单个表态计数，只在重算失败的兜底路径使用
func (s *commentRepoImpl) IncReaction(ctx context.Context, id primitive.ObjectID, reactionType string, delta int64) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"reactions." + reactionType: delta}})
	return err
}

// SetReactionCounts 将权威表态计数写回评论
func (s *commentRepoImpl) SetReactionCounts(ctx context.Context, id primitive.ObjectID, counts model.ReactionCounts) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"reactions": counts}})
	return err
}
