package repository

import (
	"Daybook/internal/model"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReactionRepo interface {
	Get(ctx context.Context, userID string, target model.ReactionTarget) (*model.UserReaction, error)
	Upsert(ctx context.Context, userID string, target model.ReactionTarget, reactionType string) error
	Delete(ctx context.Context, userID string, target model.ReactionTarget) error
	ListByTarget(ctx context.Context, target model.ReactionTarget) ([]*model.UserReaction, error)
}

type reactionRepoImpl struct {
	col *mongo.Collection
}

func NewReactionRepo(db *mongo.Database) ReactionRepo {
	return &reactionRepoImpl{
		col: db.Collection("user_reactions"),
	}
}

func targetFilter(userID string, target model.ReactionTarget) bson.M {
	field, id := target.Filter()
	return bson.M{"user_id": userID, field: id}
}

// Get 查询某用户对某目标的当前表态，不存在时返回 (nil, nil)
func (s *reactionRepoImpl) Get(ctx context.Context, userID string, target model.ReactionTarget) (*model.UserReaction, error) {
	var reaction model.UserReaction
	err := s.col.FindOne(ctx, targetFilter(userID, target)).Decode(&reaction)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &reaction, nil
}

// Upsert 以 (user_id, 目标) 为键写入表态，存在则覆盖类型。
// 目标的另一个 ID 字段不写入，避免空引用。
func (s *reactionRepoImpl) Upsert(ctx context.Context, userID string, target model.ReactionTarget, reactionType string) error {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"reaction_type": reactionType,
			"updated_at":    now,
		},
		"$setOnInsert": bson.M{
			"created_at": now,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.col.UpdateOne(ctx, targetFilter(userID, target), update, opts)
	return err
}

// Delete 删除表态记录，记录不存在不算错误
func (s *reactionRepoImpl) Delete(ctx context.Context, userID string, target model.ReactionTarget) error {
	_, err := s.col.DeleteOne(ctx, targetFilter(userID, target))
	return err
}

// ListByTarget 返回目标上的全部表态记录，重算聚合时使用
func (s *reactionRepoImpl) ListByTarget(ctx context.Context, target model.ReactionTarget) ([]*model.UserReaction, error) {
	field, id := target.Filter()

	cursor, err := s.col.Find(ctx, bson.M{field: id})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var reactions []*model.UserReaction
	if err = cursor.All(ctx, &reactions); err != nil {
		return nil, err
	}
	return reactions, nil
}
