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

type PostRepo interface {
	Create(ctx context.Context, post *model.Post) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error)
	List(ctx context.Context, page, pageSize int64) ([]*model.Post, error)
	ListIDs(ctx context.Context) ([]primitive.ObjectID, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	IncCommentCount(ctx context.Context, id primitive.ObjectID, delta int64) error
	IncShareCount(ctx context.Context, id primitive.ObjectID) error
	IncReaction(ctx context.Context, id primitive.ObjectID, reactionType string, delta int64) error
	SetCommentCount(ctx context.Context, id primitive.ObjectID, count int64) error
	SetReactionCounts(ctx context.Context, id primitive.ObjectID, counts model.ReactionCounts) error
}

type postRepoImpl struct {
	col *mongo.Collection
}

func NewPostRepo(db *mongo.Database) PostRepo {
	return &postRepoImpl{
		col: db.Collection("posts"),
	}
}

// Create 插入新帖子，返回库分配的 ID
func (s *postRepoImpl) Create(ctx context.Context, post *model.Post) (primitive.ObjectID, error) {
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	result, err := s.col.InsertOne(ctx, post)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// GetByID 按 ID 查询，不存在时返回 (nil, nil)
func (s *postRepoImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	var post model.Post
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// List 分页查询，按日记日期倒序（最新的在前）
func (s *postRepoImpl) List(ctx context.Context, page, pageSize int64) ([]*model.Post, error) {
	if page < 1 {
		page = 1
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "created_at", Value: -1}}).
		SetSkip((page - 1) * pageSize).
		SetLimit(pageSize)

	cursor, err := s.col.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var posts []*model.Post
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ListIDs 返回全部帖子 ID，用于全量重算任务
func (s *postRepoImpl) ListIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	findOptions := options.Find().SetProjection(bson.M{"_id": 1})

	cursor, err := s.col.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids, nil
}

func (s *postRepoImpl) Count(ctx context.Context) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{})
}

// Update 更新指定字段并刷新 updated_at
func (s *postRepoImpl) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	fields["updated_at"] = time.Now()
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (s *postRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// IncCommentCount 原子增减评论计数
func (s *postRepoImpl) IncCommentCount(ctx context.Context, id primitive.ObjectID, delta int64) error {
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"comment_count": delta}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// IncShareCount 原子递增分享计数
func (s *postRepoImpl) IncShareCount(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"share_count": 1}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// IncReaction 原子增减单个表态计数，只在重算失败的兜底路径使用
func (s *postRepoImpl) IncReaction(ctx context.Context, id primitive.ObjectID, reactionType string, delta int64) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"reactions." + reactionType: delta}})
	return err
}

// SetCommentCount 将权威评论计数写回帖子
func (s *postRepoImpl) SetCommentCount(ctx context.Context, id primitive.ObjectID, count int64) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"comment_count": count}})
	return err
}

// SetReactionCounts 将权威表态计数写回帖子
func (s *postRepoImpl) SetReactionCounts(ctx context.Context, id primitive.ObjectID, counts model.ReactionCounts) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"reactions": counts}})
	return err
}
