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

type TrashRepo interface {
	Insert(ctx context.Context, item *model.TrashItem) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.TrashItem, error)
	List(ctx context.Context) ([]*model.TrashItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type trashRepoImpl struct {
	col *mongo.Collection
}

func NewTrashRepo(db *mongo.Database) TrashRepo {
	return &trashRepoImpl{
		col: db.Collection("trash"),
	}
}

func (s *trashRepoImpl) Insert(ctx context.Context, item *model.TrashItem) (primitive.ObjectID, error) {
	result, err := s.col.InsertOne(ctx, item)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// GetByID 按 ID 查询，不存在时返回 (nil, nil)
func (s *trashRepoImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*model.TrashItem, error) {
	var item model.TrashItem
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// List 全部回收站条目，按删除时间倒序
func (s *trashRepoImpl) List(ctx context.Context) ([]*model.TrashItem, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "deleted_at", Value: -1}})

	cursor, err := s.col.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var items []*model.TrashItem
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete 删除条目，条目不存在不算错误（可能已被并发清理）
func (s *trashRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// DeleteExpired 删除全部 expires_at ≤ now 的条目并返回删除数量。
// 单条 DeleteMany 天然幂等，并发清扫互不干扰。
func (s *trashRepoImpl) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := s.col.DeleteMany(ctx, bson.M{"expires_at": bson.M{"$lte": now}})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
