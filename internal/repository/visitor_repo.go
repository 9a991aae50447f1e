package repository

import (
	"Daybook/internal/model"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type VisitorRepo interface {
	Insert(ctx context.Context, visit *model.VisitorLog) error
	CountAll(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

type visitorRepoImpl struct {
	col *mongo.Collection
}

func NewVisitorRepo(db *mongo.Database) VisitorRepo {
	return &visitorRepoImpl{
		col: db.Collection("visitor_analytics"),
	}
}

func (s *visitorRepoImpl) Insert(ctx context.Context, visit *model.VisitorLog) error {
	visit.VisitedAt = time.Now()
	_, err := s.col.InsertOne(ctx, visit)
	return err
}

func (s *visitorRepoImpl) CountAll(ctx context.Context) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{})
}

func (s *visitorRepoImpl) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"visited_at": bson.M{"$gte": since}})
}
