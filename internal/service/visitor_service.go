package service

import (
	"Daybook/internal/api/dto"
	"Daybook/internal/model"
	"Daybook/internal/repository"
	"context"
	"time"
)

type VisitorService interface {
	Track(ctx context.Context, path, referrer, ipHash string) error
	Summary(ctx context.Context) (*dto.VisitorSummaryDTO, error)
}

type visitorServiceImpl struct {
	visitorRepo repository.VisitorRepo
}

func NewVisitorService(visitorRepo repository.VisitorRepo) VisitorService {
	return &visitorServiceImpl{
		visitorRepo: visitorRepo,
	}
}

func (s *visitorServiceImpl) Track(ctx context.Context, path, referrer, ipHash string) error {
	return s.visitorRepo.Insert(ctx, &model.VisitorLog{
		Path:     path,
		Referrer: referrer,
		IPHash:   ipHash,
	})
}

func (s *visitorServiceImpl) Summary(ctx context.Context) (*dto.VisitorSummaryDTO, error) {
	total, err := s.visitorRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today, err := s.visitorRepo.CountSince(ctx, midnight)
	if err != nil {
		return nil, err
	}

	return &dto.VisitorSummaryDTO{
		Total: total,
		Today: today,
	}, nil
}
