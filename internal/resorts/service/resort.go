package service

import (
	"context"

	"resortly/internal/resorts/repository"
	"resortly/pkg/config"
	apperrors "resortly/pkg/errors"
	"resortly/pkg/model"
)

type ResortService interface {
	Create(ctx context.Context, resort model.Resort) (*repository.InsertResult, error)
	GetAll(ctx context.Context) ([]model.Resort, error)
}

type resortService struct {
	repo repository.ResortRepository
	cfg  *config.Config
}

func NewResortService(repo repository.ResortRepository, cfg *config.Config) ResortService {
	return &resortService{repo: repo, cfg: cfg}
}

// Create accepts any non-empty document. Resorts carry no enforced
// schema beyond not being empty.
func (s *resortService) Create(ctx context.Context, resort model.Resort) (*repository.InsertResult, error) {
	if len(resort) == 0 {
		return nil, apperrors.InvalidInput("resort document cannot be empty")
	}

	result, err := s.repo.Insert(ctx, resort)
	if err != nil {
		s.cfg.Log.Error("Failed to insert resort", "error", err)
		return nil, apperrors.Internal("Failed to create resort", err)
	}

	s.cfg.Log.Info("Resort created", "inserted_id", result.InsertedID)
	return result, nil
}

func (s *resortService) GetAll(ctx context.Context) ([]model.Resort, error) {
	resorts, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list resorts", "error", err)
		return nil, apperrors.Internal("Failed to retrieve resorts", err)
	}
	return resorts, nil
}
