package services

import (
  "context"
  "fmt"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/rewire-backend/internal/apperr"
  "github.com/yungbote/rewire-backend/internal/logger"
  "github.com/yungbote/rewire-backend/internal/repos"
  "github.com/yungbote/rewire-backend/internal/types"
)

type ProfileService interface {
  GetProfile(ctx context.Context) (*types.AIProfile, error)
  CreateProfile(ctx context.Context, addictionType string, durationMonths int) (*types.AIProfile, error)
}

type profileService struct {
  db            *gorm.DB
  log           *logger.Logger
  aiProfileRepo repos.AIProfileRepo
}

func NewProfileService(db *gorm.DB, log *logger.Logger, aiProfileRepo repos.AIProfileRepo) ProfileService {
  serviceLog := log.With("service", "ProfileService")
  return &profileService{db: db, log: serviceLog, aiProfileRepo: aiProfileRepo}
}

func (ps *profileService) GetProfile(ctx context.Context) (*types.AIProfile, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  profile, err := ps.aiProfileRepo.GetByUserID(ctx, nil, userID)
  if err != nil {
    return nil, fmt.Errorf("Failed to load AI profile: %w", err)
  }
  if profile == nil {
    return nil, apperr.ErrNotFound
  }
  return profile, nil
}

func (ps *profileService) CreateProfile(ctx context.Context, addictionType string, durationMonths int) (*types.AIProfile, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  if addictionType == "" {
    return nil, apperr.Validationf("addiction_type is required")
  }
  if durationMonths < 0 {
    return nil, apperr.Validationf("addiction_duration_months must not be negative")
  }

  profile := &types.AIProfile{
    ID:                      uuid.New(),
    UserID:                  userID,
    AddictionType:           addictionType,
    AddictionDurationMonths: durationMonths,
  }
  if _, err := ps.aiProfileRepo.Create(ctx, nil, []*types.AIProfile{profile}); err != nil {
    return nil, fmt.Errorf("Failed to create AI profile: %w", err)
  }
  return profile, nil
}
