package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/rewire-backend/internal/logger"
  "github.com/yungbote/rewire-backend/internal/types"
)

type AIProfileRepo interface {
  Create(ctx context.Context, tx *gorm.DB, profiles []*types.AIProfile) ([]*types.AIProfile, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.AIProfile, error)
}

type aiProfileRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewAIProfileRepo(db *gorm.DB, baseLog *logger.Logger) AIProfileRepo {
  repoLog := baseLog.With("repo", "AIProfileRepo")
  return &aiProfileRepo{db: db, log: repoLog}
}

func (apr *aiProfileRepo) Create(ctx context.Context, tx *gorm.DB, profiles []*types.AIProfile) ([]*types.AIProfile, error) {
  transaction := tx
  if transaction == nil {
    transaction = apr.db
  }

  if len(profiles) == 0 {
    return []*types.AIProfile{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&profiles).Error; err != nil {
    return nil, err
  }

  return profiles, nil
}

func (apr *aiProfileRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.AIProfile, error) {
  transaction := tx
  if transaction == nil {
    transaction = apr.db
  }

  var results []*types.AIProfile
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("created_at DESC").
    Limit(1).
    Find(&results).Error; err != nil {
    return nil, err
  }
  if len(results) == 0 {
    return nil, nil
  }
  return results[0], nil
}
