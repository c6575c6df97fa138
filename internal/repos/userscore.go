package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/yungbote/rewire-backend/internal/logger"
  "github.com/yungbote/rewire-backend/internal/types"
)

type UserScoreRepo interface {
  GetOrCreate(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserScore, error)
  Increment(ctx context.Context, tx *gorm.DB, userID uuid.UUID, marks int) error
}

type userScoreRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUserScoreRepo(db *gorm.DB, baseLog *logger.Logger) UserScoreRepo {
  repoLog := baseLog.With("repo", "UserScoreRepo")
  return &userScoreRepo{db: db, log: repoLog}
}

func (usr *userScoreRepo) GetOrCreate(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserScore, error) {
  transaction := tx
  if transaction == nil {
    transaction = usr.db
  }

  score := types.UserScore{
    ID:          uuid.New(),
    UserID:      userID,
    LastUpdated: time.Now(),
  }
  if err := transaction.WithContext(ctx).
    Where(types.UserScore{UserID: userID}).
    Attrs(score).
    FirstOrCreate(&score).Error; err != nil {
    return nil, err
  }
  return &score, nil
}

// Increment applies the completion delta as a single atomic UPDATE so
// concurrent completions by the same user serialize on the row and none is
// lost. The row is materialized first when the user has never completed a
// task. Must run inside the same transaction as the lifecycle transition.
func (usr *userScoreRepo) Increment(ctx context.Context, tx *gorm.DB, userID uuid.UUID, marks int) error {
  transaction := tx
  if transaction == nil {
    transaction = usr.db
  }

  now := time.Now()
  res := transaction.WithContext(ctx).
    Model(&types.UserScore{}).
    Where("user_id = ?", userID).
    Updates(map[string]interface{}{
      "total_marks":     gorm.Expr("total_marks + ?", marks),
      "tasks_completed": gorm.Expr("tasks_completed + 1"),
      "last_updated":    now,
    })
  if res.Error != nil {
    return res.Error
  }
  if res.RowsAffected > 0 {
    return nil
  }

  // First completion for this user: create the row, tolerating a concurrent
  // creator, then apply the delta on the guaranteed-present row.
  score := types.UserScore{
    ID:          uuid.New(),
    UserID:      userID,
    LastUpdated: now,
  }
  if err := transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns:   []clause.Column{{Name: "user_id"}},
      DoNothing: true,
    }).
    Create(&score).Error; err != nil {
    return err
  }
  return transaction.WithContext(ctx).
    Model(&types.UserScore{}).
    Where("user_id = ?", userID).
    Updates(map[string]interface{}{
      "total_marks":     gorm.Expr("total_marks + ?", marks),
      "tasks_completed": gorm.Expr("tasks_completed + 1"),
      "last_updated":    now,
    }).Error
}
