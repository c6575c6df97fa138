package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/yungbote/rewire-backend/internal/logger"
  "github.com/yungbote/rewire-backend/internal/types"
)

type TaskRepo interface {
  Create(ctx context.Context, tx *gorm.DB, tasks []*types.Task) ([]*types.Task, error)
}

type taskRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewTaskRepo(db *gorm.DB, baseLog *logger.Logger) TaskRepo {
  repoLog := baseLog.With("repo", "TaskRepo")
  return &taskRepo{db: db, log: repoLog}
}

func (tr *taskRepo) Create(ctx context.Context, tx *gorm.DB, tasks []*types.Task) ([]*types.Task, error) {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }

  if len(tasks) == 0 {
    return []*types.Task{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&tasks).Error; err != nil {
    return nil, err
  }

  return tasks, nil
}
