package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/rewire-backend/internal/logger"
  "github.com/yungbote/rewire-backend/internal/types"
)

type UserTaskRepo interface {
  Create(ctx context.Context, tx *gorm.DB, userTasks []*types.UserTask) ([]*types.UserTask, error)
  GetByUserAndTaskID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, taskID uuid.UUID) (*types.UserTask, error)
  ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, status string, difficulty string) ([]*types.UserTask, error)
  ApplyTransition(ctx context.Context, tx *gorm.DB, userTask *types.UserTask, fromStatuses []string) (bool, error)
  Save(ctx context.Context, tx *gorm.DB, userTask *types.UserTask) error
}

type userTaskRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUserTaskRepo(db *gorm.DB, baseLog *logger.Logger) UserTaskRepo {
  repoLog := baseLog.With("repo", "UserTaskRepo")
  return &userTaskRepo{db: db, log: repoLog}
}

func (utr *userTaskRepo) Create(ctx context.Context, tx *gorm.DB, userTasks []*types.UserTask) ([]*types.UserTask, error) {
  transaction := tx
  if transaction == nil {
    transaction = utr.db
  }

  if len(userTasks) == 0 {
    return []*types.UserTask{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&userTasks).Error; err != nil {
    return nil, err
  }

  return userTasks, nil
}

func (utr *userTaskRepo) GetByUserAndTaskID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, taskID uuid.UUID) (*types.UserTask, error) {
  transaction := tx
  if transaction == nil {
    transaction = utr.db
  }

  var results []*types.UserTask
  if err := transaction.WithContext(ctx).
    Preload("Task").
    Where("user_id = ? AND task_id = ?", userID, taskID).
    Limit(1).
    Find(&results).Error; err != nil {
    return nil, err
  }
  if len(results) == 0 {
    return nil, nil
  }
  return results[0], nil
}

func (utr *userTaskRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, status string, difficulty string) ([]*types.UserTask, error) {
  transaction := tx
  if transaction == nil {
    transaction = utr.db
  }

  query := transaction.WithContext(ctx).
    Preload("Task").
    Where("user_task.user_id = ?", userID)
  if status != "" {
    query = query.Where("user_task.status = ?", status)
  }
  if difficulty != "" {
    query = query.
      Joins("JOIN task ON task.id = user_task.task_id").
      Where("task.difficulty = ?", difficulty)
  }

  var results []*types.UserTask
  if err := query.
    Order("user_task.created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// ApplyTransition writes the lifecycle columns only while the row still holds
// one of the expected statuses. A concurrent transition that commits first
// leaves this one matching zero rows, so the same completion can never be
// written, or counted, twice. Reports whether the row was updated.
func (utr *userTaskRepo) ApplyTransition(ctx context.Context, tx *gorm.DB, userTask *types.UserTask, fromStatuses []string) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = utr.db
  }

  res := transaction.WithContext(ctx).
    Model(&types.UserTask{}).
    Where("id = ? AND status IN ?", userTask.ID, fromStatuses).
    Updates(map[string]interface{}{
      "status":       userTask.Status,
      "started_at":   userTask.StartedAt,
      "completed_at": userTask.CompletedAt,
      "earned_marks": userTask.EarnedMarks,
      "updated_at":   time.Now(),
    })
  if res.Error != nil {
    return false, res.Error
  }
  return res.RowsAffected > 0, nil
}

func (utr *userTaskRepo) Save(ctx context.Context, tx *gorm.DB, userTask *types.UserTask) error {
  transaction := tx
  if transaction == nil {
    transaction = utr.db
  }

  // Save writes every column of the row so a transition can never commit a
  // partial field set.
  return transaction.WithContext(ctx).
    Omit("Task", "User").
    Save(userTask).Error
}
