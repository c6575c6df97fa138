package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/yungbote/rewire-backend/internal/logger"
  "github.com/yungbote/rewire-backend/internal/types"
)

type QuestionnaireRepo interface {
  List(ctx context.Context, tx *gorm.DB) ([]*types.QuestionnaireQuestion, error)
  Create(ctx context.Context, tx *gorm.DB, questions []*types.QuestionnaireQuestion) ([]*types.QuestionnaireQuestion, error)
}

type questionnaireRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewQuestionnaireRepo(db *gorm.DB, baseLog *logger.Logger) QuestionnaireRepo {
  repoLog := baseLog.With("repo", "QuestionnaireRepo")
  return &questionnaireRepo{db: db, log: repoLog}
}

func (qr *questionnaireRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.QuestionnaireQuestion, error) {
  transaction := tx
  if transaction == nil {
    transaction = qr.db
  }

  var results []*types.QuestionnaireQuestion
  if err := transaction.WithContext(ctx).
    Order("created_at ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (qr *questionnaireRepo) Create(ctx context.Context, tx *gorm.DB, questions []*types.QuestionnaireQuestion) ([]*types.QuestionnaireQuestion, error) {
  transaction := tx
  if transaction == nil {
    transaction = qr.db
  }

  if len(questions) == 0 {
    return []*types.QuestionnaireQuestion{}, nil
  }

  if err := transaction.WithContext(ctx).Create(&questions).Error; err != nil {
    return nil, err
  }

  return questions, nil
}
