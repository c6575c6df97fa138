package services

import (
  "context"
  "encoding/json"
  "fmt"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
  "github.com/yungbote/rewire-backend/internal/logger"
  "github.com/yungbote/rewire-backend/internal/repos"
  "github.com/yungbote/rewire-backend/internal/types"
)

type QuestionnaireService interface {
  ListQuestions(ctx context.Context) ([]*types.QuestionnaireQuestion, error)
  SeedDefaultQuestions(ctx context.Context) error
}

type questionnaireService struct {
  db                *gorm.DB
  log               *logger.Logger
  questionnaireRepo repos.QuestionnaireRepo
}

func NewQuestionnaireService(db *gorm.DB, log *logger.Logger, questionnaireRepo repos.QuestionnaireRepo) QuestionnaireService {
  serviceLog := log.With("service", "QuestionnaireService")
  return &questionnaireService{db: db, log: serviceLog, questionnaireRepo: questionnaireRepo}
}

func (qs *questionnaireService) ListQuestions(ctx context.Context) ([]*types.QuestionnaireQuestion, error) {
  questions, err := qs.questionnaireRepo.List(ctx, nil)
  if err != nil {
    return nil, fmt.Errorf("Failed to list questionnaire questions: %w", err)
  }
  return questions, nil
}

// SeedDefaultQuestions inserts the onboarding question set once. An already
// populated table is left untouched so redeploys never duplicate questions.
func (qs *questionnaireService) SeedDefaultQuestions(ctx context.Context) error {
  existing, err := qs.questionnaireRepo.List(ctx, nil)
  if err != nil {
    return fmt.Errorf("Failed to check questionnaire questions: %w", err)
  }
  if len(existing) > 0 {
    return nil
  }

  questions := make([]*types.QuestionnaireQuestion, 0, len(defaultQuestions))
  for _, dq := range defaultQuestions {
    answers, err := json.Marshal(dq.answers)
    if err != nil {
      return fmt.Errorf("Failed to encode answers for %q: %w", dq.title, err)
    }
    questions = append(questions, &types.QuestionnaireQuestion{
      ID:               uuid.New(),
      Title:            dq.title,
      AnswerFormat:     dq.format,
      AvailableAnswers: datatypes.JSON(answers),
    })
  }
  if _, err := qs.questionnaireRepo.Create(ctx, nil, questions); err != nil {
    return fmt.Errorf("Failed to seed questionnaire questions: %w", err)
  }
  qs.log.Info("Seeded questionnaire questions", "count", len(questions))
  return nil
}

var defaultQuestions = []struct {
  title   string
  format  string
  answers []string
}{
  {
    title:   "What type of addiction are you dealing with?",
    format:  types.AnswerFormatSingle,
    answers: []string{"social media", "gaming", "gambling", "shopping", "other"},
  },
  {
    title:   "How long have you been struggling with it?",
    format:  types.AnswerFormatSingle,
    answers: []string{"less than 6 months", "6-12 months", "1-3 years", "more than 3 years"},
  },
  {
    title:   "When are your urges strongest?",
    format:  types.AnswerFormatMultiple,
    answers: []string{"morning", "afternoon", "evening", "late at night"},
  },
  {
    title:   "What would you most like to get back?",
    format:  types.AnswerFormatMultiple,
    answers: []string{"time", "focus", "sleep", "relationships", "money"},
  },
}
