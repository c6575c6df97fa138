package services

import (
  "context"
  "fmt"
  "gorm.io/gorm"
  "github.com/yungbote/rewire-backend/internal/logger"
  "github.com/yungbote/rewire-backend/internal/repos"
  "github.com/yungbote/rewire-backend/internal/types"
)

type TaskStatusCounts struct {
  Completed  int `json:"completed"`
  InProgress int `json:"in_progress"`
  NotStarted int `json:"not_started"`
  Passed     int `json:"passed"`
}

type DifficultyCounts struct {
  Easy   int `json:"easy"`
  Medium int `json:"medium"`
  Hard   int `json:"hard"`
}

type DifficultyCompletion struct {
  Completed int     `json:"completed"`
  Total     int     `json:"total"`
  Rate      float64 `json:"rate"`
}

type CompletionByDifficulty struct {
  Easy   DifficultyCompletion `json:"easy"`
  Medium DifficultyCompletion `json:"medium"`
  Hard   DifficultyCompletion `json:"hard"`
}

type TaskAnalytics struct {
  TotalScore             int                    `json:"total_score"`
  TasksCompleted         int                    `json:"tasks_completed"`
  TotalTasks             int                    `json:"total_tasks"`
  CompletionRate         float64                `json:"completion_rate"`
  TaskStatus             TaskStatusCounts       `json:"task_status"`
  DifficultyDistribution DifficultyCounts       `json:"difficulty_distribution"`
  CompletionByDifficulty CompletionByDifficulty `json:"completion_by_difficulty"`
}

// AnalyticsService is a read-only projection over the user's assignment set.
// It recomputes from stored state on every call; the stored score it reports
// must always agree with a recount of COMPLETED assignments.
type AnalyticsService interface {
  GetTaskAnalytics(ctx context.Context) (*TaskAnalytics, error)
}

type analyticsService struct {
  db            *gorm.DB
  log           *logger.Logger
  userTaskRepo  repos.UserTaskRepo
  userScoreRepo repos.UserScoreRepo
}

func NewAnalyticsService(db *gorm.DB, log *logger.Logger, userTaskRepo repos.UserTaskRepo, userScoreRepo repos.UserScoreRepo) AnalyticsService {
  serviceLog := log.With("service", "AnalyticsService")
  return &analyticsService{
    db:            db,
    log:           serviceLog,
    userTaskRepo:  userTaskRepo,
    userScoreRepo: userScoreRepo,
  }
}

func (as *analyticsService) GetTaskAnalytics(ctx context.Context) (*TaskAnalytics, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }

  userTasks, err := as.userTaskRepo.ListByUser(ctx, nil, userID, "", "")
  if err != nil {
    return nil, fmt.Errorf("Failed to load user tasks: %w", err)
  }
  score, err := as.userScoreRepo.GetOrCreate(ctx, nil, userID)
  if err != nil {
    return nil, fmt.Errorf("Failed to load user score: %w", err)
  }

  analytics := &TaskAnalytics{
    TotalScore: score.TotalMarks,
    TotalTasks: len(userTasks),
  }
  difficultyTotals := map[string]*DifficultyCompletion{
    types.DifficultyEasy:   &analytics.CompletionByDifficulty.Easy,
    types.DifficultyMedium: &analytics.CompletionByDifficulty.Medium,
    types.DifficultyHard:   &analytics.CompletionByDifficulty.Hard,
  }

  for _, userTask := range userTasks {
    switch userTask.Status {
    case types.StatusCompleted:
      analytics.TaskStatus.Completed++
    case types.StatusInProgress:
      analytics.TaskStatus.InProgress++
    case types.StatusNotStarted:
      analytics.TaskStatus.NotStarted++
    case types.StatusPassed:
      analytics.TaskStatus.Passed++
    }

    if userTask.Task == nil {
      continue
    }
    switch userTask.Task.Difficulty {
    case types.DifficultyEasy:
      analytics.DifficultyDistribution.Easy++
    case types.DifficultyMedium:
      analytics.DifficultyDistribution.Medium++
    case types.DifficultyHard:
      analytics.DifficultyDistribution.Hard++
    }
    if bucket, ok := difficultyTotals[userTask.Task.Difficulty]; ok {
      bucket.Total++
      if userTask.Status == types.StatusCompleted {
        bucket.Completed++
      }
    }
  }

  analytics.TasksCompleted = analytics.TaskStatus.Completed
  analytics.CompletionRate = completionRate(analytics.TaskStatus.Completed, analytics.TotalTasks)
  for _, bucket := range difficultyTotals {
    bucket.Rate = completionRate(bucket.Completed, bucket.Total)
  }

  return analytics, nil
}

func completionRate(completed, total int) float64 {
  if total == 0 {
    return 0
  }
  return float64(completed) / float64(total) * 100
}
