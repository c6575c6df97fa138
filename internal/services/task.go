package services

import (
  "context"
  "fmt"
  "strings"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/rewire-backend/internal/apperr"
  "github.com/yungbote/rewire-backend/internal/logger"
  "github.com/yungbote/rewire-backend/internal/normalization"
  "github.com/yungbote/rewire-backend/internal/repos"
  "github.com/yungbote/rewire-backend/internal/requestdata"
  "github.com/yungbote/rewire-backend/internal/types"
)

// TaskService owns the assignment engine, the assignment lifecycle state
// machine, and the score aggregate it maintains. A completing transition and
// its score increment always commit in the same transaction: both or neither.
type TaskService interface {
  GenerateTasks(ctx context.Context, difficulty string, count int) ([]*types.Task, error)
  ListTasks(ctx context.Context, status string, difficulty string) ([]*types.UserTask, error)
  GetScore(ctx context.Context) (*types.UserScore, error)
  UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, action string) (*types.UserTask, error)
  RateTask(ctx context.Context, taskID uuid.UUID, rating int) (*types.UserTask, error)
}

type taskService struct {
  db            *gorm.DB
  log           *logger.Logger
  taskRepo      repos.TaskRepo
  userTaskRepo  repos.UserTaskRepo
  userScoreRepo repos.UserScoreRepo
  recService    RecommendationService
}

func NewTaskService(
  db *gorm.DB,
  log *logger.Logger,
  taskRepo repos.TaskRepo,
  userTaskRepo repos.UserTaskRepo,
  userScoreRepo repos.UserScoreRepo,
  recService RecommendationService,
) TaskService {
  serviceLog := log.With("service", "TaskService")
  return &taskService{
    db:            db,
    log:           serviceLog,
    taskRepo:      taskRepo,
    userTaskRepo:  userTaskRepo,
    userScoreRepo: userScoreRepo,
    recService:    recService,
  }
}

func currentUserID(ctx context.Context) (uuid.UUID, error) {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return uuid.Nil, apperr.ErrUnauthorized
  }
  return rd.UserID, nil
}

const (
  minRecommendationCount = 1
  maxRecommendationCount = 10
)

// GenerateTasks validates input, fetches candidates from the generator, then
// persists catalog entries and NOT_STARTED assignments. The generator call
// blocks on network I/O and therefore runs before, and outside, the
// persistence transaction. Repeated calls create new rows; there is no
// deduplication against earlier recommendations.
func (ts *taskService) GenerateTasks(ctx context.Context, difficulty string, count int) ([]*types.Task, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }

  difficulty = normalization.ParseEnumString(difficulty)
  if difficulty != "" && !types.ValidDifficulty(difficulty) {
    return nil, apperr.Validationf("difficulty must be one of EASY, MEDIUM, HARD")
  }
  if count < minRecommendationCount || count > maxRecommendationCount {
    return nil, apperr.Validationf("count must be between %d and %d", minRecommendationCount, maxRecommendationCount)
  }

  candidates := ts.recService.Generate(ctx, userID, difficulty, count)

  tasks := make([]*types.Task, 0, len(candidates))
  userTasks := make([]*types.UserTask, 0, len(candidates))
  for _, candidate := range candidates {
    task := &types.Task{
      ID:          uuid.New(),
      Title:       candidate.Title,
      Description: candidate.Description,
      Difficulty:  candidate.Difficulty,
      Marks:       candidate.Marks,
    }
    tasks = append(tasks, task)
    userTasks = append(userTasks, &types.UserTask{
      ID:     uuid.New(),
      UserID: userID,
      TaskID: task.ID,
      Status: types.StatusNotStarted,
    })
  }

  err = ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if _, err := ts.taskRepo.Create(ctx, tx, tasks); err != nil {
      return fmt.Errorf("Failed to create tasks: %w", err)
    }
    if _, err := ts.userTaskRepo.Create(ctx, tx, userTasks); err != nil {
      return fmt.Errorf("Failed to assign tasks: %w", err)
    }
    return nil
  })
  if err != nil {
    ts.log.Warn("Failed to persist generated tasks", "error", err, "user_id", userID)
    return nil, err
  }

  ts.log.Info("Generated tasks for user", "user_id", userID, "count", len(tasks))
  return tasks, nil
}

func (ts *taskService) ListTasks(ctx context.Context, status string, difficulty string) ([]*types.UserTask, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  status = normalization.ParseEnumString(status)
  difficulty = normalization.ParseEnumString(difficulty)
  return ts.userTaskRepo.ListByUser(ctx, nil, userID, status, difficulty)
}

func (ts *taskService) GetScore(ctx context.Context) (*types.UserScore, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }
  return ts.userScoreRepo.GetOrCreate(ctx, nil, userID)
}

// UpdateTaskStatus applies one lifecycle action to the user's assignment of
// the given task.
//
//	NOT_STARTED             --start-->    IN_PROGRESS
//	NOT_STARTED|IN_PROGRESS --complete--> COMPLETED (terminal, awards marks)
//	NOT_STARTED|IN_PROGRESS --pass-->     PASSED (terminal)
//
// Every other (status, action) pair is rejected with InvalidTransition and
// leaves the row untouched.
func (ts *taskService) UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, action string) (*types.UserTask, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }

  action = strings.ToLower(strings.TrimSpace(action))
  switch action {
  case types.ActionStart, types.ActionComplete, types.ActionPass:
  default:
    return nil, apperr.Validationf("action must be one of start, complete, pass")
  }

  var updated *types.UserTask
  err = ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    userTask, err := ts.userTaskRepo.GetByUserAndTaskID(ctx, tx, userID, taskID)
    if err != nil {
      return fmt.Errorf("Failed to load user task: %w", err)
    }
    if userTask == nil {
      return apperr.ErrNotFound
    }

    now := time.Now()
    var fromStatuses []string
    switch action {
    case types.ActionStart:
      if userTask.Status != types.StatusNotStarted {
        return &apperr.InvalidTransitionError{Status: userTask.Status, Action: action}
      }
      fromStatuses = []string{types.StatusNotStarted}
      userTask.Status = types.StatusInProgress
      userTask.StartedAt = &now

    case types.ActionComplete:
      if types.TerminalStatus(userTask.Status) {
        return &apperr.InvalidTransitionError{Status: userTask.Status, Action: action}
      }
      if userTask.Task == nil {
        return fmt.Errorf("assignment %s has no task loaded", userTask.ID)
      }
      fromStatuses = []string{types.StatusNotStarted, types.StatusInProgress}
      earned := userTask.Task.Marks
      userTask.Status = types.StatusCompleted
      userTask.CompletedAt = &now
      userTask.EarnedMarks = &earned

    case types.ActionPass:
      if types.TerminalStatus(userTask.Status) {
        return &apperr.InvalidTransitionError{Status: userTask.Status, Action: action}
      }
      fromStatuses = []string{types.StatusNotStarted, types.StatusInProgress}
      userTask.Status = types.StatusPassed
    }

    // The write re-checks the status against committed state, so a concurrent
    // transition that won the row makes this one a no-op instead of a second
    // completion.
    applied, err := ts.userTaskRepo.ApplyTransition(ctx, tx, userTask, fromStatuses)
    if err != nil {
      return fmt.Errorf("Failed to save user task: %w", err)
    }
    if !applied {
      current, cErr := ts.userTaskRepo.GetByUserAndTaskID(ctx, tx, userID, taskID)
      if cErr != nil {
        return fmt.Errorf("Failed to reload user task: %w", cErr)
      }
      if current == nil {
        return apperr.ErrNotFound
      }
      return &apperr.InvalidTransitionError{Status: current.Status, Action: action}
    }

    // Score update rides the same transaction as the transition so a failed
    // increment rolls the completion back with it.
    if userTask.Status == types.StatusCompleted {
      if err := ts.userScoreRepo.Increment(ctx, tx, userID, *userTask.EarnedMarks); err != nil {
        return fmt.Errorf("Failed to update user score: %w", err)
      }
    }

    updated = userTask
    return nil
  })
  if err != nil {
    return nil, err
  }

  ts.log.Info("Task status updated", "user_id", userID, "task_id", taskID, "action", action, "status", updated.Status)
  return updated, nil
}

func (ts *taskService) RateTask(ctx context.Context, taskID uuid.UUID, rating int) (*types.UserTask, error) {
  userID, err := currentUserID(ctx)
  if err != nil {
    return nil, err
  }

  userTask, err := ts.userTaskRepo.GetByUserAndTaskID(ctx, nil, userID, taskID)
  if err != nil {
    return nil, fmt.Errorf("Failed to load user task: %w", err)
  }
  if userTask == nil {
    return nil, apperr.ErrNotFound
  }
  if userTask.Status != types.StatusCompleted {
    return nil, apperr.Validationf("only completed tasks can be rated")
  }
  if rating < 1 || rating > 5 {
    return nil, apperr.Validationf("rating must be between 1 and 5")
  }

  userTask.Rating = &rating
  if err := ts.userTaskRepo.Save(ctx, nil, userTask); err != nil {
    return nil, fmt.Errorf("Failed to save rating: %w", err)
  }
  return userTask, nil
}
