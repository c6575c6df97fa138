package services

import (
  "context"
  "encoding/json"
  "fmt"
  "github.com/google/uuid"
  "github.com/yungbote/rewire-backend/internal/logger"
  "github.com/yungbote/rewire-backend/internal/repos"
  "github.com/yungbote/rewire-backend/internal/types"
)

// CandidateTask is one generated recommendation before it becomes a catalog
// entry.
type CandidateTask struct {
  Title       string `json:"title"`
  Description string `json:"description"`
  Difficulty  string `json:"difficulty"`
  Marks       int    `json:"marks"`
}

// RecommendationService produces candidate recovery tasks for a user. It
// never fails: any problem with the external generator (network, HTTP error,
// malformed or off-schema payload) degrades to the static fallback set.
type RecommendationService interface {
  Generate(ctx context.Context, userID uuid.UUID, difficulty string, count int) []CandidateTask
}

type recommendationService struct {
  log          *logger.Logger
  aiProfileRepo repos.AIProfileRepo
  openaiClient OpenAIClient
}

func NewRecommendationService(log *logger.Logger, aiProfileRepo repos.AIProfileRepo, openaiClient OpenAIClient) RecommendationService {
  serviceLog := log.With("service", "RecommendationService")
  return &recommendationService{
    log:          serviceLog,
    aiProfileRepo: aiProfileRepo,
    openaiClient: openaiClient,
  }
}

const recommendationSystemPrompt = "You are a recovery coach who generates helpful tasks for people overcoming behavioral addictions."

func taskListSchema(count int) map[string]any {
  return map[string]any{
    "type": "object",
    "properties": map[string]any{
      "tasks": map[string]any{
        "type":     "array",
        "minItems": count,
        "maxItems": count,
        "items": map[string]any{
          "type": "object",
          "properties": map[string]any{
            "title":       map[string]any{"type": "string"},
            "description": map[string]any{"type": "string"},
            "difficulty":  map[string]any{"type": "string", "enum": []string{types.DifficultyEasy, types.DifficultyMedium, types.DifficultyHard}},
            "marks":       map[string]any{"type": "integer"},
          },
          "required":             []string{"title", "description", "difficulty", "marks"},
          "additionalProperties": false,
        },
      },
    },
    "required":             []string{"tasks"},
    "additionalProperties": false,
  }
}

func (rs *recommendationService) Generate(ctx context.Context, userID uuid.UUID, difficulty string, count int) []CandidateTask {
  userContext := "The user is working on overcoming a behavioral addiction."
  profile, err := rs.aiProfileRepo.GetByUserID(ctx, nil, userID)
  if err != nil {
    rs.log.Warn("Failed to load AI profile, using generic context", "error", err)
  }
  if profile != nil {
    userContext = fmt.Sprintf("The user has been dealing with %s addiction for %d months.", profile.AddictionType, profile.AddictionDurationMonths)
  }

  difficultyContext := ""
  if difficulty != "" {
    difficultyContext = fmt.Sprintf(" The difficulty level should be %s.", difficulty)
  }

  prompt := fmt.Sprintf(`%s

Please generate %d task recommendations that would help the user in their recovery journey.%s

For each task, provide:
1. A clear title (maximum 100 characters)
2. A detailed description explaining the task and its benefits
3. Difficulty level (EASY, MEDIUM, or HARD)
4. Appropriate marks/points (1-5 for EASY, 5-10 for MEDIUM, 10-15 for HARD)`, userContext, count, difficultyContext)

  obj, err := rs.openaiClient.GenerateJSON(ctx, recommendationSystemPrompt, prompt, "task_recommendations", taskListSchema(count))
  if err != nil {
    rs.log.Warn("Recommendation generation failed, using fallback tasks", "error", err)
    return fallbackTasks(difficulty)
  }

  candidates, err := parseCandidates(obj)
  if err != nil {
    rs.log.Warn("Recommendation payload malformed, using fallback tasks", "error", err)
    return fallbackTasks(difficulty)
  }
  return candidates
}

func parseCandidates(obj map[string]any) ([]CandidateTask, error) {
  raw, err := json.Marshal(obj)
  if err != nil {
    return nil, err
  }
  var parsed struct {
    Tasks []CandidateTask `json:"tasks"`
  }
  if err := json.Unmarshal(raw, &parsed); err != nil {
    return nil, err
  }
  if len(parsed.Tasks) == 0 {
    return nil, fmt.Errorf("no tasks in generator payload")
  }
  for i, candidate := range parsed.Tasks {
    if candidate.Title == "" || candidate.Description == "" {
      return nil, fmt.Errorf("task %d missing title or description", i)
    }
    if len(candidate.Title) > 100 {
      return nil, fmt.Errorf("task %d title exceeds 100 characters", i)
    }
    if !types.ValidDifficulty(candidate.Difficulty) {
      return nil, fmt.Errorf("task %d has unknown difficulty %q", i, candidate.Difficulty)
    }
    if candidate.Marks < 1 {
      return nil, fmt.Errorf("task %d has non-positive marks", i)
    }
  }
  return parsed.Tasks, nil
}

// fallbackTasks is the static recovery set used when the generator is
// unreachable: one predefined task per difficulty, filtered when a
// difficulty was requested.
func fallbackTasks(difficulty string) []CandidateTask {
  all := []CandidateTask{
    {
      Title:       "Practice Mindfulness for 10 Minutes",
      Description: "Set aside 10 minutes to practice mindfulness meditation. Focus on your breath and observe your thoughts without judgment.",
      Difficulty:  types.DifficultyEasy,
      Marks:       3,
    },
    {
      Title:       "Digital Detox for 2 Hours",
      Description: "Take a break from all digital devices for 2 consecutive hours. Use this time to connect with your surroundings or engage in an offline activity.",
      Difficulty:  types.DifficultyMedium,
      Marks:       7,
    },
    {
      Title:       "Complete a Week-long Habit Tracking Journal",
      Description: "Create and maintain a detailed journal tracking your habits, triggers, and responses for an entire week. Identify patterns and plan improvements.",
      Difficulty:  types.DifficultyHard,
      Marks:       12,
    },
  }
  if difficulty == "" {
    return all
  }
  filtered := make([]CandidateTask, 0, len(all))
  for _, task := range all {
    if task.Difficulty == difficulty {
      filtered = append(filtered, task)
    }
  }
  return filtered
}
