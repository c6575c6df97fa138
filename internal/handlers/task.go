package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/yungbote/rewire-backend/internal/services"
)

type TaskHandler struct {
  taskService      services.TaskService
  analyticsService services.AnalyticsService
}

func NewTaskHandler(taskService services.TaskService, analyticsService services.AnalyticsService) *TaskHandler {
  return &TaskHandler{taskService: taskService, analyticsService: analyticsService}
}

// GET /api/tasks?status=&difficulty=
func (th *TaskHandler) GetUserTasks(c *gin.Context) {
  userTasks, err := th.taskService.ListTasks(c.Request.Context(), c.Query("status"), c.Query("difficulty"))
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, userTasks)
}

// GET /api/score
func (th *TaskHandler) GetUserScore(c *gin.Context) {
  score, err := th.taskService.GetScore(c.Request.Context())
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "total_marks":     score.TotalMarks,
    "tasks_completed": score.TasksCompleted,
    "last_updated":    score.LastUpdated,
  })
}

// POST /api/generate
func (th *TaskHandler) GenerateRecommendations(c *gin.Context) {
  var req struct {
    Difficulty string `json:"difficulty"`
    Count      *int   `json:"count"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  count := 3
  if req.Count != nil {
    count = *req.Count
  }
  tasks, err := th.taskService.GenerateTasks(c.Request.Context(), req.Difficulty, count)
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, tasks)
}

// POST /api/tasks/:id/update
func (th *TaskHandler) UpdateTaskStatus(c *gin.Context) {
  taskID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
    return
  }
  var req struct {
    Action string `json:"action"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  userTask, err := th.taskService.UpdateTaskStatus(c.Request.Context(), taskID, req.Action)
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, userTask)
}

// POST /api/tasks/:id/rate
func (th *TaskHandler) RateTask(c *gin.Context) {
  taskID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
    return
  }
  var req struct {
    Rating int `json:"rating"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  userTask, err := th.taskService.RateTask(c.Request.Context(), taskID, req.Rating)
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, userTask)
}

// GET /api/analytics
func (th *TaskHandler) GetTaskAnalytics(c *gin.Context) {
  analytics, err := th.analyticsService.GetTaskAnalytics(c.Request.Context())
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, analytics)
}
