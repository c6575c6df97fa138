package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/rewire-backend/internal/handlers"
  "github.com/yungbote/rewire-backend/internal/middleware"
)

type RouterConfig struct {
  AuthHandler          *handlers.AuthHandler
  AuthMiddleware       *middleware.AuthMiddleware
  SignupHandler        *handlers.SignupHandler
  UserHandler          *handlers.UserHandler
  TaskHandler          *handlers.TaskHandler
  RebotHandler         *handlers.RebotHandler
  ProfileHandler       *handlers.ProfileHandler
  QuestionnaireHandler *handlers.QuestionnaireHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:3000",
      "http://localhost:8081",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

  router.GET("/healthcheck", handlers.HealthCheck)

  api := router.Group("/api")
  {
    api.POST("/register", cfg.AuthHandler.Register)
    api.POST("/login", cfg.AuthHandler.Login)
    api.POST("/signup/step-one", cfg.SignupHandler.StepOne)
    api.POST("/signup/step-two", cfg.SignupHandler.StepTwo)
  }

  protected := router.Group("/api")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  {
    // Auth
    protected.POST("/refresh", cfg.AuthHandler.Refresh)
    protected.POST("/logout", cfg.AuthHandler.Logout)
    // User
    protected.GET("/user", cfg.UserHandler.GetMe)
    // Tasks and score
    protected.GET("/tasks", cfg.TaskHandler.GetUserTasks)
    protected.GET("/score", cfg.TaskHandler.GetUserScore)
    protected.GET("/analytics", cfg.TaskHandler.GetTaskAnalytics)
    protected.POST("/generate", cfg.TaskHandler.GenerateRecommendations)
    protected.POST("/tasks/:id/update", cfg.TaskHandler.UpdateTaskStatus)
    protected.POST("/tasks/:id/rate", cfg.TaskHandler.RateTask)
    // Rebot
    protected.POST("/rebot/reply", cfg.RebotHandler.Reply)
    // AI profile
    protected.GET("/profile", cfg.ProfileHandler.GetProfile)
    protected.POST("/profile", cfg.ProfileHandler.CreateProfile)
    // Questionnaire
    protected.GET("/questionnaire", cfg.QuestionnaireHandler.ListQuestions)
  }

  return router
}
