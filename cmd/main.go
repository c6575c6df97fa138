package main

import (
  "context"
  "fmt"
  "os"
  "time"
  "github.com/joho/godotenv"
  "github.com/yungbote/rewire-backend/internal/db"
  "github.com/yungbote/rewire-backend/internal/handlers"
  "github.com/yungbote/rewire-backend/internal/logger"
  "github.com/yungbote/rewire-backend/internal/middleware"
  "github.com/yungbote/rewire-backend/internal/repos"
  "github.com/yungbote/rewire-backend/internal/server"
  "github.com/yungbote/rewire-backend/internal/services"
  "github.com/yungbote/rewire-backend/internal/utils"
)

func main() {
  _ = godotenv.Load()

  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
  accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
  refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Error("Postgres auto migration failed", "error", err)
    os.Exit(1)
  }
  thePG := postgresService.DB()

  // Redis
  redisClient, err := db.NewRedisClient(log)
  if err != nil {
    log.Error("Redis init failed", "error", err)
    os.Exit(1)
  }

  // Repos
  log.Info("Setting up Repos from main...")
  userRepo := repos.NewUserRepo(thePG, log)
  userTokenRepo := repos.NewUserTokenRepo(thePG, log)
  aiProfileRepo := repos.NewAIProfileRepo(thePG, log)
  questionnaireRepo := repos.NewQuestionnaireRepo(thePG, log)
  taskRepo := repos.NewTaskRepo(thePG, log)
  userTaskRepo := repos.NewUserTaskRepo(thePG, log)
  userScoreRepo := repos.NewUserScoreRepo(thePG, log)

  // Services
  log.Info("Setting up Services from main...")
  openaiClient, err := services.NewOpenAIClient(log)
  if err != nil {
    log.Error("Could not init OpenAIClient", "error", err)
    os.Exit(1)
  }
  authService := services.NewAuthService(thePG, log, userRepo, userTokenRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
  signupService := services.NewSignupService(log, redisClient, userRepo, authService)
  userService := services.NewUserService(thePG, log, userRepo)
  profileService := services.NewProfileService(thePG, log, aiProfileRepo)
  questionnaireService := services.NewQuestionnaireService(thePG, log, questionnaireRepo)
  if err := questionnaireService.SeedDefaultQuestions(context.Background()); err != nil {
    log.Warn("Questionnaire seeding failed", "error", err)
  }
  recService := services.NewRecommendationService(log, aiProfileRepo, openaiClient)
  taskService := services.NewTaskService(thePG, log, taskRepo, userTaskRepo, userScoreRepo, recService)
  analyticsService := services.NewAnalyticsService(thePG, log, userTaskRepo, userScoreRepo)
  rebotService := services.NewRebotService(log, openaiClient)

  // Handlers
  log.Info("Setting up handlers from main...")
  authHandler := handlers.NewAuthHandler(authService)
  signupHandler := handlers.NewSignupHandler(signupService)
  userHandler := handlers.NewUserHandler(userService)
  taskHandler := handlers.NewTaskHandler(taskService, analyticsService)
  rebotHandler := handlers.NewRebotHandler(rebotService)
  profileHandler := handlers.NewProfileHandler(profileService)
  questionnaireHandler := handlers.NewQuestionnaireHandler(questionnaireService)

  // Middleware
  log.Info("Setting up middleware from main...")
  authMiddleware := middleware.NewAuthMiddleware(log, authService)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    AuthHandler:          authHandler,
    AuthMiddleware:       authMiddleware,
    SignupHandler:        signupHandler,
    UserHandler:          userHandler,
    TaskHandler:          taskHandler,
    RebotHandler:         rebotHandler,
    ProfileHandler:       profileHandler,
    QuestionnaireHandler: questionnaireHandler,
  })

  port := utils.GetEnv("PORT", "8080", log)
  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Error("Server failed", "error", err)
  }
}
