package services

import (
  "context"
  "encoding/json"
  "fmt"
  "time"
  goredis "github.com/redis/go-redis/v9"
  "github.com/google/uuid"
  "github.com/yungbote/rewire-backend/internal/apperr"
  "github.com/yungbote/rewire-backend/internal/logger"
  "github.com/yungbote/rewire-backend/internal/normalization"
  "github.com/yungbote/rewire-backend/internal/repos"
  "github.com/yungbote/rewire-backend/internal/types"
)

// signupDataTTL bounds how long step-one data waits for step two.
const signupDataTTL = time.Hour

// SignupService stages the two-step signup flow. Step one parks the name
// fields in redis under a temporary id; step two retrieves them, validates
// the credentials and creates the account.
type SignupService interface {
  StepOne(ctx context.Context, firstName, lastName, userName string) (string, error)
  StepTwo(ctx context.Context, tempUserID, email, password, confirmPassword string) error
}

type signupService struct {
  log         *logger.Logger
  rdb         *goredis.Client
  userRepo    repos.UserRepo
  authService AuthService
}

func NewSignupService(log *logger.Logger, rdb *goredis.Client, userRepo repos.UserRepo, authService AuthService) SignupService {
  serviceLog := log.With("service", "SignupService")
  return &signupService{
    log:         serviceLog,
    rdb:         rdb,
    userRepo:    userRepo,
    authService: authService,
  }
}

type signupData struct {
  FirstName string `json:"first_name"`
  LastName  string `json:"last_name"`
  UserName  string `json:"user_name"`
}

func signupCacheKey(tempUserID string) string {
  return "signup_data_" + tempUserID
}

func (ss *signupService) StepOne(ctx context.Context, firstName, lastName, userName string) (string, error) {
  userName = normalization.ParseInputString(userName)
  if firstName == "" || lastName == "" || userName == "" {
    return "", apperr.Validationf("first name, last name and username are required")
  }

  nameExists, err := ss.userRepo.UserNameExists(ctx, nil, userName)
  if err != nil {
    return "", fmt.Errorf("Failed to check user name: %w", err)
  }
  if nameExists {
    return "", apperr.Validationf("username already exists")
  }

  tempUserID := uuid.New().String()
  raw, err := json.Marshal(signupData{
    FirstName: firstName,
    LastName:  lastName,
    UserName:  userName,
  })
  if err != nil {
    return "", err
  }
  if err := ss.rdb.Set(ctx, signupCacheKey(tempUserID), raw, signupDataTTL).Err(); err != nil {
    ss.log.Warn("Failed to stash signup data", "error", err)
    return "", fmt.Errorf("Failed to stash signup data: %w", err)
  }
  return tempUserID, nil
}

func (ss *signupService) StepTwo(ctx context.Context, tempUserID, email, password, confirmPassword string) error {
  if password != confirmPassword {
    return apperr.Validationf("passwords do not match")
  }

  raw, err := ss.rdb.Get(ctx, signupCacheKey(tempUserID)).Bytes()
  if err == goredis.Nil {
    return apperr.Validationf("invalid or expired temporary user id")
  }
  if err != nil {
    return fmt.Errorf("Failed to read signup data: %w", err)
  }
  var data signupData
  if err := json.Unmarshal(raw, &data); err != nil {
    return fmt.Errorf("Failed to decode signup data: %w", err)
  }

  user := types.User{
    Email:     email,
    Password:  password,
    UserName:  data.UserName,
    FirstName: data.FirstName,
    LastName:  data.LastName,
  }
  if err := ss.authService.RegisterUser(ctx, &user); err != nil {
    return err
  }

  if delErr := ss.rdb.Del(ctx, signupCacheKey(tempUserID)).Err(); delErr != nil {
    ss.log.Warn("Failed to clear signup data after registration", "error", delErr)
  }
  return nil
}
