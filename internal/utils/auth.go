package utils

import (
  "context"
  "golang.org/x/crypto/bcrypt"
  "github.com/yungbote/rewire-backend/internal/apperr"
  "github.com/yungbote/rewire-backend/internal/logger"
  "github.com/yungbote/rewire-backend/internal/normalization"
  "github.com/yungbote/rewire-backend/internal/repos"
  "github.com/yungbote/rewire-backend/internal/types"
)

func ValidateRegistration(ctx context.Context, userRepo repos.UserRepo, log *logger.Logger, user *types.User) error {
  if user == nil {
    return apperr.Validationf("no user given, cannot proceed with registration")
  }
  if user.Email == "" {
    return apperr.Validationf("an email is required to register")
  }
  emailExists, err := userRepo.EmailExists(ctx, nil, user.Email)
  if err != nil {
    log.Warn("Failed to check user email", "error", err)
    return err
  }
  if emailExists {
    return apperr.Validationf("email is already in use")
  }
  if user.UserName != "" {
    nameExists, err := userRepo.UserNameExists(ctx, nil, user.UserName)
    if err != nil {
      log.Warn("Failed to check user name", "error", err)
      return err
    }
    if nameExists {
      return apperr.Validationf("username already exists")
    }
  }
  if user.Password == "" {
    return apperr.Validationf("a password is required to register")
  }
  if user.FirstName == "" {
    return apperr.Validationf("a first name is required to register")
  }
  if user.LastName == "" {
    return apperr.Validationf("a last name is required to register")
  }
  return nil
}

func ValidateLogin(email, password string) error {
  if email == "" {
    return apperr.Validationf("email is required to login")
  }
  if password == "" {
    return apperr.Validationf("password is required to login")
  }
  return nil
}

func HashPassword(user *types.User) error {
  hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
  if err != nil {
    return err
  }
  user.Password = string(hashedPassword)
  return nil
}

func NormalizeUserFields(user *types.User) {
  user.Email = normalization.ParseInputString(user.Email)
  user.UserName = normalization.ParseInputString(user.UserName)
}
