package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/rewire-backend/internal/services"
)

type SignupHandler struct {
  signupService services.SignupService
}

func NewSignupHandler(signupService services.SignupService) *SignupHandler {
  return &SignupHandler{signupService: signupService}
}

func (sh *SignupHandler) StepOne(c *gin.Context) {
  var req struct {
    FirstName string `json:"first_name"`
    LastName  string `json:"last_name"`
    UserName  string `json:"user_name"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  tempUserID, err := sh.signupService.StepOne(c.Request.Context(), req.FirstName, req.LastName, req.UserName)
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "message":      "Step one completed successfully",
    "temp_user_id": tempUserID,
  })
}

func (sh *SignupHandler) StepTwo(c *gin.Context) {
  var req struct {
    TempUserID      string `json:"temp_user_id"`
    Email           string `json:"email"`
    Password        string `json:"password"`
    ConfirmPassword string `json:"confirm_password"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  if err := sh.signupService.StepTwo(c.Request.Context(), req.TempUserID, req.Email, req.Password, req.ConfirmPassword); err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"message": "Signup completed successfully"})
}
