package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/rewire-backend/internal/services"
)

type ProfileHandler struct {
  profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
  return &ProfileHandler{profileService: profileService}
}

func (ph *ProfileHandler) GetProfile(c *gin.Context) {
  profile, err := ph.profileService.GetProfile(c.Request.Context())
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, profile)
}

func (ph *ProfileHandler) CreateProfile(c *gin.Context) {
  var req struct {
    AddictionType           string `json:"addiction_type"`
    AddictionDurationMonths int    `json:"addiction_duration_months"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  profile, err := ph.profileService.CreateProfile(c.Request.Context(), req.AddictionType, req.AddictionDurationMonths)
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, profile)
}
