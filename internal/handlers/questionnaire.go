package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/rewire-backend/internal/services"
)

type QuestionnaireHandler struct {
  questionnaireService services.QuestionnaireService
}

func NewQuestionnaireHandler(questionnaireService services.QuestionnaireService) *QuestionnaireHandler {
  return &QuestionnaireHandler{questionnaireService: questionnaireService}
}

func (qh *QuestionnaireHandler) ListQuestions(c *gin.Context) {
  questions, err := qh.questionnaireService.ListQuestions(c.Request.Context())
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, questions)
}
