package services

import (
  "context"
  "strings"
  "github.com/yungbote/rewire-backend/internal/logger"
)

// ChatTurn is one prior exchange supplied by the client; the transport that
// holds the live conversation is outside this backend.
type ChatTurn struct {
  Role    string `json:"role"`
  Content string `json:"content"`
}

// RebotService generates therapist replies. Like the recommendation
// generator it treats the AI as an unreliable collaborator: any failure
// produces the canned apology rather than an error.
type RebotService interface {
  Reply(ctx context.Context, history []ChatTurn, message string) string
}

type rebotService struct {
  log          *logger.Logger
  openaiClient OpenAIClient
}

func NewRebotService(log *logger.Logger, openaiClient OpenAIClient) RebotService {
  serviceLog := log.With("service", "RebotService")
  return &rebotService{log: serviceLog, openaiClient: openaiClient}
}

const therapistPrompt = `You are a helpful mental health therapist.
Your role involves conversing with users who have behavioral addictions, such as social media addiction.
Your responsibility is to engage in meaningful and caring conversations with users and provide helpful replies.
Please use scientific techniques, such as Cognitive Behavioral Therapy, when conversing with the user.
You always answer in a short direct manner.`

const fallbackReply = "I'm sorry, I encountered an error. Please try again."

var replySchema = map[string]any{
  "type": "object",
  "properties": map[string]any{
    "reply": map[string]any{"type": "string"},
  },
  "required":             []string{"reply"},
  "additionalProperties": false,
}

func (rb *rebotService) Reply(ctx context.Context, history []ChatTurn, message string) string {
  var conversation strings.Builder
  for _, turn := range history {
    conversation.WriteString(turn.Role)
    conversation.WriteString(": ")
    conversation.WriteString(turn.Content)
    conversation.WriteString("\n")
  }
  conversation.WriteString("user: ")
  conversation.WriteString(message)

  obj, err := rb.openaiClient.GenerateJSON(ctx, therapistPrompt, conversation.String(), "mental_health_therapist", replySchema)
  if err != nil {
    rb.log.Warn("Rebot reply generation failed", "error", err)
    return fallbackReply
  }
  reply, ok := obj["reply"].(string)
  if !ok || reply == "" {
    rb.log.Warn("Rebot reply missing from payload")
    return fallbackReply
  }
  return reply
}
