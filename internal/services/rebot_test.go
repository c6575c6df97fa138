package services

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestReplyReturnsGeneratedText(t *testing.T) {
	log := newTestLogger(t)
	client := &fakeOpenAIClient{payload: map[string]any{"reply": "That sounds difficult. What triggered the urge today?"}}
	rebot := NewRebotService(log, client)

	reply := rebot.Reply(context.Background(), nil, "I relapsed yesterday.")
	if reply != "That sounds difficult. What triggered the urge today?" {
		t.Fatalf("unexpected reply: %q", reply)
	}
}

func TestReplyIncludesHistoryInPrompt(t *testing.T) {
	log := newTestLogger(t)
	client := &fakeOpenAIClient{payload: map[string]any{"reply": "ok"}}
	rebot := NewRebotService(log, client)

	history := []ChatTurn{
		{Role: "user", Content: "I keep checking my phone at night."},
		{Role: "assistant", Content: "What usually happens right before?"},
	}
	rebot.Reply(context.Background(), history, "I feel anxious.")

	for _, want := range []string{
		"user: I keep checking my phone at night.",
		"assistant: What usually happens right before?",
		"user: I feel anxious.",
	} {
		if !strings.Contains(client.lastUser, want) {
			t.Fatalf("conversation missing %q:\n%s", want, client.lastUser)
		}
	}
}

func TestReplyFallsBackOnError(t *testing.T) {
	log := newTestLogger(t)
	client := &fakeOpenAIClient{err: errors.New("timeout")}
	rebot := NewRebotService(log, client)

	reply := rebot.Reply(context.Background(), nil, "hello")
	if reply != "I'm sorry, I encountered an error. Please try again." {
		t.Fatalf("unexpected fallback: %q", reply)
	}
}

func TestReplyFallsBackOnMissingReply(t *testing.T) {
	log := newTestLogger(t)
	cases := []struct {
		name    string
		payload map[string]any
	}{
		{name: "empty_payload", payload: map[string]any{}},
		{name: "empty_reply", payload: map[string]any{"reply": ""}},
		{name: "wrong_type", payload: map[string]any{"reply": 42}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &fakeOpenAIClient{payload: tc.payload}
			rebot := NewRebotService(log, client)
			if got := rebot.Reply(context.Background(), nil, "hi"); got != fallbackReply {
				t.Fatalf("want fallback, got %q", got)
			}
		})
	}
}
