package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/yungbote/rewire-backend/internal/repos"
	"github.com/yungbote/rewire-backend/internal/types"
)

func TestSeedDefaultQuestionsOnce(t *testing.T) {
	gdb := newTestDB(t)
	if err := gdb.AutoMigrate(&types.QuestionnaireQuestion{}); err != nil {
		t.Fatalf("auto migrate questionnaire: %v", err)
	}
	log := newTestLogger(t)
	questionnaireService := NewQuestionnaireService(gdb, log, repos.NewQuestionnaireRepo(gdb, log))

	if err := questionnaireService.SeedDefaultQuestions(context.Background()); err != nil {
		t.Fatalf("SeedDefaultQuestions: %v", err)
	}
	questions, err := questionnaireService.ListQuestions(context.Background())
	if err != nil {
		t.Fatalf("ListQuestions: %v", err)
	}
	if len(questions) == 0 {
		t.Fatalf("no questions seeded")
	}
	seeded := len(questions)

	for _, question := range questions {
		if question.AnswerFormat != types.AnswerFormatSingle && question.AnswerFormat != types.AnswerFormatMultiple {
			t.Fatalf("question %q has unknown answer format %q", question.Title, question.AnswerFormat)
		}
		var answers []string
		if err := json.Unmarshal(question.AvailableAnswers, &answers); err != nil {
			t.Fatalf("question %q answers not a string list: %v", question.Title, err)
		}
		if len(answers) == 0 {
			t.Fatalf("question %q has no answers", question.Title)
		}
	}

	// a second run must not duplicate the set
	if err := questionnaireService.SeedDefaultQuestions(context.Background()); err != nil {
		t.Fatalf("second SeedDefaultQuestions: %v", err)
	}
	questions, err = questionnaireService.ListQuestions(context.Background())
	if err != nil {
		t.Fatalf("ListQuestions: %v", err)
	}
	if len(questions) != seeded {
		t.Fatalf("questions duplicated: want=%d got=%d", seeded, len(questions))
	}
}
