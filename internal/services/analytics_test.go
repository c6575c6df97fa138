package services

import (
	"testing"

	"github.com/yungbote/rewire-backend/internal/types"
)

func TestGetTaskAnalyticsEmpty(t *testing.T) {
	fixture := newTaskFixture(t, nil)
	_, ctx := seedUser(t, fixture.gdb)

	analytics, err := fixture.analytics.GetTaskAnalytics(ctx)
	if err != nil {
		t.Fatalf("GetTaskAnalytics: %v", err)
	}
	if analytics.TotalTasks != 0 || analytics.TotalScore != 0 {
		t.Fatalf("empty analytics: %+v", analytics)
	}
	if analytics.CompletionRate != 0 {
		t.Fatalf("completion rate with zero tasks: want=0 got=%v", analytics.CompletionRate)
	}
}

func TestGetTaskAnalyticsCounts(t *testing.T) {
	fixture := newTaskFixture(t, nil)
	userID, ctx := seedUser(t, fixture.gdb)

	// 4 assignments: 2 completed (EASY 3, MEDIUM 7), 1 in progress (MEDIUM),
	// 1 untouched (HARD)
	firstID := fixture.seedAssignment(t, userID, types.DifficultyEasy, 3)
	secondID := fixture.seedAssignment(t, userID, types.DifficultyMedium, 7)
	thirdID := fixture.seedAssignment(t, userID, types.DifficultyMedium, 6)
	fixture.seedAssignment(t, userID, types.DifficultyHard, 12)

	if _, err := fixture.taskService.UpdateTaskStatus(ctx, firstID, types.ActionComplete); err != nil {
		t.Fatalf("complete first: %v", err)
	}
	if _, err := fixture.taskService.UpdateTaskStatus(ctx, secondID, types.ActionComplete); err != nil {
		t.Fatalf("complete second: %v", err)
	}
	if _, err := fixture.taskService.UpdateTaskStatus(ctx, thirdID, types.ActionStart); err != nil {
		t.Fatalf("start third: %v", err)
	}

	analytics, err := fixture.analytics.GetTaskAnalytics(ctx)
	if err != nil {
		t.Fatalf("GetTaskAnalytics: %v", err)
	}

	if analytics.TotalTasks != 4 {
		t.Fatalf("total_tasks: want=4 got=%d", analytics.TotalTasks)
	}
	if analytics.TasksCompleted != 2 {
		t.Fatalf("tasks_completed: want=2 got=%d", analytics.TasksCompleted)
	}
	if analytics.TotalScore != 10 {
		t.Fatalf("total_score: want=10 got=%d", analytics.TotalScore)
	}
	if analytics.CompletionRate != 50.0 {
		t.Fatalf("completion_rate: want=50.0 got=%v", analytics.CompletionRate)
	}

	wantStatus := TaskStatusCounts{Completed: 2, InProgress: 1, NotStarted: 1, Passed: 0}
	if analytics.TaskStatus != wantStatus {
		t.Fatalf("task_status: want=%+v got=%+v", wantStatus, analytics.TaskStatus)
	}

	wantDifficulty := DifficultyCounts{Easy: 1, Medium: 2, Hard: 1}
	if analytics.DifficultyDistribution != wantDifficulty {
		t.Fatalf("difficulty_distribution: want=%+v got=%+v", wantDifficulty, analytics.DifficultyDistribution)
	}

	easy := analytics.CompletionByDifficulty.Easy
	if easy.Completed != 1 || easy.Total != 1 || easy.Rate != 100.0 {
		t.Fatalf("easy bucket: %+v", easy)
	}
	medium := analytics.CompletionByDifficulty.Medium
	if medium.Completed != 1 || medium.Total != 2 || medium.Rate != 50.0 {
		t.Fatalf("medium bucket: %+v", medium)
	}
	hard := analytics.CompletionByDifficulty.Hard
	if hard.Completed != 0 || hard.Total != 1 || hard.Rate != 0 {
		t.Fatalf("hard bucket: %+v", hard)
	}
}
