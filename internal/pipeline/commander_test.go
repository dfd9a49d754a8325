package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/psenarath/floodline/internal/model"
)

func TestCommander_Plan(t *testing.T) {
	client := &fakeClient{responses: []string{
		"Best route: INC-002 first (score 12), then INC-001.",
	}}

	c := NewCommander(client, noRetry, nil)
	plan, err := c.Plan(context.Background(), []model.ScoreRecord{
		{IncidentID: "INC-001", Area: "Gampaha", Score: 7},
		{IncidentID: "INC-002", Area: "Kaduwela", Score: 12},
	})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if !strings.Contains(plan, "Best route") {
		t.Errorf("plan = %q", plan)
	}
}

func TestCommander_NoRecords(t *testing.T) {
	c := NewCommander(&fakeClient{}, noRetry, nil)
	if _, err := c.Plan(context.Background(), nil); err == nil {
		t.Fatal("Plan should refuse an empty score table")
	}
}

func TestCommander_ExhaustionIsError(t *testing.T) {
	client := &fakeClient{responses: []string{""}}

	c := NewCommander(client, noRetry, nil)
	_, err := c.Plan(context.Background(), []model.ScoreRecord{
		{IncidentID: "INC-001", Area: "Galle", Score: 5},
	})
	if err == nil {
		t.Fatal("there is no safe default route; exhaustion must surface as an error")
	}
}
