package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/psenarath/floodline/internal/decode"
	"github.com/psenarath/floodline/internal/input"
)

func TestScorer_Run(t *testing.T) {
	reasoning := &fakeClient{responses: []string{
		"The family includes a 3 year old and a 71 year old, and rescue is needed. 5 + 2 + 3 = 10.",
	}}
	general := &fakeClient{responses: []string{"10"}}

	s := NewScorer(reasoning, general, noRetry, nil)
	records, sum, err := s.Run(context.Background(), []input.Incident{
		{ID: "INC-001", Area: "Gampaha", Ages: "3, 71", MainNeed: "Rescue"},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if sum.Succeeded != 1 || sum.Defaulted != 0 {
		t.Errorf("summary = %+v", sum)
	}
	if len(records) != 1 || records[0].Score != 10 || records[0].Defaulted {
		t.Errorf("records = %+v", records)
	}
	if records[0].IncidentID != "INC-001" || records[0].Area != "Gampaha" {
		t.Errorf("identity fields lost: %+v", records[0])
	}
}

func TestScorer_NoDigitsDefaults(t *testing.T) {
	reasoning := &fakeClient{responses: []string{"the situation is severe but hard to quantify"}}
	general := &fakeClient{responses: []string{"the score would be high"}}

	s := NewScorer(reasoning, general, noRetry, nil)
	records, sum, err := s.Run(context.Background(), []input.Incident{
		{ID: "INC-002", Area: "Colombo"},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("a record must be emitted even without digits: %+v", records)
	}
	if records[0].Score != decode.DefaultScore || !records[0].Defaulted {
		t.Errorf("record = %+v, want default %d", records[0], decode.DefaultScore)
	}
	if sum.Defaulted != 1 || sum.Succeeded != 1 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestScorer_ReasoningExhaustionDefaults(t *testing.T) {
	reasoning := &fakeClient{
		responses: []string{""},
		errs:      []error{errors.New("transport down")},
	}
	general := &fakeClient{}

	s := NewScorer(reasoning, general, noRetry, nil)
	records, _, err := s.Run(context.Background(), []input.Incident{
		{ID: "INC-003", Area: "Kandy"},
	})
	if err != nil {
		t.Fatalf("exhaustion is a per-item outcome: %v", err)
	}

	if general.calls != 0 {
		t.Errorf("extraction should be skipped when reasoning produced nothing")
	}
	if len(records) != 1 || !records[0].Defaulted {
		t.Errorf("records = %+v, want a defaulted record", records)
	}
}

func TestScorer_OrderPreserved(t *testing.T) {
	reasoning := &fakeClient{responses: []string{"score 7", "score 12"}}
	general := &fakeClient{responses: []string{"7", "12"}}

	s := NewScorer(reasoning, general, noRetry, nil)
	records, _, err := s.Run(context.Background(), []input.Incident{
		{ID: "A", Area: "Galle"},
		{ID: "B", Area: "Matara"},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if records[0].IncidentID != "A" || records[1].IncidentID != "B" {
		t.Errorf("input order disturbed: %+v", records)
	}
	if records[0].Score != 7 || records[1].Score != 12 {
		t.Errorf("scores = %+v", records)
	}
}
