package prompt

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	text, spec, err := Render(FewShot, Params{
		"role":        "message classifier",
		"examples":    ClassificationExamples,
		"constraints": ClassificationConstraints,
		"format":      ClassificationFormat,
		"query":       "Review: water rising in Gampaha",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(text, "message classifier") {
		t.Error("role not interpolated")
	}
	if !strings.Contains(text, "Review: water rising in Gampaha") {
		t.Error("query not interpolated")
	}
	if spec.Temperature != 0.2 || spec.MaxTokens != 256 {
		t.Errorf("spec = %+v", spec)
	}
}

func TestRender_SpecsPerTemplate(t *testing.T) {
	tests := []struct {
		id          string
		params      Params
		temperature float32
		maxTokens   int
	}{
		{ZeroShot, Params{"role": "r", "instruction": "i", "constraints": "c", "format": "f"}, 0, 64},
		{CoTReasoning, Params{"role": "r", "problem": "p"}, 0, 1024},
		{ToTReasoning, Params{"role": "r", "branches": "3", "problem": "p"}, 0.7, 2048},
		{JSONExtract, Params{"role": "r", "schema": "s", "text": "t"}, 0, 512},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			_, spec, err := Render(tt.id, tt.params)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if spec.Temperature != tt.temperature || spec.MaxTokens != tt.maxTokens {
				t.Errorf("spec = %+v, want (%v, %d)", spec, tt.temperature, tt.maxTokens)
			}
		})
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	if _, _, err := Render("nonsense.v9", Params{}); err == nil {
		t.Fatal("unknown template should error")
	}
}

func TestRender_MissingParam(t *testing.T) {
	if _, _, err := Render(CoTReasoning, Params{"role": "r"}); err == nil {
		t.Fatal("missing parameter should error, not render blank")
	}
}

func TestRender_Deterministic(t *testing.T) {
	params := Params{"role": "r", "problem": "p"}
	a, _, _ := Render(CoTReasoning, params)
	b, _, _ := Render(CoTReasoning, params)
	if a != b {
		t.Error("same parameters must render identical text")
	}
}
