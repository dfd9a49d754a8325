package decode

import (
	"errors"
	"testing"

	"github.com/psenarath/floodline/internal/contract"
	"github.com/psenarath/floodline/internal/model"
)

func TestDecodeClassification(t *testing.T) {
	rec, err := DecodeClassification("District: Gampaha | Intent: Rescue | Priority: High")
	if err != nil {
		t.Fatalf("DecodeClassification failed: %v", err)
	}
	if rec.District != "Gampaha" {
		t.Errorf("District = %q", rec.District)
	}
	if rec.Intent != model.IntentRescue {
		t.Errorf("Intent = %q", rec.Intent)
	}
	if rec.Priority != model.PriorityHigh {
		t.Errorf("Priority = %q", rec.Priority)
	}
}

func TestDecodeClassification_NormalizesCase(t *testing.T) {
	rec, err := DecodeClassification("district: Colombo | intent: rescue | priority: HIGH")
	if err != nil {
		t.Fatalf("DecodeClassification failed: %v", err)
	}
	if rec.Intent != model.IntentRescue {
		t.Errorf("Intent = %q, want Rescue", rec.Intent)
	}
	if rec.Priority != model.PriorityHigh {
		t.Errorf("Priority = %q, want High", rec.Priority)
	}
}

func TestDecodeClassification_UnknownKeysRetained(t *testing.T) {
	rec, err := DecodeClassification("District: Kandy | Intent: Supply | Priority: Low | Confidence: 0.9")
	if err != nil {
		t.Fatalf("DecodeClassification failed: %v", err)
	}
	if len(rec.Extra) != 1 || rec.Extra[0].Key != "Confidence" || rec.Extra[0].Value != "0.9" {
		t.Errorf("Extra = %v, want Confidence=0.9 retained", rec.Extra)
	}
}

func TestDecodeClassification_Failures(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"missing priority", "District: Gampaha | Intent: Rescue"},
		{"invalid intent", "District: Gampaha | Intent: Evacuate | Priority: High"},
		{"invalid priority", "District: Gampaha | Intent: Rescue | Priority: Urgent"},
		{"no structure", "just some prose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeClassification(tt.text)
			var mismatch *contract.FormatMismatchError
			if !errors.As(err, &mismatch) {
				t.Errorf("DecodeClassification(%q) error = %v, want FormatMismatchError", tt.text, err)
			}
		})
	}
}

func TestEncodeClassification_RoundTrip(t *testing.T) {
	original := model.ClassificationRecord{
		District: "Matara",
		Intent:   model.IntentSupply,
		Priority: model.PriorityLow,
	}

	decoded, err := DecodeClassification(EncodeClassification(original))
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if decoded.District != original.District || decoded.Intent != original.Intent || decoded.Priority != original.Priority {
		t.Errorf("round trip = %+v, want %+v", decoded, original)
	}
}
