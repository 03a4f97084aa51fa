package telegram

import (
	"testing"

	"github.com/google/uuid"

	"github.com/aliskhannn/vocab-master/internal/domain/entities"
	"github.com/aliskhannn/vocab-master/internal/service"
)

func TestDecodeCallback(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		wantAction string
		wantParams []string
	}{
		{"bare action", "progress", "progress", nil},
		{"word card", buildWordCallback(service.FilterLearned, 3), "word", []string{"learned", "3"}},
		{"exam mode", buildExamModeCallback(entities.ModeFull), "exam", []string{"mode", "full"}},
		{"unlearn", buildUnlearnCallback("abandon", 2), "unlearn", []string{"2", "abandon"}},
		{"reset", buildResetCallback(resetConfirm), "reset", []string{"confirm"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cd := decodeCallback(tt.data)
			if cd.Action != tt.wantAction {
				t.Errorf("expected action %q, got %q", tt.wantAction, cd.Action)
			}
			if len(cd.Params) != len(tt.wantParams) {
				t.Fatalf("expected params %v, got %v", tt.wantParams, cd.Params)
			}
			for i := range tt.wantParams {
				if cd.Params[i] != tt.wantParams[i] {
					t.Errorf("param %d: expected %q, got %q", i, tt.wantParams[i], cd.Params[i])
				}
			}
			if cd.encode() != tt.data {
				t.Errorf("expected %q to encode back unchanged, got %q", tt.data, cd.encode())
			}
		})
	}
}

func TestCallbackParams(t *testing.T) {
	cd := decodeCallback("word:all:x")

	if cd.param(5) != "" {
		t.Error("expected empty value for a missing param")
	}
	if _, ok := cd.intParam(1); ok {
		t.Error("expected non-numeric param to fail")
	}
	if _, ok := cd.intParam(2); ok {
		t.Error("expected missing param to fail")
	}
}

func TestExamAnswerCallbackFitsTelegramLimit(t *testing.T) {
	data := buildExamAnswerCallback(uuid.NewString(), 10, 3)
	if len(data) > 64 {
		t.Errorf("callback data is %d bytes, telegram allows 64", len(data))
	}

	cd := decodeCallback(data)
	if cd.param(0) != examAnswer {
		t.Errorf("unexpected sub-action %q", cd.param(0))
	}
	if n, ok := cd.intParam(3); !ok || n != 3 {
		t.Errorf("expected option index 3, got %d", n)
	}
}
