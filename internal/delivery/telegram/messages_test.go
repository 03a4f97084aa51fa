package telegram

import (
	"strings"
	"testing"

	"github.com/aliskhannn/vocab-master/internal/domain/entities"
	"github.com/aliskhannn/vocab-master/internal/service"
)

func TestBuildProgressBar(t *testing.T) {
	tests := []struct {
		name                   string
		current, total, length int
		want                   string
	}{
		{"empty total", 3, 0, 4, "[░░░░]"},
		{"half", 5, 10, 4, "[██░░]"},
		{"full", 10, 10, 4, "[████]"},
		{"overflow", 12, 10, 4, "[████]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildProgressBar(tt.current, tt.total, tt.length); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestPageOf(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	chunk, page := pageOf(items, 1, 3)
	if page != 1 || len(chunk) != 3 || chunk[0] != 4 {
		t.Errorf("unexpected page %d %v", page, chunk)
	}

	chunk, page = pageOf(items, 9, 3)
	if page != 2 || len(chunk) != 1 || chunk[0] != 7 {
		t.Errorf("expected last page to be clamped, got %d %v", page, chunk)
	}

	if chunk, page := pageOf([]int(nil), 0, 3); chunk != nil || page != 0 {
		t.Errorf("expected empty page, got %d %v", page, chunk)
	}
}

func TestFormatQuizResult(t *testing.T) {
	res := entities.Result{
		Correct:    1,
		Wrong:      1,
		Total:      2,
		Percentage: 50,
		Tier:       entities.TierNeedsPractice,
		WrongAnswers: []entities.WrongAnswer{
			{WordID: "abandon", CorrectMeaning: "ত্যাগ করা", ChosenMeaning: "শান্ত"},
		},
	}

	text := formatQuizResult(entities.ModeFull, res)

	for _, want := range []string{"1/2 \\(50%\\)", "Keep practicing\\!", "abandon"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in result:\n%s", want, text)
		}
	}
}

func TestFormatWordCard_EscapesMarkdown(t *testing.T) {
	w, err := entities.NewWord("e.g.", "abbr", "যেমন", "for example (Latin)", "", "", []string{"i.e."})
	if err != nil {
		t.Fatalf("new word: %v", err)
	}

	text := formatWordCard(&service.WordCard{Word: w, Index: 0, Total: 1})

	if !strings.Contains(text, "*e\\.g\\.*") {
		t.Errorf("expected escaped headword, got:\n%s", text)
	}
	if !strings.Contains(text, "\\(Latin\\)") {
		t.Errorf("expected escaped definition, got:\n%s", text)
	}
}
