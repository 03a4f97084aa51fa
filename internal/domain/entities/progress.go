package entities

import "slices"

// Stats holds the aggregate quiz counters of a user.
type Stats struct {
	Attempts       int // finished quizzes
	CorrectAnswers int // correct answers over all quizzes
	TotalAnswers   int // questions over all quizzes
}

// Accuracy returns correct answers as a percentage of all answers.
func (s Stats) Accuracy() float64 {
	if s.TotalAnswers == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.TotalAnswers) * 100
}

// LearnedSet is the set of word ids a user marked as learned.
type LearnedSet map[string]struct{}

// NewLearnedSet builds a set from ids.
func NewLearnedSet(ids []string) LearnedSet {
	set := make(LearnedSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether id is in the set.
func (s LearnedSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the ids in sorted order.
func (s LearnedSet) IDs() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
