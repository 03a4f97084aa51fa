package entities

// Question is one multiple choice item of a quiz.
type Question struct {
	Prompt        *Word   // word under test
	Options       []*Word // shuffled, pairwise distinct NativeMeaning
	CorrectAnswer string  // Prompt.NativeMeaning
}

// IsCorrect reports whether the selected meaning answers the question.
func (q *Question) IsCorrect(selectedMeaning string) bool {
	return selectedMeaning == q.CorrectAnswer
}

// CorrectIndex returns the position of the correct option or -1.
func (q *Question) CorrectIndex() int {
	for i, opt := range q.Options {
		if opt.NativeMeaning == q.CorrectAnswer {
			return i
		}
	}
	return -1
}
