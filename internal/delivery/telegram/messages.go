// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/vocab-master/internal/domain/entities"
	"github.com/aliskhannn/vocab-master/internal/service"
)

// Plain text messages.
const (
	msgInternalError   = "Something went wrong. Please try again later."
	msgStaleButton     = "This button is no longer active."
	msgAnswerFirst     = "Pick an answer first."
	msgAlreadyAnswered = "Already answered."
	msgWordUnavailable = "Could not open this word."
	msgSearchUsage     = "Usage: /search <word or meaning>"
	msgResetDone       = "All progress has been reset."
	msgResetCancelled  = "Reset cancelled."
)

const (
	learnedPerPage     = 10
	searchResultsLimit = 10
	progressBarLength  = 20
	resultBarLength    = 10
)

func msgWelcome(placeholder bool) string {
	var sb strings.Builder

	sb.WriteString(bold("Vocab Master"))
	sb.WriteString("\n\n")
	sb.WriteString(md("Learn English words with their Bengali meanings, mark the ones you know and test yourself with exams."))
	sb.WriteString("\n\n")
	sb.WriteString(commandList())

	if placeholder {
		sb.WriteString("\n\n")
		sb.WriteString(md("⚠️ The word list could not be loaded, only a sample word is available."))
	}

	return sb.String()
}

func msgHelp() string {
	return bold("Commands") + "\n\n" + commandList()
}

func msgUnknownCommand() string {
	return md("Unknown command. Available commands:") + "\n\n" + commandList()
}

func commandList() string {
	return md(strings.Join([]string{
		"/words — browse all words",
		"/random — a random word",
		"/learned — your learned words",
		"/search <text> — search learned words",
		"/exam — start an exam",
		"/progress — your progress",
		"/reset — reset all progress",
	}, "\n"))
}

func msgNoLearnedWords() string {
	return md("You have not marked any words as learned yet. Open /words and tap \"Mark learned\".")
}

func msgNotEnoughWords(mode entities.QuizMode) string {
	if mode == entities.ModeLearned {
		return md(fmt.Sprintf("You need at least %d learned words for this exam. Mark more words in /words or take the full exam.", service.MinWords))
	}
	return md(fmt.Sprintf("The word list needs at least %d words with different meanings to build an exam.", service.MinWords))
}

func msgResetPrompt() string {
	return bold("Reset progress?") + "\n\n" +
		md("Learned words, exam history and statistics will be deleted. This cannot be undone.")
}

// formatWordCard renders a word with its details (MarkdownV2 safe).
func formatWordCard(card *service.WordCard) string {
	w := card.Word

	var sb strings.Builder

	sb.WriteString(bold(w.ID))
	if w.PartOfSpeech != "" {
		sb.WriteString(" ")
		sb.WriteString(italic("(" + w.PartOfSpeech + ")"))
	}
	sb.WriteString("\n\n")

	sb.WriteString(md("Meaning: "))
	sb.WriteString(bold(w.NativeMeaning))
	sb.WriteString("\n")

	if w.Definition != "" {
		sb.WriteString(md("Definition: " + w.Definition))
		sb.WriteString("\n")
	}
	if w.ExampleNative != "" {
		sb.WriteString("\n")
		sb.WriteString(italic(w.ExampleNative))
		if w.ExampleTranslated != "" {
			sb.WriteString("\n")
			sb.WriteString(md(w.ExampleTranslated))
		}
		sb.WriteString("\n")
	}
	if len(w.Synonyms) > 0 {
		sb.WriteString("\n")
		sb.WriteString(md("Synonyms: " + strings.Join(w.Synonyms, ", ")))
		sb.WriteString("\n")
	}

	status := "not learned"
	if card.Learned {
		status = "✅ learned"
	}
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("%d / %d · %s", card.Index+1, card.Total, status)))

	return sb.String()
}

// formatLearnedPage renders one page of the learned words list.
func formatLearnedPage(words []*entities.Word, page, totalPages, total int) string {
	var sb strings.Builder

	sb.WriteString(bold(fmt.Sprintf("Learned words (%d)", total)))
	sb.WriteString("\n\n")

	for i, w := range words {
		sb.WriteString(md(fmt.Sprintf("%d. ", page*learnedPerPage+i+1)))
		sb.WriteString(bold(w.ID))
		sb.WriteString(md(" — " + w.NativeMeaning))
		sb.WriteString("\n")
	}

	if totalPages > 1 {
		sb.WriteString("\n")
		sb.WriteString(md(fmt.Sprintf("Page %d of %d", page+1, totalPages)))
	}

	return sb.String()
}

func formatSearchResults(query string, words []*entities.Word) string {
	if len(words) == 0 {
		return md(fmt.Sprintf("No learned words match \"%s\".", query))
	}

	var sb strings.Builder
	sb.WriteString(bold(fmt.Sprintf("Results for \"%s\" (%d)", query, len(words))))
	sb.WriteString("\n\n")

	shown := words
	if len(shown) > searchResultsLimit {
		shown = shown[:searchResultsLimit]
	}
	for _, w := range shown {
		sb.WriteString(bold(w.ID))
		sb.WriteString(md(" — " + w.NativeMeaning))
		sb.WriteString("\n")
	}
	if len(words) > len(shown) {
		sb.WriteString("\n")
		sb.WriteString(md(fmt.Sprintf("Showing the first %d. Refine the search to see more.", len(shown))))
	}

	return sb.String()
}

func formatExamMenu() string {
	return bold("🎯 Exam") + "\n\n" +
		md(fmt.Sprintf("Learned words: questions about the words you marked (at least %d).", service.MinWords)) + "\n" +
		md("Full exam: questions from the whole word list, without repeats until you have seen them all.")
}

func formatQuizMode(mode entities.QuizMode) string {
	switch mode {
	case entities.ModeLearned:
		return "📗 Learned words"
	case entities.ModeFull:
		return "📚 Full exam"
	default:
		return string(mode)
	}
}

// formatQuizQuestion formats a quiz question (MarkdownV2 safe).
func formatQuizQuestion(q *entities.Question, currentNum, totalQuestions int) string {
	return fmt.Sprintf(
		"%s\n\n%s\n\n%s",
		md(fmt.Sprintf("Question %d of %d", currentNum, totalQuestions)),
		bold(q.Prompt.ID),
		md("Choose the correct meaning:"),
	)
}

// formatAnswerFeedback formats feedback for a quiz answer (MarkdownV2 safe).
func formatAnswerFeedback(isCorrect bool, correctAnswer string) string {
	if isCorrect {
		return md("✅ Correct!")
	}
	return fmt.Sprintf(
		"%s\n%s %s",
		md("❌ Wrong"),
		md("Correct answer:"),
		bold(correctAnswer),
	)
}

// formatQuizResult formats quiz results (MarkdownV2 safe).
func formatQuizResult(mode entities.QuizMode, res entities.Result) string {
	emoji, message := "📚", "Keep practicing!"
	switch res.Tier {
	case entities.TierExcellent:
		emoji, message = "🌟", "Excellent work!"
	case entities.TierGood:
		emoji, message = "👍", "Good job!"
	}

	var sb strings.Builder

	sb.WriteString(md(emoji + " Exam finished! " + formatQuizMode(mode)))
	sb.WriteString("\n\n")
	sb.WriteString(md("Score: "))
	sb.WriteString(bold(fmt.Sprintf("%d/%d (%d%%)", res.Correct, res.Total, res.Percentage)))
	sb.WriteString("\n")
	sb.WriteString(md(buildProgressBar(res.Correct, res.Total, resultBarLength)))
	sb.WriteString("\n")
	sb.WriteString(md(fmt.Sprintf("✅ Correct: %d   ❌ Wrong: %d", res.Correct, res.Wrong)))
	sb.WriteString("\n\n")
	sb.WriteString(md(message))

	if len(res.WrongAnswers) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(bold("Review these:"))
		for _, wa := range res.WrongAnswers {
			sb.WriteString("\n")
			sb.WriteString(md("• " + wa.WordID + " — " + wa.CorrectMeaning))
		}
	}

	return sb.String()
}

func formatProgress(s *service.ProgressSummary) string {
	return fmt.Sprintf(
		"%s\n\n%s\n%s\n\n%s\n%s\n%s",
		bold("📊 Your progress"),
		md(buildProgressBar(s.Learned, s.TotalWords, progressBarLength)),
		md(fmt.Sprintf("✅ Learned: %d / %d (%d%%)", s.Learned, s.TotalWords, s.Percentage)),
		md(fmt.Sprintf("📝 Exams taken: %d", s.Attempts)),
		md(fmt.Sprintf("🎯 Correct answers: %d / %d", s.CorrectAnswers, s.TotalAnswers)),
		md(fmt.Sprintf("📈 Accuracy: %.1f%%", s.Accuracy())),
	)
}

// buildProgressBar creates an ASCII progress bar.
func buildProgressBar(current, total, length int) string {
	if total <= 0 {
		return "[" + strings.Repeat("░", length) + "]"
	}

	filled := current * length / total
	if filled > length {
		filled = length
	}
	if filled < 0 {
		filled = 0
	}

	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", length-filled) + "]"
}
