package telegram

import (
	"strconv"
	"strings"

	"github.com/aliskhannn/vocab-master/internal/domain/entities"
	"github.com/aliskhannn/vocab-master/internal/service"
)

// Callback action constants.
const (
	actionWord     = "word"
	actionLearn    = "learn"
	actionExam     = "exam"
	actionReview   = "review"
	actionUnlearn  = "unlearn"
	actionProgress = "progress"
	actionReset    = "reset"
)

// Exam sub-actions.
const (
	examMenu    = "menu"
	examMode    = "mode"
	examAnswer  = "answer"
	examNext    = "next"
	examRestart = "restart"
)

const (
	resetAsk     = "ask"
	resetConfirm = "confirm"
	resetCancel  = "cancel"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// param returns the i-th parameter or "".
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

// intParam parses the i-th parameter as an int.
func (cd callbackData) intParam(i int) (int, bool) {
	n, err := strconv.Atoi(cd.param(i))
	if err != nil {
		return 0, false
	}
	return n, true
}

// buildWordCallback opens the word card at index.
func buildWordCallback(filter service.Filter, index int) string {
	return callbackData{
		Action: actionWord,
		Params: []string{string(filter), strconv.Itoa(index)},
	}.encode()
}

// buildLearnCallback toggles the learned flag of the word card at index.
func buildLearnCallback(filter service.Filter, index int) string {
	return callbackData{
		Action: actionLearn,
		Params: []string{string(filter), strconv.Itoa(index)},
	}.encode()
}

func buildExamMenuCallback() string {
	return callbackData{Action: actionExam, Params: []string{examMenu}}.encode()
}

func buildExamModeCallback(mode entities.QuizMode) string {
	return callbackData{
		Action: actionExam,
		Params: []string{examMode, string(mode)},
	}.encode()
}

// buildExamAnswerCallback carries the session and question number so that
// buttons of an old question are rejected.
func buildExamAnswerCallback(sessionID string, questionNum, optionIndex int) string {
	return callbackData{
		Action: actionExam,
		Params: []string{
			examAnswer,
			sessionID,
			strconv.Itoa(questionNum),
			strconv.Itoa(optionIndex),
		},
	}.encode()
}

func buildExamNextCallback(sessionID string, questionNum int) string {
	return callbackData{
		Action: actionExam,
		Params: []string{examNext, sessionID, strconv.Itoa(questionNum)},
	}.encode()
}

func buildExamRestartCallback() string {
	return callbackData{Action: actionExam, Params: []string{examRestart}}.encode()
}

func buildReviewCallback(page int) string {
	return callbackData{
		Action: actionReview,
		Params: []string{strconv.Itoa(page)},
	}.encode()
}

func buildUnlearnCallback(wordID string, page int) string {
	return callbackData{
		Action: actionUnlearn,
		Params: []string{strconv.Itoa(page), wordID},
	}.encode()
}

func buildProgressCallback() string {
	return actionProgress
}

func buildResetCallback(sub string) string {
	return callbackData{Action: actionReset, Params: []string{sub}}.encode()
}
