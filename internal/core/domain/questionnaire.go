package domain

import (
	"strings"
	"time"
)

// ForceCompleteThreshold is the minimum completion percentage at which a
// user may end the questionnaire early. The server still decides whether
// early completion is acceptable.
const ForceCompleteThreshold = 80.0

// QuestionType describes the expected answer shape for a question.
type QuestionType string

// Question types.
const (
	QuestionTypeText    QuestionType = "text"
	QuestionTypeNumber  QuestionType = "number"
	QuestionTypeBoolean QuestionType = "boolean"
	QuestionTypeChoice  QuestionType = "choice"
)

// Question is one server-selected adaptive question.
type Question struct {
	// ID is the stable question identifier; responses are keyed by it.
	ID string

	// Text is the question presented to the user.
	Text string

	// Type describes the expected answer shape.
	Type QuestionType

	// Options lists the permitted answers for choice questions.
	Options []string

	// Required questions must be answered before submission.
	Required bool

	// Reasoning explains why the server chose this question, when provided.
	Reasoning string

	// AIGenerated marks questions produced by the question-selection model
	// rather than the static bank.
	AIGenerated bool
}

// QuestionnaireResponse is one recorded answer. Immutable once timestamped
// except through an explicit edit, which replaces the value at the same
// question id under a fresh timestamp.
type QuestionnaireResponse struct {
	// QuestionID keys the response.
	QuestionID string

	// Answer is the recorded value: string, number or boolean.
	Answer any

	// Timestamp is when the answer was recorded or last edited.
	Timestamp time.Time
}

// QuestionnaireSession is the server-owned adaptive Q&A record for a
// project. The client holds a cache; the server is authoritative for
// CurrentQuestionIndex, IsComplete and CompletionPercentage.
type QuestionnaireSession struct {
	// ID is the server-assigned session identifier.
	ID string

	// ProjectID links the session to its project.
	ProjectID string

	// CurrentQuestionIndex is the server's progress counter.
	CurrentQuestionIndex int

	// Responses are ordered by submission time, unique per question id.
	Responses []QuestionnaireResponse

	// IsComplete marks the session finished.
	IsComplete bool

	// CompletionPercentage is the server's progress estimate in [0,100].
	CompletionPercentage float64
}

// ResponseFor returns the recorded response for a question id, if any.
func (s *QuestionnaireSession) ResponseFor(questionID string) (QuestionnaireResponse, bool) {
	for _, r := range s.Responses {
		if r.QuestionID == questionID {
			return r, true
		}
	}
	return QuestionnaireResponse{}, false
}

// ReplaceResponse records a response, replacing any existing entry with
// the same question id in place. Resubmission never duplicates.
func (s *QuestionnaireSession) ReplaceResponse(resp QuestionnaireResponse) {
	for i, r := range s.Responses {
		if r.QuestionID == resp.QuestionID {
			s.Responses[i] = resp
			return
		}
	}
	s.Responses = append(s.Responses, resp)
}

// CanForceComplete reports whether early completion is available.
func (s *QuestionnaireSession) CanForceComplete() bool {
	return s.CompletionPercentage >= ForceCompleteThreshold
}

// IsAnswerEmpty reports whether a value counts as "no answer" for
// required-question validation. Zero numbers and false are real answers;
// only nil and blank strings are empty.
func IsAnswerEmpty(answer any) bool {
	if answer == nil {
		return true
	}
	if s, ok := answer.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
