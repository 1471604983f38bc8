package playht

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type Request struct {
	Content []string `json:"content"`
	Voice   string   `json:"voice"`
}

type Handle struct {
	TranscriptionID string
}

type StatusKind int

const (
	// Pending converted == false, опрашиваем дальше
	Pending StatusKind = iota
	// Converted converted == true
	Converted
	// Malformed converted отсутствует, null или не bool. Считается завершением.
	Malformed
)

func (k StatusKind) String() string {
	switch k {
	case Pending:
		return "pending"
	case Converted:
		return "converted"
	case Malformed:
		return "malformed"
	}

	return fmt.Sprintf("StatusKind(%d)", int(k))
}

type Status struct {
	Kind     StatusKind
	AudioURL string
	// Converted исходное значение поля converted, для лога
	Converted any
}

// Done статус больше не pending
func (s Status) Done() bool {
	return s.Kind != Pending
}

var (
	errEmptyContent = errors.New("request content is empty")
	errEmptyVoice   = errors.New("request voice is empty")
)

func (r Request) Validate() error {
	if len(r.Content) == 0 || strings.TrimSpace(strings.Join(r.Content, "")) == "" {
		return errEmptyContent
	}
	if r.Voice == "" {
		return errEmptyVoice
	}

	return nil
}

// SubmissionError в ответе на создание задачи нет transcriptionId
type SubmissionError struct {
	Reason string
	Err    error
}

func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("submission failed: %s: %v", e.Reason, e.Err)
	}
	return "submission failed: " + e.Reason
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// StatusQueryError ответ на запрос статуса не удалось разобрать
type StatusQueryError struct {
	TranscriptionID string
	Reason          string
	Err             error
}

func (e *StatusQueryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("status query for %q failed: %s: %v", e.TranscriptionID, e.Reason, e.Err)
	}
	return fmt.Sprintf("status query for %q failed: %s", e.TranscriptionID, e.Reason)
}

func (e *StatusQueryError) Unwrap() error {
	return e.Err
}
