package pipeline

import (
	"context"
	"fmt"
	"github.com/pkg/errors"
	"speech_pipeline/playht"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=./mock/mock.go
type IConverter interface {
	Submit(ctx context.Context, req playht.Request) (playht.Handle, error)
	CheckStatus(ctx context.Context, h playht.Handle) (playht.Status, error)
}

type IArtifactWriter interface {
	Save(ctx context.Context, url, path string) (int64, error)
}

type IPublisher interface {
	Publish(path, caption string) error
}

type State int

const (
	Submitting State = iota
	Polling
	Downloading
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Submitting:
		return "submitting"
	case Polling:
		return "polling"
	case Downloading:
		return "downloading"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// PollPolicy ограничения опроса статуса. Нулевое значение опрашивает без пауз и без ограничений.
type PollPolicy struct {
	MaxAttempts int
	Timeout     time.Duration
	Interval    time.Duration
}

type Result struct {
	Handle   playht.Handle
	Status   playht.Status
	Path     string
	Bytes    int64
	Attempts int
	State    State
}

var (
	ErrPollingExhausted = errors.New("conversion is still pending")
	ErrNoAudioURL       = errors.New("status has no audioUrl")
)

// RunError ошибка запуска с состоянием, в котором он упал
type RunError struct {
	State    State
	Handle   playht.Handle
	Attempts int
	Err      error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("pipeline failed while %s: %v", e.State, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

type record struct {
	TranscriptionID string    `yaml:"transcription_id"`
	Voice           string    `yaml:"voice"`
	Status          string    `yaml:"status"`
	AudioURL        string    `yaml:"audio_url"`
	Path            string    `yaml:"path"`
	Bytes           int64     `yaml:"bytes"`
	Attempts        int       `yaml:"attempts"`
	FinishedAt      time.Time `yaml:"finished_at"`
}
