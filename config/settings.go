package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"path/filepath"
	"speech_pipeline/pipeline"
	"speech_pipeline/playht"
	"time"
)

type Settings struct {
	Authorization string `envconfig:"AUTHORIZATION" required:"true"`
	UserID        string `envconfig:"USER_ID" required:"true"`

	ConvertURL string `envconfig:"CONVERT_URL" default:"https://api.play.ht/api/v1/convert"`
	StatusURL  string `envconfig:"STATUS_URL" default:"https://api.play.ht/api/v1/articleStatus"`
	Voice      string `envconfig:"VOICE" default:"fi-FI-Standard-A"`
	Text       string `envconfig:"TEXT" default:"Tervetuloa, mitä kuuluu?"`
	OutputDir  string `envconfig:"OUTPUT_DIR" default:"output"`
	Output     string `envconfig:"OUTPUT" default:"greeting.mp3"`

	// 0 - без ограничений, как раньше
	PollMaxAttempts int           `envconfig:"POLL_MAX_ATTEMPTS" default:"0"`
	PollTimeout     time.Duration `envconfig:"POLL_TIMEOUT" default:"0s"`
	PollInterval    time.Duration `envconfig:"POLL_INTERVAL" default:"0s"`

	JournalDir string `envconfig:"JOURNAL_DIR" default:"data"`
	Schedule   string `envconfig:"SCHEDULE"`

	BotToken string `envconfig:"BOT_TOKEN"`
	ChatID   int64  `envconfig:"CHAT_ID"`
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Settings, error) {
	_ = godotenv.Load()

	var settings Settings
	if err := envconfig.Process("", &settings); err != nil {
		return nil, errors.Wrap(err, "failed to load settings")
	}

	if settings.Authorization == "" || settings.UserID == "" {
		return nil, errors.New("AUTHORIZATION and USER_ID must not be empty")
	}

	if settings.PollMaxAttempts < 0 || settings.PollTimeout < 0 || settings.PollInterval < 0 {
		return nil, errors.New("poll settings must not be negative")
	}

	return &settings, nil
}

func (s *Settings) Credentials() playht.Credentials {
	return playht.Credentials{Token: s.Authorization, UserID: s.UserID}
}

func (s *Settings) Endpoints() playht.Endpoints {
	return playht.Endpoints{ConvertURL: s.ConvertURL, StatusURL: s.StatusURL}
}

func (s *Settings) PollPolicy() pipeline.PollPolicy {
	return pipeline.PollPolicy{
		MaxAttempts: s.PollMaxAttempts,
		Timeout:     s.PollTimeout,
		Interval:    s.PollInterval,
	}
}

func (s *Settings) Request() playht.Request {
	return playht.Request{Content: []string{s.Text}, Voice: s.Voice}
}

func (s *Settings) OutputPath() string {
	return filepath.Join(s.OutputDir, s.Output)
}

// Publish доставка в телеграм включена
func (s *Settings) Publish() bool {
	return s.BotToken != "" && s.ChatID != 0
}
