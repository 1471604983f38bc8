package tbot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"log"
	"net/http"
	"path/filepath"
)

type options func(p *Publisher)

// Publisher отправляет готовый mp3 в чат телеграма
type Publisher struct {
	bot        *tgbotapi.BotAPI
	chatID     int64
	endpoint   string
	httpClient *http.Client
}

func NewPublisher(token string, chatID int64, opt ...options) (*Publisher, error) {
	p := &Publisher{
		chatID:     chatID,
		endpoint:   tgbotapi.APIEndpoint,
		httpClient: http.DefaultClient,
	}

	for _, f := range opt {
		f(p)
	}

	bot, err := tgbotapi.NewBotAPIWithClient(token, p.endpoint, p.httpClient)
	if err != nil {
		return nil, errors.Wrap(err, "new bot error")
	}

	log.Println("bot authorized:", bot.Self.UserName)
	p.bot = bot
	return p, nil
}

func (p *Publisher) Publish(path, caption string) error {
	audio := tgbotapi.NewAudio(p.chatID, tgbotapi.FilePath(path))
	audio.Title = filepath.Base(path)
	audio.Caption = caption

	if _, err := p.bot.Send(audio); err != nil {
		return errors.Wrap(err, "send audio error")
	}

	return nil
}

func WithEndpoint(endpoint string) options {
	return func(p *Publisher) {
		p.endpoint = endpoint
	}
}

func WithHttpClient(c *http.Client) options {
	return func(p *Publisher) {
		p.httpClient = c
	}
}
