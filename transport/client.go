package transport

import (
	"net/http"
)

type option func(t *Transport)

// Transport выполняет HTTP запросы к API сервиса озвучки. Состояния не хранит.
type Transport struct {
	httpClient *http.Client
}

func NewTransport(options ...option) *Transport {
	newTransport := &Transport{
		httpClient: http.DefaultClient,
	}

	for _, opt := range options {
		opt(newTransport)
	}

	return newTransport
}

func WithHttpClient(c *http.Client) option {
	return func(t *Transport) {
		t.httpClient = c
	}
}
