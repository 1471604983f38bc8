package playht

import (
	"context"
	"net/http"
)

const (
	ConvertURL = "https://api.play.ht/api/v1/convert"
	StatusURL  = "https://api.play.ht/api/v1/articleStatus"
)

//go:generate mockgen -source=$GOFILE -destination=./mock/mock.go
type ITransport interface {
	PostJSON(ctx context.Context, url string, headers http.Header, body any) (any, error)
	GetJSON(ctx context.Context, url string, headers http.Header) (any, error)
}

// Credentials секреты аккаунта, читаются один раз при старте
type Credentials struct {
	Token  string
	UserID string
}

type Endpoints struct {
	ConvertURL string
	StatusURL  string
}

type option func(c *Client)

type Client struct {
	transport   ITransport
	credentials Credentials
	endpoints   Endpoints
}

func NewClient(transport ITransport, credentials Credentials, options ...option) *Client {
	newClient := &Client{
		transport:   transport,
		credentials: credentials,
		endpoints: Endpoints{
			ConvertURL: ConvertURL,
			StatusURL:  StatusURL,
		},
	}

	for _, opt := range options {
		opt(newClient)
	}

	return newClient
}

func WithEndpoints(e Endpoints) option {
	return func(c *Client) {
		if e.ConvertURL != "" {
			c.endpoints.ConvertURL = e.ConvertURL
		}
		if e.StatusURL != "" {
			c.endpoints.StatusURL = e.StatusURL
		}
	}
}

func (c *Client) authHeaders(accept string) http.Header {
	h := http.Header{}
	h.Set("Accept", accept)
	h.Set("AUTHORIZATION", "Bearer "+c.credentials.Token)
	h.Set("X-USER-ID", c.credentials.UserID)

	return h
}
