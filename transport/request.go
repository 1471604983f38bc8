package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/pkg/errors"
	"golang.org/x/net/context/ctxhttp"
	"io"
	"net/http"
)

// PostJSON сериализует body и отправляет POST. Ответ разбирается как JSON при любом статусе,
// сервис кладет ошибки в тело.
func (t *Transport) PostJSON(ctx context.Context, url string, headers http.Header, body any) (any, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "json marshal error")
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, &Error{Method: http.MethodPost, URL: url, Err: err}
	}

	return t.requestJSON(ctx, request, headers)
}

// GetJSON то же самое для GET.
func (t *Transport) GetJSON(ctx context.Context, url string, headers http.Header) (any, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{Method: http.MethodGet, URL: url, Err: err}
	}

	return t.requestJSON(ctx, request, headers)
}

// GetStream GET без авторизации, возвращает тело ответа. Закрывает вызывающий.
func (t *Transport) GetStream(ctx context.Context, url string) (io.ReadCloser, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{Method: http.MethodGet, URL: url, Err: err}
	}

	resp, err := ctxhttp.Do(ctx, t.httpClient, request)
	if err != nil {
		return nil, &Error{Method: http.MethodGet, URL: url, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &Error{Method: http.MethodGet, URL: url, Err: errors.New(fmt.Sprintf("response status isn't 2xx returns: %d", resp.StatusCode))}
	}

	return resp.Body, nil
}

func (t *Transport) requestJSON(ctx context.Context, request *http.Request, headers http.Header) (any, error) {
	for k, v := range headers {
		for _, vv := range v {
			request.Header.Add(k, vv)
		}
	}

	resp, err := ctxhttp.Do(ctx, t.httpClient, request)
	if err != nil {
		return nil, &Error{Method: request.Method, URL: request.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Method: request.Method, URL: request.URL.String(), Err: errors.Wrap(err, "read body error")}
	}

	var result any
	if err := json.Unmarshal(b, &result); err != nil {
		return nil, &Error{Method: request.Method, URL: request.URL.String(), Err: errors.Wrap(ErrMalformedBody, err.Error())}
	}

	return result, nil
}
