package playht

import (
	"context"
	"fmt"
	"github.com/pkg/errors"
	"net/url"
	"speech_pipeline/transport"
)

// Submit создает задачу на озвучку текста
func (c *Client) Submit(ctx context.Context, req Request) (Handle, error) {
	if err := req.Validate(); err != nil {
		return Handle{}, errors.Wrap(err, "invalid request")
	}

	headers := c.authHeaders("audio/mpeg")
	headers.Set("Content-Type", "application/json")

	resp, err := c.transport.PostJSON(ctx, c.endpoints.ConvertURL, headers, req)
	if errors.Is(err, transport.ErrMalformedBody) {
		return Handle{}, &SubmissionError{Reason: "unreadable response", Err: err}
	} else if err != nil {
		return Handle{}, err
	}

	data, ok := resp.(map[string]any)
	if !ok {
		return Handle{}, &SubmissionError{Reason: fmt.Sprintf("unexpected response %v", resp)}
	}

	id, _ := data["transcriptionId"].(string)
	if id == "" {
		return Handle{}, &SubmissionError{Reason: "transcriptionId is missing" + serviceMessage(data)}
	}

	return Handle{TranscriptionID: id}, nil
}

// CheckStatus запрашивает статус задачи
func (c *Client) CheckStatus(ctx context.Context, h Handle) (Status, error) {
	values := url.Values{
		"transcriptionId": {h.TranscriptionID},
	}

	resp, err := c.transport.GetJSON(ctx, c.endpoints.StatusURL+"?"+values.Encode(), c.authHeaders("application/json"))
	if errors.Is(err, transport.ErrMalformedBody) {
		return Status{}, &StatusQueryError{TranscriptionID: h.TranscriptionID, Reason: "unreadable response", Err: err}
	} else if err != nil {
		return Status{}, err
	}

	return parseStatus(h, resp)
}

func parseStatus(h Handle, resp any) (Status, error) {
	data, ok := resp.(map[string]any)
	if !ok {
		return Status{}, &StatusQueryError{TranscriptionID: h.TranscriptionID, Reason: fmt.Sprintf("unexpected response %v", resp)}
	}

	st := Status{Kind: Malformed, Converted: data["converted"]}
	st.AudioURL, _ = data["audioUrl"].(string)

	if v, ok := data["converted"].(bool); ok {
		if v {
			st.Kind = Converted
		} else {
			st.Kind = Pending
		}
	}

	return st, nil
}

func serviceMessage(data map[string]any) string {
	for _, k := range []string{"error", "message"} {
		if v, ok := data[k]; ok && v != nil {
			return fmt.Sprintf(" (%s: %v)", k, v)
		}
	}

	return ""
}
