package tbot

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "123:token"

func newTelegram(t *testing.T, sendAudio http.HandlerFunc) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/bot"+testToken+"/getMe", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"speech","username":"speech_bot"}}`))
	})
	mux.HandleFunc("/bot"+testToken+"/sendAudio", sendAudio)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func Test_Publish(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greeting.mp3")
	require.NoError(t, os.WriteFile(path, []byte{0x01, 0x02, 0x03}, 0o644))

	var uploaded []byte
	srv := newTelegram(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "42", r.FormValue("chat_id"))
		assert.Equal(t, "Tervetuloa", r.FormValue("caption"))
		assert.Equal(t, "greeting.mp3", r.FormValue("title"))

		f, _, err := r.FormFile("audio")
		if assert.NoError(t, err) {
			uploaded, _ = io.ReadAll(f)
			f.Close()
		}

		w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":42,"type":"private"}}}`))
	})

	p, err := NewPublisher(testToken, 42, WithEndpoint(srv.URL+"/bot%s/%s"), WithHttpClient(srv.Client()))
	require.NoError(t, err)

	require.NoError(t, p.Publish(path, "Tervetuloa"))
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, uploaded)
}

func Test_Publish_apiError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greeting.mp3")
	require.NoError(t, os.WriteFile(path, []byte{0x01}, 0o644))

	srv := newTelegram(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	})

	p, err := NewPublisher(testToken, 42, WithEndpoint(srv.URL+"/bot%s/%s"))
	require.NoError(t, err)

	err = p.Publish(path, "")
	assert.ErrorContains(t, err, "chat not found")
}

func Test_NewPublisher_badToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":false,"error_code":401,"description":"Unauthorized"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := NewPublisher(testToken, 42, WithEndpoint(srv.URL+"/bot%s/%s"))
	assert.Error(t, err)
}
