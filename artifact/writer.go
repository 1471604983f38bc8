package artifact

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"speech_pipeline/transport"
)

type IStreamer interface {
	GetStream(ctx context.Context, url string) (io.ReadCloser, error)
}

// WriteError ошибка файловой системы при сохранении
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

type Writer struct {
	streamer IStreamer
}

func NewWriter(streamer IStreamer) *Writer {
	return &Writer{streamer: streamer}
}

// Save скачивает url в path. Пишет во временный файл рядом и переименовывает после полной загрузки,
// при любой ошибке временный файл удаляется.
func (w *Writer) Save(ctx context.Context, url, path string) (n int64, err error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return 0, &WriteError{Path: path, Err: errors.Wrap(err, "create dir error")}
	}

	stream, err := w.streamer.GetStream(ctx, url)
	if err != nil {
		return 0, err
	}
	defer stream.Close()

	tmpPath := fmt.Sprintf("%s.%s.part", path, uuid.NewString())
	f, err := os.Create(tmpPath)
	if err != nil {
		return 0, &WriteError{Path: path, Err: errors.Wrap(err, "create file error")}
	}

	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmpPath)
		}
	}()

	src := &sourceReader{r: stream}
	n, err = io.Copy(f, src)
	if src.err != nil {
		// оборвался источник, а не запись
		return n, &transport.Error{Method: http.MethodGet, URL: url, Err: errors.Wrap(src.err, "read stream error")}
	}
	if err != nil {
		return n, &WriteError{Path: path, Err: errors.Wrap(err, "copy error")}
	}

	if err = f.Sync(); err != nil {
		return n, &WriteError{Path: path, Err: errors.Wrap(err, "sync error")}
	}
	if err = f.Close(); err != nil {
		return n, &WriteError{Path: path, Err: errors.Wrap(err, "close file error")}
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return n, &WriteError{Path: path, Err: errors.Wrap(err, "rename error")}
	}

	return n, nil
}

type sourceReader struct {
	r   io.Reader
	err error
}

func (s *sourceReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && err != io.EOF {
		s.err = err
	}

	return n, err
}
