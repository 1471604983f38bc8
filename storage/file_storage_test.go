package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func Test_locker(t *testing.T) {
	s, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	s.lock("test")
	s.unlock("test")

	s.lock("test")
	s.lock("test2")
	s.unlock("test")
	s.unlock("test2")

	start := time.Now()
	go func() {
		s.lock("test")
		time.Sleep(time.Second)
		s.unlock("test")
	}()

	time.Sleep(time.Millisecond * 50)

	s.lock("test")
	s.unlock("test")

	assert.GreaterOrEqual(t, time.Since(start), time.Second)
}

func Test_StoreRestore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "journal")
	s, err := NewFileStorage(dir)
	require.NoError(t, err)

	type item struct {
		ID    string `yaml:"id"`
		Bytes int64  `yaml:"bytes"`
	}

	require.NoError(t, s.StoreObject("abc", item{ID: "abc", Bytes: 3}))

	_, err = os.Stat(filepath.Join(dir, "abc.yaml"))
	require.NoError(t, err)

	obj, err := s.RestoreObject("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", obj["id"])
	assert.Equal(t, 3, obj["bytes"])

	var restored item
	err = s.RestoreAsObject("abc", func(data []byte) error {
		return yaml.Unmarshal(data, &restored)
	})
	require.NoError(t, err)
	assert.Equal(t, item{ID: "abc", Bytes: 3}, restored)
}

func Test_RestoreObject_notExist(t *testing.T) {
	s, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	_, err = s.RestoreObject("missing")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func Test_path(t *testing.T) {
	s := &FileStorage{rootDir: "data"}
	assert.Equal(t, filepath.Join("data", "passwd.yaml"), s.path("../../etc/passwd"))
}
