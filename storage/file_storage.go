package storage

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
	"io"
	"os"
	"path/filepath"
	"sync"
)

const DefaultRootDir = "data"

type FileStorage struct {
	rootDir string
	mx      sync.Map
}

func NewFileStorage(rootDir string) (*FileStorage, error) {
	if rootDir == "" {
		rootDir = DefaultRootDir
	}

	if err := os.MkdirAll(rootDir, os.ModePerm); err != nil {
		return nil, errors.Wrap(err, "create storage dir error")
	}

	return &FileStorage{rootDir: rootDir}, nil
}

func (s *FileStorage) StoreObject(name string, object any) error {
	s.lock(name)
	defer s.unlock(name)

	data, err := yaml.Marshal(object)
	if err != nil {
		return errors.Wrap(err, "yaml marshal error")
	}

	f, err := os.Create(s.path(name))
	if err != nil {
		return errors.Wrap(err, "create file error")
	}
	defer f.Close()

	if _, err = f.Write(data); err != nil {
		return errors.Wrap(err, "StoreObject error")
	}
	return nil
}

func (s *FileStorage) RestoreObject(name string) (object map[string]interface{}, err error) {
	err = s.RestoreAsObject(name, func(data []byte) error {
		return yaml.Unmarshal(data, &object)
	})
	if err != nil {
		return nil, errors.Wrap(err, "yaml unmarshal error")
	}

	return
}

func (s *FileStorage) RestoreAsObject(name string, callback func(data []byte) error) error {
	s.lock(name)
	defer s.unlock(name)

	f, err := os.Open(s.path(name))
	if err != nil {
		return errors.Wrap(err, "open file error")
	}

	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return errors.Wrap(err, "read file error")
	}
	return callback(data)
}

// path имя объекта не может выйти за пределы rootDir
func (s *FileStorage) path(name string) string {
	return filepath.Join(s.rootDir, filepath.Base(name)) + ".yaml"
}

func (s *FileStorage) lock(key string) {
	l, _ := s.mx.LoadOrStore(key, &sync.Mutex{})
	l.(*sync.Mutex).Lock()
}

func (s *FileStorage) unlock(key string) {
	l, _ := s.mx.LoadOrStore(key, &sync.Mutex{})
	l.(*sync.Mutex).Unlock()
}
