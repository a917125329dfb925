// Package filestore локальное файловое хранилище вложений (директория на диске вместо S3)
package filestore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound возвращается, когда файл по ключу не найден
var ErrNotFound = errors.New("filestore: file not found")

// ErrInvalidKey возвращается при некорректном ключе (выход за пределы хранилища)
var ErrInvalidKey = errors.New("filestore: invalid key")

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// Store файловое хранилище в заданной директории
type Store struct {
	baseDir string
}

// New создает хранилище, при необходимости создавая базовую директорию
func New(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: failed to create base directory: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

// Save сохраняет содержимое r под новым ключом вида <category>/<uuid><ext>
// Расширение берется из исходного имени файла
func (s *Store) Save(category, filename string, r io.Reader) (string, error) {
	category = unsafeChars.ReplaceAllString(category, "_")
	ext := unsafeChars.ReplaceAllString(filepath.Ext(filename), "_")
	key := filepath.Join(category, uuid.NewString()+ext)

	path := filepath.Join(s.baseDir, key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("filestore: failed to create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("filestore: failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("filestore: failed to write file: %w", err)
	}

	return filepath.ToSlash(key), nil
}

// Open открывает файл по ключу
func (s *Store) Open(key string) (io.ReadCloser, error) {
	path, err := s.resolve(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("filestore: failed to open file: %w", err)
	}
	return f, nil
}

// Remove удаляет файл по ключу, отсутствие файла не считается ошибкой
func (s *Store) Remove(key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("filestore: failed to remove file: %w", err)
	}
	return nil
}

// resolve проверяет, что ключ не выходит за пределы базовой директории
func (s *Store) resolve(key string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(key))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", ErrInvalidKey
	}
	return filepath.Join(s.baseDir, cleaned), nil
}
