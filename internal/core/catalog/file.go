package catalog

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var (
	// ErrNoFile is returned when an image operation has no file selected.
	ErrNoFile = errors.New("no file selected")
	// ErrUnsupportedFile is returned when a file does not look like an image
	// or does not match the configured patterns.
	ErrUnsupportedFile = errors.New("unsupported file")
	// ErrFileTooLarge is returned when a file exceeds the configured size limit.
	ErrFileTooLarge = errors.New("file too large")
)

// File is an image chosen by the user, ready to be uploaded.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// FileRules restricts which files may be picked for upload.
type FileRules struct {
	Patterns []string // doublestar globs matched against the slash-separated path
	MaxBytes int64    // zero means unlimited
}

// Match reports whether path matches any of the rule patterns. An empty
// pattern list matches everything.
func (r FileRules) Match(path string) bool {
	if len(r.Patterns) == 0 {
		return true
	}
	p := filepath.ToSlash(path)
	base := filepath.Base(path)
	for _, pattern := range r.Patterns {
		pattern = strings.ToLower(pattern)
		if ok, _ := doublestar.Match(pattern, strings.ToLower(p)); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, strings.ToLower(base)); ok {
			return true
		}
	}
	return false
}

// LoadFile reads the file at path and checks it against the rules.
func LoadFile(path string, rules FileRules) (File, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return File{}, ErrNoFile
	}

	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	if !rules.Match(path) {
		return File{}, fmt.Errorf("%w: %s does not match %s", ErrUnsupportedFile, filepath.Base(path), strings.Join(rules.Patterns, ", "))
	}

	info, err := os.Stat(path)
	if err != nil {
		return File{}, fmt.Errorf("stat image: %w", err)
	}
	if info.IsDir() {
		return File{}, fmt.Errorf("%w: %s is a directory", ErrUnsupportedFile, path)
	}
	if rules.MaxBytes > 0 && info.Size() > rules.MaxBytes {
		return File{}, fmt.Errorf("%w: %d bytes (limit %d)", ErrFileTooLarge, info.Size(), rules.MaxBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read image: %w", err)
	}

	return NewFile(filepath.Base(path), data)
}

// NewFile wraps raw bytes as an upload, sniffing the content type. Data that
// does not sniff as an image is rejected.
func NewFile(name string, data []byte) (File, error) {
	if len(data) == 0 {
		return File{}, ErrNoFile
	}
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return File{}, fmt.Errorf("%w: %s is %s", ErrUnsupportedFile, name, contentType)
	}
	return File{Name: name, ContentType: contentType, Data: data}, nil
}
