package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tienchinh21/bkasim-cms/internal/domain"
)

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

// LocalStorage keeps uploads on disk under basePath and addresses them by a
// public URL prefix served by the router.
type LocalStorage struct {
	basePath  string
	urlPrefix string
	maxSize   int64
}

func NewLocalStorage(basePath, urlPrefix string, maxSize int64) *LocalStorage {
	return &LocalStorage{
		basePath:  basePath,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
		maxSize:   maxSize,
	}
}

// Save writes the upload to <basePath>/<yyyy/mm>/<uuid><ext> and returns its URL.
func (s *LocalStorage) Save(_ context.Context, upload domain.Upload) (string, error) {
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: định dạng ảnh %q không được hỗ trợ", domain.ErrValidation, ext)
	}
	if s.maxSize > 0 && upload.Size > s.maxSize {
		return "", fmt.Errorf("%w: ảnh vượt quá %d MB", domain.ErrValidation, s.maxSize>>20)
	}

	rel := path.Join(time.Now().UTC().Format("2006/01"), uuid.New().String()+ext)
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	src := upload.Content
	if s.maxSize > 0 {
		src = io.LimitReader(upload.Content, s.maxSize+1)
	}
	n, err := io.Copy(file, src)
	closeErr := file.Close()
	if err == nil {
		err = closeErr
	}
	if err == nil && s.maxSize > 0 && n > s.maxSize {
		err = fmt.Errorf("%w: ảnh vượt quá %d MB", domain.ErrValidation, s.maxSize>>20)
	}
	if err != nil {
		_ = os.Remove(fullPath)
		return "", err
	}

	return s.urlPrefix + "/" + rel, nil
}

// Delete removes the file behind url. Unknown or foreign URLs are ignored.
func (s *LocalStorage) Delete(_ context.Context, url string) error {
	rel, ok := strings.CutPrefix(url, s.urlPrefix+"/")
	if !ok || rel == "" {
		return nil
	}
	clean := path.Clean("/" + rel)[1:]
	if clean == "" || strings.HasPrefix(clean, "..") {
		return nil
	}

	err := os.Remove(filepath.Join(s.basePath, filepath.FromSlash(clean)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}
