// Package upload stores team images on local disk and hands back the public
// path the static file route serves them under.
package upload

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/DhavalSuthar-24/crickettourney/pkg/apperr"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// MaxImageSize caps a single upload.
const MaxImageSize = 5 << 20

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Store writes uploads below Dir and exposes them under URLPrefix.
type Store struct {
	Dir       string
	URLPrefix string
}

func NewStore(dir, urlPrefix string) *Store {
	return &Store{Dir: dir, URLPrefix: strings.TrimRight(urlPrefix, "/")}
}

// EnsureDir creates the upload directory if it does not exist yet.
func (s *Store) EnsureDir() error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return apperr.Storage(err, "create upload directory")
	}
	return nil
}

// Save copies the file to disk under a random name, keeping the extension.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", apperr.Validation("image file is required")
	}
	if fh.Size > MaxImageSize {
		return "", apperr.Validation("image exceeds %d bytes", MaxImageSize)
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExt[ext] {
		return "", apperr.Validation("image extension %q is not allowed", ext)
	}
	if err := s.EnsureDir(); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	if err := s.copy(fh, filepath.Join(s.Dir, name)); err != nil {
		return "", apperr.Storage(err, "save upload")
	}
	return s.URLPrefix + "/" + name, nil
}

// Remove deletes a previously saved file given its public path. Unknown paths
// are ignored.
func (s *Store) Remove(publicPath string) error {
	if publicPath == "" || !strings.HasPrefix(publicPath, s.URLPrefix+"/") {
		return nil
	}
	name := filepath.Base(publicPath)
	err := os.Remove(filepath.Join(s.Dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return apperr.Storage(err, "remove upload")
	}
	return nil
}

func (s *Store) copy(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := out.ReadFrom(src); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
