// Package media stores uploaded listing attachments on the local filesystem.
package media

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/valyala/fasthttp"
	"golang.org/x/text/unicode/norm"
)

var ErrEmptyFilename = errors.New("filename is empty after sanitizing")

// Kind selects the upload subdirectory.
type Kind string

const (
	KindImage Kind = "images"
	KindVideo Kind = "videos"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// Store saves files under <root>/uploads/<kind>. Files with the same
// sanitized name replace each other.
type Store struct {
	root string
}

// NewStore creates the upload directories if they are missing.
func NewStore(root string) (*Store, error) {
	for _, kind := range []Kind{KindImage, KindVideo} {
		if err := os.MkdirAll(filepath.Join(root, "uploads", string(kind)), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory: %w", err)
		}
	}
	return &Store{root: root}, nil
}

func (s *Store) Root() string {
	return s.root
}

// Save writes fh and returns its path relative to the store root, e.g.
// "uploads/images/flat.jpg".
func (s *Store) Save(kind Kind, fh *multipart.FileHeader) (string, error) {
	name, err := SecureFilename(fh.Filename)
	if err != nil {
		return "", fmt.Errorf("%w: %q", err, fh.Filename)
	}

	rel := path.Join("uploads", string(kind), name)
	if err := fasthttp.SaveMultipartFile(fh, filepath.Join(s.root, filepath.FromSlash(rel))); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", kind, err)
	}
	return rel, nil
}

// SecureFilename reduces name to a plain ASCII file name that cannot
// escape its directory.
func SecureFilename(name string) (string, error) {
	var b strings.Builder
	for _, r := range norm.NFKD.String(name) {
		if r < 0x80 {
			b.WriteRune(r)
		}
	}

	folded := strings.NewReplacer("/", " ", `\`, " ").Replace(b.String())
	folded = strings.Join(strings.Fields(folded), "_")
	folded = unsafeChars.ReplaceAllString(folded, "")
	folded = strings.Trim(folded, "._")

	if folded == "" {
		return "", ErrEmptyFilename
	}
	return folded, nil
}
