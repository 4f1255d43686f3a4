package storage

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"
)

// AferoStore serves the site's static assets from an afero filesystem:
// the OS directory in development, the embedded copy in a packaged build,
// and an in-memory filesystem in tests.
type AferoStore struct {
	fs afero.Fs
}

// NewAferoStore creates a new AferoStore.
func NewAferoStore(fs afero.Fs) *AferoStore {
	return &AferoStore{fs: fs}
}

// NewDirStore roots a read-only store at dir on disk.
func NewDirStore(dir string) *AferoStore {
	return NewAferoStore(afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir)))
}

// NewEmbeddedStore serves sub from an embedded filesystem.
func NewEmbeddedStore(embedded fs.FS, sub string) (*AferoStore, error) {
	subFS, err := fs.Sub(embedded, sub)
	if err != nil {
		return nil, fmt.Errorf("failed to create sub-filesystem for embedded assets: %w", err)
	}
	return NewAferoStore(afero.FromIOFS{FS: subFS}), nil
}

// Open opens an asset for reading.
func (s *AferoStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return s.fs.OpenFile(clean(name), os.O_RDONLY, 0)
}

// Exists reports whether an asset is present.
func (s *AferoStore) Exists(name string) bool {
	ok, err := afero.Exists(s.fs, clean(name))
	return err == nil && ok
}

// Handler serves the store over HTTP. Mount it behind the URL prefix that
// callers strip before the request reaches the handler.
func (s *AferoStore) Handler() http.Handler {
	return http.FileServer(afero.NewHttpFs(s.fs))
}

// CheckURLPath verifies that a public URL such as /static/img/x.svg points at
// an asset in this store, given the prefix the store is mounted under.
func (s *AferoStore) CheckURLPath(urlPath, prefix string) error {
	if !strings.HasPrefix(urlPath, prefix) {
		return fmt.Errorf("asset %q is not served under %q", urlPath, prefix)
	}
	name := strings.TrimPrefix(urlPath, prefix)
	if !s.Exists(name) {
		return fmt.Errorf("asset %q not found", urlPath)
	}
	return nil
}

// clean makes names relative so BasePathFs and io/fs both accept them.
func clean(name string) string {
	return strings.TrimPrefix(path.Clean("/"+name), "/")
}
