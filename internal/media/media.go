package media

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var ErrMissing = errors.New("media not found")

// Kind tells the client how to fetch a reference.
type Kind string

const (
	KindRemote Kind = "remote"
	KindLocal  Kind = "local"
)

// Ref is a resolved audio or image reference.
type Ref struct {
	Source string `json:"source"`
	Kind   Kind   `json:"kind"`
	URL    string `json:"url"`
}

// Resolver maps bank media references to fetchable URLs. Values starting
// with "http" are passed through; anything else is a path under base,
// served below prefix.
type Resolver struct {
	base   string
	prefix string
}

func NewResolver(base, prefix string) *Resolver {
	return &Resolver{base: base, prefix: "/" + strings.Trim(prefix, "/")}
}

// Resolve returns false for an empty source. A local path that does not
// exist yields ErrMissing so callers can surface a warning instead of
// failing the request.
func (r *Resolver) Resolve(src string) (Ref, bool, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return Ref{}, false, nil
	}
	if strings.HasPrefix(src, "http") {
		return Ref{Source: src, Kind: KindRemote, URL: src}, true, nil
	}

	rel := clean(src)
	ref := Ref{Source: src, Kind: KindLocal, URL: r.prefix + "/" + rel}
	info, err := os.Stat(filepath.Join(r.base, filepath.FromSlash(rel)))
	if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
		return ref, true, fmt.Errorf("%w: %s", ErrMissing, src)
	}
	if err != nil {
		return ref, true, fmt.Errorf("stat %s: %w", src, err)
	}
	return ref, true, nil
}

// Handler serves the files under base at prefix.
func (r *Resolver) Handler() http.Handler {
	return http.StripPrefix(r.prefix, http.FileServer(http.Dir(r.base)))
}

// Prefix is the URL path the handler is mounted on.
func (r *Resolver) Prefix() string {
	return r.prefix
}

// clean keeps relative references from escaping the media directory.
func clean(src string) string {
	return strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(src)), "/")
}
