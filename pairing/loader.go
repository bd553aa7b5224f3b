package pairing

import (
	"context"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/umldiff/diagram"
)

// DefaultMaxSize limits a single loaded file
const DefaultMaxSize = 5 * 1024 * 1024

// Loader reads diagram files from any afs supported location
type Loader struct {
	fs         afs.Service
	maxSize    int64
	extensions []string
}

// LoaderOption represents loader option
type LoaderOption func(l *Loader)

// WithMaxSize sets file size limit in bytes
func WithMaxSize(size int64) LoaderOption {
	return func(l *Loader) {
		l.maxSize = size
	}
}

// WithExtensions restricts loaded files to given extensions
func WithExtensions(extensions ...string) LoaderOption {
	return func(l *Loader) {
		l.extensions = extensions
	}
}

// NewLoader creates a loader
func NewLoader(opts ...LoaderOption) *Loader {
	ret := &Loader{fs: afs.New(), maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Load reads a single file or every matching file directly under a folder, sorted by label
func (l *Loader) Load(ctx context.Context, URL string) ([]*File, error) {
	object, err := l.fs.Object(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to locate %v", URL)
	}
	var objects []storage.Object
	if object.IsDir() {
		if objects, err = l.fs.List(ctx, URL); err != nil {
			return nil, errors.Wrapf(err, "failed to list %v", URL)
		}
	} else {
		objects = []storage.Object{object}
	}

	var files []*File
	for _, candidate := range objects {
		if candidate.IsDir() || !l.accepts(candidate.Name()) {
			continue
		}
		file, err := l.load(ctx, candidate)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Label < files[j].Label
	})
	taken := map[string]bool{}
	for _, file := range files {
		file.Name = uniqueName(Sanitize(file.Label), taken)
	}
	return files, nil
}

func (l *Loader) load(ctx context.Context, object storage.Object) (*File, error) {
	if l.maxSize > 0 && object.Size() > l.maxSize {
		return nil, &FileTooLargeError{Name: object.Name(), Size: object.Size(), Limit: l.maxSize}
	}
	data, err := l.fs.DownloadWithURL(ctx, object.URL())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to download %v", object.URL())
	}
	if size := int64(len(data)); l.maxSize > 0 && size > l.maxSize {
		return nil, &FileTooLargeError{Name: object.Name(), Size: size, Limit: l.maxSize}
	}
	return &File{
		Label:    object.Name(),
		URL:      object.URL(),
		Size:     int64(len(data)),
		Checksum: diagram.HashString(data),
		Data:     data,
	}, nil
}

func (l *Loader) accepts(name string) bool {
	if len(l.extensions) == 0 {
		return true
	}
	ext := strings.ToLower(path.Ext(name))
	for _, candidate := range l.extensions {
		if strings.ToLower(candidate) == ext {
			return true
		}
	}
	return false
}
