package loader

import (
	"strings"

	m "torment.dev/pkg/torment/internal/model"
)

const (
	// DefaultExtension is the suffix a file needs to be considered a source file.
	DefaultExtension = ".go"
	// DefaultPackageMarker is the file name that stands for its directory's package.
	DefaultPackageMarker = "doc.go"
)

// Options controls how files are turned into module identifiers and ordered.
type Options struct {
	Extension     string
	PackageMarker string
	// Compare orders identifiers before loading; the sort is stable.
	Compare func(a, b string) int
}

// Option mutates Options.
type Option func(*Options)

// WithExtension sets the source file extension, e.g. ".go".
func WithExtension(ext string) Option {
	return func(o *Options) {
		o.Extension = ext
	}
}

// WithPackageMarker sets the file name that is dropped from paths, e.g. "doc.go".
func WithPackageMarker(name string) Option {
	return func(o *Options) {
		o.PackageMarker = name
	}
}

// WithSort orders identifiers with compare instead of plain string order.
func WithSort(compare func(a, b string) int) Option {
	return func(o *Options) {
		o.Compare = compare
	}
}

// ByDepth orders shallower identifiers first and falls back to string order.
func ByDepth(a, b string) int {
	if da, db := m.ModuleID(a).Depth(), m.ModuleID(b).Depth(); da != db {
		return da - db
	}

	return strings.Compare(a, b)
}

func buildOptions(opts []Option) Options {
	o := Options{
		Extension:     DefaultExtension,
		PackageMarker: DefaultPackageMarker,
		Compare:       strings.Compare,
	}

	for _, opt := range opts {
		opt(&o)
	}

	if o.Compare == nil {
		o.Compare = strings.Compare
	}

	return o
}
