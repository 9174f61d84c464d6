package loader

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModuleName(t *testing.T) {
	root := filepath.Join("/", "srv", "fixtures")

	tests := []struct {
		name   string
		path   string
		prefix string
		base   string
		opts   []Option
		want   string
		wantOK bool
	}{
		{"non source file", filepath.Join(root, "README.md"), root, "torment", nil, "", false},
		{"extension must be a suffix", filepath.Join(root, "x.go.orig"), root, "torment", nil, "", false},
		{"package marker at root", filepath.Join(root, "doc.go"), root, "torment", nil, "", false},
		{"package marker in subdirectory", filepath.Join(root, "http", "doc.go"), root, "torment", nil, "torment.http", true},
		{"plain file", filepath.Join(root, "http", "client.go"), root, "torment", nil, "torment.http.client", true},
		{"module prefix already dotted", filepath.Join(root, "client.go"), root, "torment.", nil, "torment.client", true},
		{"prefix with trailing separator", filepath.Join(root, "client.go"), root + string(filepath.Separator), "torment", nil, "torment.client", true},
		{"marker only as whole file name", filepath.Join(root, "adoc.go"), root, "torment", nil, "torment.adoc", true},
		{"path outside prefix", filepath.Join("other", "client.go"), root, "torment", nil, "torment.other.client", true},
		{"dotted base prefix", filepath.Join(root, "client.go"), root, "suite.fixtures", nil, "suite.fixtures.client", true},
		{
			"global segment dedup",
			filepath.Join(root, "b", "a", "c.go"), root, "a", nil,
			"a.b.c", true,
		},
		{
			"directory sharing its parent's name collapses",
			filepath.Join(root, "cache", "cache", "lru.go"), root, "torment", nil,
			"torment.cache.lru", true,
		},
		{
			"segment equal to the base is dropped",
			filepath.Join(root, "torment", "client.go"), root, "torment", nil,
			"torment.client", true,
		},
		{
			"custom extension and marker",
			filepath.Join(root, "pkg", "__init__.py"), root, "torment",
			[]Option{WithExtension(".py"), WithPackageMarker("__init__.py")},
			"torment.pkg", true,
		},
		{
			"custom extension skips default files",
			filepath.Join(root, "pkg", "client.go"), root, "torment",
			[]Option{WithExtension(".py")},
			"", false,
		},
		{
			"empty marker keeps every file",
			filepath.Join(root, "doc.go"), root, "torment",
			[]Option{WithPackageMarker("")},
			"torment.doc", true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ModuleName(tt.path, tt.prefix, tt.base, tt.opts...)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUniqueSegments(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a.b.c", "a.b.c"},
		{"a.b.a.c", "a.b.c"},
		{"a.a.a", "a"},
		{"x.y.z.y.x.w", "x.y.z.w"},
		{"a", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, uniqueSegments(tt.in))
		})
	}
}

func TestByDepth(t *testing.T) {
	assert.Negative(t, ByDepth("a.z", "a.b.c"))
	assert.Positive(t, ByDepth("a.b.c", "a.z"))
	assert.Negative(t, ByDepth("a.b", "a.c"))
	assert.Zero(t, ByDepth("a.b", "a.b"))
	assert.Negative(t, ByDepth("", "a"))
}
