package loader

import (
	"path/filepath"
	"strings"
)

// ModuleName converts a file path into a dotted module identifier.
//
// pathPrefix is removed from path (first occurrence), the package marker file
// is dropped, the extension is removed and separators become dots. The
// result is prefixed with modulePrefix. ok is false for files without the
// source extension and for paths that reduce to nothing, such as a package
// marker at the prefix root.
//
// Segments repeated anywhere in the identifier are kept only at their first
// occurrence, so "a.b.a.c" becomes "a.b.c". This also collapses a directory
// that shares its parent's name.
func ModuleName(path, pathPrefix, modulePrefix string, opts ...Option) (string, bool) {
	o := buildOptions(opts)

	return moduleName(path, pathPrefix, modulePrefix, o)
}

func moduleName(path, pathPrefix, modulePrefix string, o Options) (string, bool) {
	if !strings.HasSuffix(path, o.Extension) {
		return "", false
	}

	name := strings.Replace(path, pathPrefix, "", 1)
	name = filepath.ToSlash(name)
	name = trimPackageMarker(name, o.PackageMarker)
	name = strings.TrimSuffix(name, o.Extension)
	name = strings.ReplaceAll(name, "/", ".")
	name = strings.Trim(name, ".")

	if name == "" {
		return "", false
	}

	if !strings.HasSuffix(modulePrefix, ".") {
		modulePrefix += "."
	}

	name = uniqueSegments(modulePrefix + name)
	if name == "" {
		return "", false
	}

	return name, true
}

func trimPackageMarker(name, marker string) string {
	if marker == "" {
		return name
	}

	if name == marker || strings.HasSuffix(name, "/"+marker) {
		return strings.TrimSuffix(name, marker)
	}

	return name
}

// uniqueSegments drops every dot segment already seen earlier in id.
func uniqueSegments(id string) string {
	segments := strings.Split(id, ".")
	seen := make(map[string]struct{}, len(segments))
	kept := segments[:0]

	for _, segment := range segments {
		if _, ok := seen[segment]; ok {
			continue
		}

		seen[segment] = struct{}{}
		kept = append(kept, segment)
	}

	return strings.Join(kept, ".")
}
