// Package model defines the value types shared by the discovery layers.
package model

import "strings"

// Path represents a file system path.
type Path string

// ModuleID is a dotted identifier naming a loadable unit, e.g. "fixtures.http.client".
type ModuleID string

// Segments splits the identifier on dots.
func (id ModuleID) Segments() []string {
	if id == "" {
		return nil
	}

	return strings.Split(string(id), ".")
}

// Depth returns the number of dot-separated segments.
func (id ModuleID) Depth() int {
	return len(id.Segments())
}

// SourceFile is a candidate file found while walking a directory tree.
type SourceFile struct {
	Path Path
	// Root is the directory the walk started from, exactly as the caller gave it.
	Root Path
}
