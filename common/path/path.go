// /home/krylon/go/src/github.com/blicero/minimaws/common/path/path.go
// -*- mode: go; coding: utf-8; -*-
// Created on 07. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-06-18 19:02:41 krylon>

// Package path provides symbolic constants for the well-known files and
// directories the application uses.
package path

//go:generate stringer -type=ID

// ID identifies an application file or directory.
type ID uint8

const (
	Base ID = iota
	Log
	Database
	IdentCache
)

// AllPaths returns a slice of all path IDs.
func AllPaths() []ID {
	return []ID{
		Base,
		Log,
		Database,
		IdentCache,
	}
} // func AllPaths() []ID
