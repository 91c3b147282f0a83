// /home/krylon/go/src/github.com/blicero/minimaws/logdomain/logdomain.go
// -*- mode: go; coding: utf-8; -*-
// Created on 07. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-06-18 19:04:10 krylon>

// Package logdomain provides symbolic constants to identify the various
// "areas" of the application that want to do logging.
package logdomain

//go:generate stringer -type=ID

type ID uint8

const (
	Common ID = iota
	Database
	Ingest
	Ident
	Verbs
	Web
)

// AllDomains returns a slice of all log domains.
func AllDomains() []ID {
	return []ID{
		Common,
		Database,
		Ingest,
		Ident,
		Verbs,
		Web,
	}
} // func AllDomains() []ID
