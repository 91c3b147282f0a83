// /home/krylon/go/src/github.com/blicero/minimaws/verbs/verbs.go
// -*- mode: go; coding: utf-8; -*-
// Created on 17. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-08-17 16:28:44 krylon>

// Package verbs implements the query verbs of the command line interface.
// Output formats are fixed and meant to be diff-stable across runs.
package verbs

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/blicero/minimaws/common"
	"github.com/blicero/minimaws/database"
	"github.com/blicero/minimaws/ident"
	"github.com/blicero/minimaws/logdomain"
	"github.com/blicero/minimaws/model"
)

// Runner executes query verbs against an open database.
type Runner struct {
	db  *database.Database
	log *log.Logger
	out io.Writer
	err io.Writer
}

// New creates a Runner writing to stdout and stderr.
func New(db *database.Database) (*Runner, error) {
	var (
		err error
		r   = &Runner{
			db:  db,
			out: os.Stdout,
			err: os.Stderr,
		}
	)

	if r.log, err = common.GetLogger(logdomain.Verbs); err != nil {
		return nil, err
	}

	return r, nil
} // func New(db *database.Database) (*Runner, error)

// SetOutput redirects the Runner's output streams.
func (r *Runner) SetOutput(out, errOut io.Writer) {
	r.out = out
	r.err = errOut
} // func (r *Runner) SetOutput(out, errOut io.Writer)

func (r *Runner) noMatch(pattern string) {
	fmt.Fprintf(r.err, "No matching systems found for '%s'\n",
		pattern)
} // func (r *Runner) noMatch(pattern string)

// ListFull prints short name and description of the systems matching the
// pattern.
func (r *Runner) ListFull(pattern string) error {
	var machines, err = r.db.ListFull(pattern)

	if err != nil {
		return err
	} else if len(machines) == 0 {
		r.noMatch(pattern)
		return nil
	}

	fmt.Fprint(r.out, "Name:             Description:\n")
	for _, m := range machines {
		fmt.Fprintf(r.out, "%-16s  \"%s\"\n",
			m.Shortname,
			m.Description)
	}

	return nil
} // func (r *Runner) ListFull(pattern string) error

// ListSource prints short name and defining source file of the systems
// matching the pattern.
func (r *Runner) ListSource(pattern string) error {
	var machines, err = r.db.ListSource(pattern)

	if err != nil {
		return err
	} else if len(machines) == 0 {
		r.noMatch(pattern)
		return nil
	}

	for _, m := range machines {
		fmt.Fprintf(r.out, "%-16s %s\n",
			m.Shortname,
			m.Sourcefile)
	}

	return nil
} // func (r *Runner) ListSource(pattern string) error

// ListClones prints the clones whose name or parent matches the pattern. If
// the pattern matched systems but none of them are clones, that is pointed
// out instead.
func (r *Runner) ListClones(pattern string) error {
	var clones, err = r.db.ListClones(pattern)

	if err != nil {
		return err
	} else if len(clones) == 0 {
		var cnt int64

		if cnt, err = r.db.SystemCount(pattern); err != nil {
			return err
		} else if cnt > 0 {
			fmt.Fprintf(r.err, "Found %d match(es) for '%s' but none were clones\n",
				cnt,
				pattern)
		} else {
			r.noMatch(pattern)
		}

		return nil
	}

	fmt.Fprint(r.out, "Name:            Clone of:\n")
	for _, c := range clones {
		fmt.Fprintf(r.out, "%-16s %s\n",
			c.Shortname,
			c.Parent)
	}

	return nil
} // func (r *Runner) ListClones(pattern string) error

// ListBrothers prints all systems defined in the same source files as the
// systems matching the pattern.
func (r *Runner) ListBrothers(pattern string) error {
	var brothers, err = r.db.ListBrothers(pattern)

	if err != nil {
		return err
	} else if len(brothers) == 0 {
		r.noMatch(pattern)
		return nil
	}

	fmt.Fprintf(r.out, "%-20s %-16s %s\n",
		"Source file:",
		"Name:",
		"Parent:")
	for _, b := range brothers {
		fmt.Fprintf(r.out, "%-20s %-16s %s\n",
			b.Sourcefile,
			b.Shortname,
			b.Parent)
	}

	return nil
} // func (r *Runner) ListBrothers(pattern string) error

// ListAffected prints the runnable systems affected by changes to source
// files matching the given patterns.
func (r *Runner) ListAffected(patterns ...string) error {
	var machines, err = r.db.ListAffected(patterns...)

	if err != nil {
		return err
	} else if len(machines) == 0 {
		r.noMatch(strings.Join(patterns, " "))
		return nil
	}

	fmt.Fprint(r.out, "Name:             Description:\n")
	for _, m := range machines {
		fmt.Fprintf(r.out, "%-16s  \"%s\"\n",
			m.Shortname,
			m.Description)
	}

	return nil
} // func (r *Runner) ListAffected(patterns ...string) error

// RomIdent digests the files reachable from the given paths and reports
// which machines and software parts carry matching dumps. Unmatched files
// are listed with their digests.
func (r *Runner) RomIdent(paths ...string) error {
	var (
		err        error
		scanner    *ident.Scanner
		candidates []ident.Candidate
	)

	if scanner, err = ident.NewScanner(); err != nil {
		return err
	}

	defer scanner.Close() // nolint: errcheck

	if candidates, err = scanner.Walk(paths); err != nil {
		return err
	}

	var unmatched = make([]ident.Candidate, 0, len(candidates))

	for _, c := range candidates {
		var matched bool

		if matched, err = r.identify(c); err != nil {
			return err
		} else if !matched {
			unmatched = append(unmatched, c)
		}
	}

	if len(unmatched) > 0 {
		fmt.Fprint(r.out, "Unmatched:\n")
		for _, c := range unmatched {
			fmt.Fprintf(r.out, "    %s  %s\n",
				c.Path,
				c.Digest.String())
		}
	}

	return nil
} // func (r *Runner) RomIdent(paths ...string) error

func (r *Runner) identify(c ident.Candidate) (bool, error) {
	var (
		err     error
		matched bool
		dumps   []model.RomDump
		swdumps []model.SoftwareRomDump
	)

	if c.Disk {
		if dumps, err = r.db.DiskDumpsGet(c.SHA1); err != nil {
			return false, err
		} else if swdumps, err = r.db.SoftwareDiskDumpsGet(c.SHA1); err != nil {
			return false, err
		}
	} else {
		if dumps, err = r.db.RomDumpsGet(c.CRC, c.SHA1); err != nil {
			return false, err
		} else if swdumps, err = r.db.SoftwareRomDumpsGet(c.CRC, c.SHA1); err != nil {
			return false, err
		}
	}

	if len(dumps) == 0 && len(swdumps) == 0 {
		return false, nil
	}

	matched = true
	fmt.Fprintf(r.out, "%s\n", c.Path)

	for _, d := range dumps {
		fmt.Fprintf(r.out, "    machine %s (%s): %s%s\n",
			d.Shortname,
			d.Description,
			d.Label,
			badTag(d.Bad))
	}

	for _, d := range swdumps {
		fmt.Fprintf(r.out, "    software %s/%s (%s) %s: %s%s\n",
			d.List,
			d.Software,
			d.SoftwareDesc,
			d.Part,
			d.Label,
			badTag(d.Bad))
	}

	return matched, nil
} // func (r *Runner) identify(c ident.Candidate) (bool, error)

func badTag(bad bool) string {
	if bad {
		return " BAD"
	}

	return ""
} // func badTag(bad bool) string
