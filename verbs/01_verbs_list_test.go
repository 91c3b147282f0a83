// /home/krylon/go/src/github.com/blicero/minimaws/verbs/01_verbs_list_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 17. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-08-17 17:31:02 krylon>

package verbs

import (
	"bytes"
	"testing"
)

func newTestRunner(t *testing.T) (*Runner, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var r, err = New(db)

	if err != nil {
		t.Fatalf("Cannot create Runner: %s", err.Error())
	}

	var out, errOut bytes.Buffer
	r.SetOutput(&out, &errOut)

	return r, &out, &errOut
} // func newTestRunner(t *testing.T) (*Runner, *bytes.Buffer, *bytes.Buffer)

func TestListFull(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var r, out, errOut = newTestRunner(t)

	const expected = "Name:             Description:\n" +
		"alpha             \"Alpha One\"\n" +
		"alphab            \"Alpha One (rev B)\"\n"

	if err := r.ListFull("alpha*"); err != nil {
		t.Fatalf("ListFull failed: %s", err.Error())
	} else if out.String() != expected {
		t.Errorf("Unexpected output:\n%q\nExpected:\n%q",
			out.String(),
			expected)
	} else if errOut.Len() != 0 {
		t.Errorf("Unexpected error output: %q", errOut.String())
	}
} // func TestListFull(t *testing.T)

func TestListFullNoMatch(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var r, out, errOut = newTestRunner(t)

	if err := r.ListFull("zzz*"); err != nil {
		t.Fatalf("ListFull failed: %s", err.Error())
	} else if out.Len() != 0 {
		t.Errorf("Unexpected output: %q", out.String())
	} else if errOut.String() != "No matching systems found for 'zzz*'\n" {
		t.Errorf("Unexpected error output: %q", errOut.String())
	}
} // func TestListFullNoMatch(t *testing.T)

func TestListSource(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var r, out, _ = newTestRunner(t)

	const expected = "alpha            drivers/alpha.cpp\n" +
		"alphab           drivers/alpha.cpp\n" +
		"beta             beta.cpp\n"

	if err := r.ListSource(""); err != nil {
		t.Fatalf("ListSource failed: %s", err.Error())
	} else if out.String() != expected {
		t.Errorf("Unexpected output:\n%q\nExpected:\n%q",
			out.String(),
			expected)
	}
} // func TestListSource(t *testing.T)

func TestListClones(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var r, out, errOut = newTestRunner(t)

	const expected = "Name:            Clone of:\n" +
		"alphab           alpha\n"

	if err := r.ListClones("alpha*"); err != nil {
		t.Fatalf("ListClones failed: %s", err.Error())
	} else if out.String() != expected {
		t.Errorf("Unexpected output:\n%q\nExpected:\n%q",
			out.String(),
			expected)
	} else if errOut.Len() != 0 {
		t.Errorf("Unexpected error output: %q", errOut.String())
	}
} // func TestListClones(t *testing.T)

func TestListClonesNoneAreClones(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var r, out, errOut = newTestRunner(t)

	if err := r.ListClones("beta"); err != nil {
		t.Fatalf("ListClones failed: %s", err.Error())
	} else if out.Len() != 0 {
		t.Errorf("Unexpected output: %q", out.String())
	} else if errOut.String() != "Found 1 match(es) for 'beta' but none were clones\n" {
		t.Errorf("Unexpected error output: %q", errOut.String())
	}
} // func TestListClonesNoneAreClones(t *testing.T)

func TestListClonesNoMatch(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var r, _, errOut = newTestRunner(t)

	if err := r.ListClones("zzz*"); err != nil {
		t.Fatalf("ListClones failed: %s", err.Error())
	} else if errOut.String() != "No matching systems found for 'zzz*'\n" {
		t.Errorf("Unexpected error output: %q", errOut.String())
	}
} // func TestListClonesNoMatch(t *testing.T)

func TestListBrothers(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var r, out, _ = newTestRunner(t)

	const expected = "Source file:         Name:            Parent:\n" +
		"drivers/alpha.cpp    alpha            \n" +
		"drivers/alpha.cpp    alphab           alpha\n"

	if err := r.ListBrothers("alphab"); err != nil {
		t.Fatalf("ListBrothers failed: %s", err.Error())
	} else if out.String() != expected {
		t.Errorf("Unexpected output:\n%q\nExpected:\n%q",
			out.String(),
			expected)
	}
} // func TestListBrothers(t *testing.T)

func TestListAffected(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var r, out, _ = newTestRunner(t)

	const expected = "Name:             Description:\n" +
		"alpha             \"Alpha One\"\n" +
		"alphab            \"Alpha One (rev B)\"\n"

	if err := r.ListAffected("alpha.cpp"); err != nil {
		t.Fatalf("ListAffected failed: %s", err.Error())
	} else if out.String() != expected {
		t.Errorf("Unexpected output:\n%q\nExpected:\n%q",
			out.String(),
			expected)
	}
} // func TestListAffected(t *testing.T)

func TestListAffectedNoMatch(t *testing.T) {
	if db == nil {
		t.SkipNow()
	}

	var r, _, errOut = newTestRunner(t)

	if err := r.ListAffected("gamma.cpp"); err != nil {
		t.Fatalf("ListAffected failed: %s", err.Error())
	} else if errOut.String() != "No matching systems found for 'gamma.cpp'\n" {
		t.Errorf("Unexpected error output: %q", errOut.String())
	}
} // func TestListAffectedNoMatch(t *testing.T)
