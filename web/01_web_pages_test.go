// /home/krylon/go/src/github.com/blicero/minimaws/web/01_web_pages_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 24. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-08-24 19:03:12 krylon>

package web

import (
	"net/http"
	"strings"
	"testing"
)

func TestStatusCodes(t *testing.T) {
	if srv == nil {
		t.SkipNow()
	}

	type testCase struct {
		path   string
		status int
	}

	var cases = []testCase{
		{"/", 403},
		{"/machine", 403},
		{"/machine/", 403},
		{"/static", 403},
		{"/static/", 403},
		{"/rpc", 403},
		{"/rpc/", 403},
		{"/rpc/bios", 403},
		{"/rpc/flags", 403},
		{"/rpc/slots/", 403},
		{"/rpc/softwarelists", 403},
		{"/bogus", 404},
		{"/machine/nosuch", 404},
		{"/static/nosuch.js", 404},
		{"/rpc/nosuch", 404},
		{"/rpc/nosuch/alpha", 404},
		{"/rpc/bios/nosuch", 404},
		{"/machine/alpha", 200},
		{"/sourcefile", 200},
		{"/softwarelist", 200},
		{"/romident", 200},
	}

	for _, c := range cases {
		var res = get(c.path)

		if res.Code != c.status {
			t.Errorf("GET %s returned status %d, expected %d",
				c.path,
				res.Code,
				c.status)
		}

		if cc := res.Header().Get("Cache-Control"); cc != cacheControl {
			t.Errorf("GET %s returned Cache-Control %q, expected %q",
				c.path,
				cc,
				cacheControl)
		}
	}
} // func TestStatusCodes(t *testing.T)

func TestMethodNotAllowed(t *testing.T) {
	if srv == nil {
		t.SkipNow()
	}

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		var res = request(method, "/machine/alpha")

		if res.Code != 405 {
			t.Errorf("%s /machine/alpha returned status %d, expected 405",
				method,
				res.Code)
		} else if accept := res.Header().Get("Accept"); accept != "GET, HEAD, OPTIONS" {
			t.Errorf("%s /machine/alpha returned Accept %q",
				method,
				accept)
		}
	}
} // func TestMethodNotAllowed(t *testing.T)

func TestStaticFile(t *testing.T) {
	if srv == nil {
		t.SkipNow()
	}

	var res = get("/static/common.js")

	if res.Code != 200 {
		t.Fatalf("GET /static/common.js returned status %d",
			res.Code)
	} else if ctype := res.Header().Get("Content-Type"); ctype != "text/javascript" {
		t.Errorf("GET /static/common.js returned Content-Type %q",
			ctype)
	} else if !strings.Contains(res.Body.String(), "make_table_sortable") {
		t.Error("common.js does not look like the shipped asset")
	}
} // func TestStaticFile(t *testing.T)

func TestMachinePage(t *testing.T) {
	if srv == nil {
		t.SkipNow()
	}

	var res = get("/machine/alpha")

	if res.Code != 200 {
		t.Fatalf("GET /machine/alpha returned status %d",
			res.Code)
	}

	var body = res.Body.String()

	for _, fragment := range []string{
		"Alpha One",
		"drivers/alpha.cpp",
		"alphab",     // clone table
		"sercard",    // devices referenced
		"slot_info",  // embedded slot tree
		"Serial Card",
		"64K",
		"Standard",
		"alpha_cart",
	} {
		if !strings.Contains(body, fragment) {
			t.Errorf("Machine page is missing %q",
				fragment)
		}
	}

	// The shadowed slot must not surface in the embedded slot tree.
	if strings.Contains(body, "exp:serial:port") {
		t.Error("Machine page leaks a shadowed slot")
	}
} // func TestMachinePage(t *testing.T)

func TestMachinePageClone(t *testing.T) {
	if srv == nil {
		t.SkipNow()
	}

	var res = get("/machine/alphab")

	if res.Code != 200 {
		t.Fatalf("GET /machine/alphab returned status %d",
			res.Code)
	}

	var body = res.Body.String()

	// The parent machine row links to alpha with its description.
	if !strings.Contains(body, "/machine/alpha") {
		t.Error("Clone page does not link to its parent")
	} else if !strings.Contains(body, "Alpha One") {
		t.Error("Clone page does not name its parent")
	}
} // func TestMachinePageClone(t *testing.T)

func TestSourcefilePages(t *testing.T) {
	if srv == nil {
		t.SkipNow()
	}

	var res = get("/sourcefile")

	if res.Code != 200 {
		t.Fatalf("GET /sourcefile returned status %d",
			res.Code)
	} else if body := res.Body.String(); !strings.Contains(body, "drivers/alpha.cpp") {
		t.Error("Source file listing is missing drivers/alpha.cpp")
	} else if !strings.Contains(body, "shared/cards.cpp") {
		t.Error("Source file listing is missing shared/cards.cpp")
	}

	if res = get("/sourcefile/drivers/alpha.cpp"); res.Code != 200 {
		t.Fatalf("GET /sourcefile/drivers/alpha.cpp returned status %d",
			res.Code)
	} else if body := res.Body.String(); !strings.Contains(body, "alpha") {
		t.Error("Source file page is missing its machines")
	}

	// A directory name falls back to a listing of the files below it.
	if res = get("/sourcefile/drivers"); res.Code != 200 {
		t.Fatalf("GET /sourcefile/drivers returned status %d",
			res.Code)
	} else if body := res.Body.String(); !strings.Contains(body, "drivers/alpha.cpp") {
		t.Error("Directory listing is missing drivers/alpha.cpp")
	} else if strings.Contains(body, "shared/cards.cpp") {
		t.Error("Directory listing includes files outside the directory")
	}

	if res = get("/sourcefile/nosuchdir"); res.Code != 404 {
		t.Errorf("GET /sourcefile/nosuchdir returned status %d, expected 404",
			res.Code)
	}
} // func TestSourcefilePages(t *testing.T)

func TestSoftwareListPages(t *testing.T) {
	if srv == nil {
		t.SkipNow()
	}

	var res = get("/softwarelist")

	if res.Code != 200 {
		t.Fatalf("GET /softwarelist returned status %d",
			res.Code)
	} else if !strings.Contains(res.Body.String(), "alpha_cart") {
		t.Error("Software list index is missing alpha_cart")
	}

	if res = get("/softwarelist/alpha_cart"); res.Code != 200 {
		t.Fatalf("GET /softwarelist/alpha_cart returned status %d",
			res.Code)
	} else if !strings.Contains(res.Body.String(), "Game One") {
		t.Error("Software list page is missing Game One")
	}

	// A prefix of a known list falls back to a filtered index.
	if res = get("/softwarelist/alpha"); res.Code != 200 {
		t.Fatalf("GET /softwarelist/alpha returned status %d",
			res.Code)
	} else if !strings.Contains(res.Body.String(), "alpha_cart") {
		t.Error("Filtered index is missing alpha_cart")
	}

	if res = get("/softwarelist/nosuch"); res.Code != 404 {
		t.Errorf("GET /softwarelist/nosuch returned status %d, expected 404",
			res.Code)
	}
} // func TestSoftwareListPages(t *testing.T)

func TestSoftwarePage(t *testing.T) {
	if srv == nil {
		t.SkipNow()
	}

	var res = get("/softwarelist/alpha_cart/game1")

	if res.Code != 200 {
		t.Fatalf("GET /softwarelist/alpha_cart/game1 returned status %d",
			res.Code)
	}

	var body = res.Body.String()

	for _, fragment := range []string{
		"Game One",
		"Krylon Data",
		"Cartridge",
		"game1.bin",
		"31337157", // crc of the lone dump
	} {
		if !strings.Contains(body, fragment) {
			t.Errorf("Software page is missing %q",
				fragment)
		}
	}

	if res = get("/softwarelist/alpha_cart/nosuch"); res.Code != 404 {
		t.Errorf("GET /softwarelist/alpha_cart/nosuch returned status %d, expected 404",
			res.Code)
	}
} // func TestSoftwarePage(t *testing.T)
