// /home/krylon/go/src/github.com/blicero/minimaws/web/tmpl_data.go
// -*- mode: go; coding: utf-8; -*-
// Created on 18. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-08-23 18:40:12 krylon>
//
// This file contains data structures to be passed to HTML templates, plus
// the escaping helpers the templates use. Pages are assembled from plain
// string templates, so every interpolation goes through one of the escape
// functions below.

package web

import (
	"encoding/json"
	"fmt"
	"html"
	"net/url"
	"strings"
	"text/template"

	"github.com/blicero/minimaws/model"
)

// jsEscape makes a string safe inside a single- or double-quoted JS string
// literal.
func jsEscape(s string) string {
	var b strings.Builder

	for _, r := range s {
		switch r {
		case '"', '\'', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case 0:
			b.WriteString("\\0")
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
} // func jsEscape(s string) string

// jsonEncode serializes a value for embedding in an inline script block.
// encoding/json escapes angle brackets and ampersands by default, which is
// what keeps the payload from terminating the script element early.
func jsonEncode(v any) (string, error) {
	var buf, err = json.Marshal(v)

	if err != nil {
		return "", err
	}

	return string(buf), nil
} // func jsonEncode(v any) (string, error)

// commafy renders an integer with thousands separators.
func commafy(n int64) string {
	var s = fmt.Sprintf("%d", n)

	if len(s) <= 3 {
		return s
	}

	var b strings.Builder

	var lead = len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}

	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	return b.String()
} // func commafy(n int64) string

func yesNo(flag bool) string {
	if flag {
		return "Yes"
	}

	return "No"
} // func yesNo(flag bool) string

// pathQuote percent-escapes a URL path, segment by segment, keeping the
// slashes so source file paths stay hierarchical.
func pathQuote(s string) string {
	var parts = strings.Split(s, "/")

	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}

	return strings.Join(parts, "/")
} // func pathQuote(s string) string

var funcmap = template.FuncMap{
	"hesc":    html.EscapeString,
	"uesc":    pathQuote,
	"jsesc":   jsEscape,
	"json":    jsonEncode,
	"commafy": commafy,
	"yesno":   yesNo,
	"join":    strings.Join,
}

type tmplDataBase struct {
	Title string
}

type tmplDataMachine struct {
	tmplDataBase
	Machine       *model.Machine
	CloneofDesc   string
	RomofDesc     string
	Unemulated    []string
	Imperfect     []string
	BiosSets      []model.BiosSet
	RAMOptions    []model.RAMOption
	HaveSlots     bool
	SlotInfo      map[string]*machineDetail
	Clones        []model.MachineBrief
	SoftwareLists []model.MachineSoftwareList
	DevicesRefd   []model.MachineBrief
	CompatSlots   []model.CompatSlot
	ReferencedBy  []model.MachineBrief
}

type tmplDataSourcefileList struct {
	tmplDataBase
	Pattern     string
	Sourcefiles []model.Sourcefile
}

type tmplDataSourcefile struct {
	tmplDataBase
	Filename string
	Machines []model.Machine
}

type tmplDataSoftwareListIndex struct {
	tmplDataBase
	Pattern string
	Lists   []model.SoftwareList
}

type tmplDataSoftwareList struct {
	tmplDataBase
	List     *model.SoftwareList
	Software []model.Software
}

// tmplDataSoftware also carries the parts with their dumps preloaded, the
// template only formats.
type tmplDataSoftware struct {
	tmplDataBase
	List       *model.SoftwareList
	Software   *model.Software
	Info       []model.SoftwareInfo
	SharedFeat []model.SoftwareInfo
	Parts      []softwarePartDetail
}

type softwarePartDetail struct {
	model.SoftwarePart
	Features []model.SoftwareInfo
	Dumps    []model.PartDump
}
