// /home/krylon/go/src/github.com/blicero/minimaws/web/rpc.go
// -*- mode: go; coding: utf-8; -*-
// Created on 18. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-08-24 14:02:55 krylon>
//
// Payload types and builders for the JSON endpoints under /rpc/. The same
// builders feed the JSON embedded in the machine page.

package web

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/blicero/minimaws/model"
)

type biosEntry struct {
	Description string `json:"description"`
	IsDefault   bool   `json:"isdefault"`
}

type flagEntry struct {
	Status  string `json:"status,omitempty"`
	Overall string `json:"overall,omitempty"`
}

type flagsReply struct {
	Features map[string]flagEntry `json:"features"`
}

type slotOptionEntry struct {
	Device      string `json:"device"`
	Description string `json:"description"`
}

type slotsReply struct {
	Defaults map[string]string                     `json:"defaults"`
	Slots    map[string]map[string]slotOptionEntry `json:"slots"`
}

type swListEntry struct {
	Status             string `json:"status"`
	Shortname          string `json:"shortname"`
	Description        string `json:"description"`
	Total              int    `json:"total"`
	Supported          int    `json:"supported"`
	PartiallySupported int    `json:"partiallysupported"`
	Unsupported        int    `json:"unsupported"`
}

type dumpMatch struct {
	Name string `json:"name"`
	Bad  bool   `json:"bad"`
}

type machineMatches struct {
	Description string      `json:"description"`
	Matches     []dumpMatch `json:"matches"`
}

type partMatches struct {
	Description string      `json:"description,omitempty"`
	Matches     []dumpMatch `json:"matches"`
}

type swMatches struct {
	Description string                  `json:"description"`
	Parts       map[string]*partMatches `json:"parts"`
}

type swListMatches struct {
	Description string                `json:"description"`
	Software    map[string]*swMatches `json:"software"`
}

type dumpsReply struct {
	Machines map[string]*machineMatches `json:"machines"`
	Software map[string]*swListMatches  `json:"software"`
}

// machineDetail is the per-machine blob embedded in the machine page for
// client-side slot resolution.
type machineDetail struct {
	Description   string                                `json:"description"`
	Slots         map[string]map[string]slotOptionEntry `json:"slots"`
	Defaults      map[string]string                     `json:"defaults"`
	Bios          map[string]biosEntry                  `json:"bios"`
	Flags         map[string]flagEntry                  `json:"flags"`
	SoftwareLists map[string]swListEntry                `json:"softwarelists"`
}

func statusWord(status int) string {
	switch {
	case status == model.StatusImperfect:
		return "imperfect"
	case status > model.StatusImperfect:
		return "unemulated"
	default:
		return ""
	}
} // func statusWord(status int) string

// removeShadowed drops every key that extends another key with a colon. A
// slot named "exp:card:inner" only exists while the default card sits in
// "exp"; once the user changes that selection the inner slot is gone, so it
// must not offer selections of its own. Softwarelist tags shadow the same
// way.
func removeShadowed[V any](m map[string]V) {
	var prefixes = make([]string, 0, len(m))

	for name := range m {
		prefixes = append(prefixes, name+":")
	}

	for _, prefix := range prefixes {
		for candidate := range m {
			if strings.HasPrefix(candidate, prefix) {
				delete(m, candidate)
			}
		}
	}
} // func removeShadowed[V any](m map[string]V)

func (srv *Server) biosPayload(machine int64) (map[string]biosEntry, error) {
	var sets, err = srv.db.BiosSetsGet(machine)

	if err != nil {
		return nil, err
	}

	var result = make(map[string]biosEntry, len(sets))

	for _, s := range sets {
		result[s.Name] = biosEntry{
			Description: s.Description,
			IsDefault:   s.IsDefault,
		}
	}

	return result, nil
} // func (srv *Server) biosPayload(machine int64) (map[string]biosEntry, error)

func (srv *Server) flagsPayload(machine int64) (*flagsReply, error) {
	var flags, err = srv.db.FeatureFlagsGet(machine)

	if err != nil {
		return nil, err
	}

	var result = flagsReply{Features: make(map[string]flagEntry, len(flags))}

	for _, f := range flags {
		result.Features[f.Feature] = flagEntry{
			Status:  statusWord(f.Status),
			Overall: statusWord(f.Overall),
		}
	}

	return &result, nil
} // func (srv *Server) flagsPayload(machine int64) (*flagsReply, error)

func (srv *Server) slotsPayload(machine int64) (*slotsReply, error) {
	var (
		err      error
		options  []model.SlotOption
		defaults []model.SlotDefault
	)

	if defaults, err = srv.db.SlotDefaultsGet(machine); err != nil {
		return nil, err
	} else if options, err = srv.db.SlotOptionsGet(machine); err != nil {
		return nil, err
	}

	var result = slotsReply{
		Defaults: make(map[string]string, len(defaults)),
		Slots:    make(map[string]map[string]slotOptionEntry),
	}

	for _, d := range defaults {
		result.Defaults[d.Slot] = d.Option
	}

	for _, o := range options {
		var slot = result.Slots[o.Slot]
		if slot == nil {
			slot = make(map[string]slotOptionEntry)
			result.Slots[o.Slot] = slot
		}

		slot[o.Option] = slotOptionEntry{
			Device:      o.Device,
			Description: o.Description,
		}
	}

	removeShadowed(result.Slots)

	return &result, nil
} // func (srv *Server) slotsPayload(machine int64) (*slotsReply, error)

func (srv *Server) softwareListsPayload(machine int64) (map[string]swListEntry, error) {
	var lists, err = srv.db.MachineSoftwareListsGet(machine)

	if err != nil {
		return nil, err
	}

	var result = make(map[string]swListEntry, len(lists))

	for _, l := range lists {
		result[l.Tag] = swListEntry{
			Status:             l.Status,
			Shortname:          l.SoftwareList.Shortname,
			Description:        l.SoftwareList.Description,
			Total:              l.Total,
			Supported:          l.Supported,
			PartiallySupported: l.PartiallySupported,
			Unsupported:        l.Unsupported,
		}
	}

	removeShadowed(result)

	return result, nil
} // func (srv *Server) softwareListsPayload(machine int64) (map[string]swListEntry, error)

func (srv *Server) romDumpsPayload(crc uint32, sha1 string) (*dumpsReply, error) {
	var (
		err     error
		dumps   []model.RomDump
		swdumps []model.SoftwareRomDump
	)

	if dumps, err = srv.db.RomDumpsGet(crc, sha1); err != nil {
		return nil, err
	} else if swdumps, err = srv.db.SoftwareRomDumpsGet(crc, sha1); err != nil {
		return nil, err
	}

	return buildDumpsReply(dumps, swdumps), nil
} // func (srv *Server) romDumpsPayload(crc uint32, sha1 string) (*dumpsReply, error)

func (srv *Server) diskDumpsPayload(sha1 string) (*dumpsReply, error) {
	var (
		err     error
		dumps   []model.RomDump
		swdumps []model.SoftwareRomDump
	)

	if dumps, err = srv.db.DiskDumpsGet(sha1); err != nil {
		return nil, err
	} else if swdumps, err = srv.db.SoftwareDiskDumpsGet(sha1); err != nil {
		return nil, err
	}

	return buildDumpsReply(dumps, swdumps), nil
} // func (srv *Server) diskDumpsPayload(sha1 string) (*dumpsReply, error)

func buildDumpsReply(dumps []model.RomDump, swdumps []model.SoftwareRomDump) *dumpsReply {
	var result = dumpsReply{
		Machines: make(map[string]*machineMatches),
		Software: make(map[string]*swListMatches),
	}

	for _, d := range dumps {
		var m = result.Machines[d.Shortname]
		if m == nil {
			m = &machineMatches{Description: d.Description}
			result.Machines[d.Shortname] = m
		}

		m.Matches = append(m.Matches, dumpMatch{Name: d.Label, Bad: d.Bad})
	}

	for _, d := range swdumps {
		var list = result.Software[d.List]
		if list == nil {
			list = &swListMatches{
				Description: d.ListDescription,
				Software:    make(map[string]*swMatches),
			}
			result.Software[d.List] = list
		}

		var sw = list.Software[d.Software]
		if sw == nil {
			sw = &swMatches{
				Description: d.SoftwareDesc,
				Parts:       make(map[string]*partMatches),
			}
			list.Software[d.Software] = sw
		}

		var part = sw.Parts[d.Part]
		if part == nil {
			part = &partMatches{Description: d.PartID}
			sw.Parts[d.Part] = part
		}

		part.Matches = append(part.Matches, dumpMatch{Name: d.Label, Bad: d.Bad})
	}

	return &result
} // func buildDumpsReply(dumps []model.RomDump, swdumps []model.SoftwareRomDump) *dumpsReply

// slotTree resolves the slot graph reachable from the given machine. It
// walks a work list: each machine's slot options name card machines, and
// every card not seen before is added to the list so the client can expand
// default selections recursively.
func (srv *Server) slotTree(shortname string) (map[string]*machineDetail, error) {
	var (
		err      error
		worklist = []string{shortname}
		tree     = make(map[string]*machineDetail)
	)

	for len(worklist) > 0 {
		var name = worklist[0]
		worklist = worklist[1:]

		if _, seen := tree[name]; seen {
			continue
		}

		var info *model.Machine

		if info, err = srv.db.MachineGetInfo(name); err != nil {
			return nil, err
		} else if info == nil {
			continue
		}

		var detail = machineDetail{Description: info.Description}

		var slots *slotsReply
		if slots, err = srv.slotsPayload(info.ID); err != nil {
			return nil, err
		}

		detail.Slots = slots.Slots
		detail.Defaults = slots.Defaults

		if detail.Bios, err = srv.biosPayload(info.ID); err != nil {
			return nil, err
		}

		var flags *flagsReply
		if flags, err = srv.flagsPayload(info.ID); err != nil {
			return nil, err
		}
		detail.Flags = flags.Features

		if detail.SoftwareLists, err = srv.softwareListsPayload(info.ID); err != nil {
			return nil, err
		}

		tree[name] = &detail

		for _, options := range detail.Slots {
			for _, opt := range options {
				if _, seen := tree[opt.Device]; !seen {
					worklist = append(worklist, opt.Device)
				}
			}
		}
	}

	return tree, nil
} // func (srv *Server) slotTree(shortname string) (map[string]*machineDetail, error)

// parseQueryStrict parses a raw query string, requiring exactly the given
// keys, each exactly once. Blank values are fine, anything else is an error
// the caller turns into a 500.
func parseQueryStrict(raw string, keys ...string) (map[string]string, error) {
	var (
		err    error
		values = make(map[string]string, len(keys))
	)

	if raw != "" {
		for _, pair := range strings.Split(raw, "&") {
			var k, v, found = strings.Cut(pair, "=")

			if !found {
				return nil, fmt.Errorf("malformed query parameter %q", pair)
			} else if k, err = url.QueryUnescape(k); err != nil {
				return nil, err
			} else if v, err = url.QueryUnescape(v); err != nil {
				return nil, err
			} else if _, dup := values[k]; dup {
				return nil, fmt.Errorf("duplicate query parameter %q", k)
			}

			var known bool
			for _, want := range keys {
				if k == want {
					known = true
					break
				}
			}

			if !known {
				return nil, fmt.Errorf("unexpected query parameter %q", k)
			}

			values[k] = v
		}
	}

	for _, want := range keys {
		if _, ok := values[want]; !ok {
			return nil, fmt.Errorf("missing query parameter %q", want)
		}
	}

	return values, nil
} // func parseQueryStrict(raw string, keys ...string) (map[string]string, error)
