// /home/krylon/go/src/github.com/blicero/minimaws/web/web.go
// -*- mode: go; coding: utf-8; -*-
// Created on 18. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-08-24 16:55:10 krylon>

// Package web provides the web interface: browsable machine, source file and
// software list pages, the romident page, and the JSON endpoints under
// /rpc/. It serves idempotent reads only and marks every successful response
// cacheable for an hour.
package web

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"text/template"
	"time"

	"github.com/blicero/minimaws/common"
	"github.com/blicero/minimaws/common/path"
	"github.com/blicero/minimaws/database"
	"github.com/blicero/minimaws/logdomain"
	"github.com/blicero/minimaws/model"
	"github.com/faabiosr/cachego"
	csync "github.com/faabiosr/cachego/sync"
	"github.com/gorilla/mux"
)

// cacheTTL matches the Cache-Control lifetime handed to clients.
const cacheTTL = time.Hour

const cacheControl = "public, max-age=3600"

//go:embed assets
var assets embed.FS

var statusMessage = map[int]string{
	400: "Bad Request",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	500: "Internal Server Error",
}

// Server wraps the state required for the web interface.
type Server struct {
	Addr      string
	log       *log.Logger
	db        *database.Database
	router    *mux.Router
	tmpl      *template.Template
	web       http.Server
	mimeTypes map[string]string
	cache     cachego.Cache
}

// Create creates and returns a new Server reading from the database at the
// default path.
func Create(addr string) (*Server, error) {
	var (
		err error
		msg string
		srv = &Server{
			Addr: addr,
			mimeTypes: map[string]string{
				".js":  "text/javascript",
				".svg": "image/svg+xml",
			},
			cache: csync.New(),
		}
	)

	if srv.log, err = common.GetLogger(logdomain.Web); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Error creating Logger: %s\n",
			err.Error())
		return nil, err
	} else if srv.db, err = database.OpenRead(common.Path(path.Database)); err != nil {
		srv.log.Printf("[ERROR] Cannot open database %s: %s\n",
			common.Path(path.Database),
			err.Error())
		return nil, err
	}

	const tmplFolder = "assets/templates"
	var templates []fs.DirEntry
	var tmplRe = regexp.MustCompile("[.]tmpl$")

	if templates, err = assets.ReadDir(tmplFolder); err != nil {
		srv.log.Printf("[ERROR] Cannot read embedded templates: %s\n",
			err.Error())
		return nil, err
	}

	srv.tmpl = template.New("").Funcs(funcmap)
	for _, entry := range templates {
		var (
			content []byte
			tpath   = filepath.Join(tmplFolder, entry.Name())
		)

		if !tmplRe.MatchString(entry.Name()) {
			continue
		} else if content, err = assets.ReadFile(tpath); err != nil {
			msg = fmt.Sprintf("Cannot read embedded file %s: %s",
				tpath,
				err.Error())
			srv.log.Printf("[CRITICAL] %s\n", msg)
			return nil, errors.New(msg)
		} else if srv.tmpl, err = srv.tmpl.Parse(string(content)); err != nil {
			msg = fmt.Sprintf("Could not parse template %s: %s",
				entry.Name(),
				err.Error())
			srv.log.Println("[CRITICAL] " + msg)
			return nil, errors.New(msg)
		} else if common.Debug {
			srv.log.Printf("[TRACE] Template \"%s\" was parsed successfully.\n",
				entry.Name())
		}
	}

	srv.router = mux.NewRouter()
	srv.router.Use(srv.checkMethod)
	srv.router.NotFoundHandler = http.HandlerFunc(srv.handleNotFound)
	srv.web.Addr = addr
	srv.web.ErrorLog = srv.log
	srv.web.Handler = srv.router

	srv.router.HandleFunc("/", srv.handleForbidden)
	srv.router.HandleFunc("/machine", srv.handleForbidden)
	srv.router.HandleFunc("/machine/", srv.handleForbidden)
	srv.router.HandleFunc("/machine/{machine}", srv.handleMachinePage)
	srv.router.HandleFunc("/sourcefile", srv.handleSourcefilePage)
	srv.router.HandleFunc("/sourcefile/{filename:.*}", srv.handleSourcefilePage)
	srv.router.HandleFunc("/softwarelist", srv.handleSoftwareListIndex)
	srv.router.HandleFunc("/softwarelist/", srv.handleSoftwareListIndex)
	srv.router.HandleFunc("/softwarelist/{list}", srv.handleSoftwareListPage)
	srv.router.HandleFunc("/softwarelist/{list}/{software}", srv.handleSoftwarePage)
	srv.router.HandleFunc("/romident", srv.handleRomIdentPage)
	srv.router.HandleFunc("/static", srv.handleForbidden)
	srv.router.HandleFunc("/static/", srv.handleForbidden)
	srv.router.HandleFunc("/static/{file}", srv.handleStaticFile)
	srv.router.HandleFunc("/rpc", srv.handleForbidden)
	srv.router.HandleFunc("/rpc/", srv.handleForbidden)
	srv.router.HandleFunc("/rpc/romdumps", srv.handleRomDumpsRPC)
	srv.router.HandleFunc("/rpc/diskdumps", srv.handleDiskDumpsRPC)
	srv.router.HandleFunc("/rpc/{service}", srv.handleBareRPC)
	srv.router.HandleFunc("/rpc/{service}/", srv.handleBareRPC)
	srv.router.HandleFunc("/rpc/{service}/{machine}", srv.handleMachineRPC)

	return srv, nil
} // func Create(addr string) (*Server, error)

// ListenAndServe runs the server's ListenAndServe method
func (srv *Server) ListenAndServe() {
	srv.log.Printf("[DEBUG] Server start listening on %s.\n", srv.Addr)
	defer srv.log.Println("[DEBUG] Server has quit.")
	srv.web.ListenAndServe() // nolint: errcheck
} // func (srv *Server) ListenAndServe()

// Close shuts down the server and releases the database.
func (srv *Server) Close() error {
	srv.web.Close() // nolint: errcheck
	return srv.db.Close()
} // func (srv *Server) Close() error

func (srv *Server) checkMethod(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
		default:
			w.Header().Set("Accept", "GET, HEAD, OPTIONS")
			srv.sendErrorPage(w, 405)
		}
	})
} // func (srv *Server) checkMethod(next http.Handler) http.Handler

func (srv *Server) sendErrorPage(w http.ResponseWriter, code int) {
	const errorPage = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>%d %s</title>
</head>
<body>
<h1>%s</h1>
</body>
</html>
`

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", cacheControl)
	w.WriteHeader(code)
	fmt.Fprintf(w, errorPage, code, statusMessage[code], statusMessage[code]) // nolint: errcheck
} // func (srv *Server) sendErrorPage(w http.ResponseWriter, code int)

func (srv *Server) handleForbidden(w http.ResponseWriter, r *http.Request) {
	srv.sendErrorPage(w, 403)
} // func (srv *Server) handleForbidden(w http.ResponseWriter, r *http.Request)

func (srv *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	srv.sendErrorPage(w, 404)
} // func (srv *Server) handleNotFound(w http.ResponseWriter, r *http.Request)

func (srv *Server) serverError(w http.ResponseWriter, msg string) {
	srv.log.Printf("[ERROR] %s\n", msg)
	srv.sendErrorPage(w, 500)
} // func (srv *Server) serverError(w http.ResponseWriter, msg string)

// renderPage looks up a template and streams it to the client with the
// headers every successful HTML response carries.
func (srv *Server) renderPage(w http.ResponseWriter, name string, data any) {
	var tmpl = srv.tmpl.Lookup(name)

	if tmpl == nil {
		srv.serverError(w, fmt.Sprintf("Could not find template %q", name))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", cacheControl)
	w.WriteHeader(200)

	if err := tmpl.Execute(w, data); err != nil {
		srv.log.Printf("[ERROR] Error rendering template %q: %s\n",
			name,
			err.Error())
	}
} // func (srv *Server) renderPage(w http.ResponseWriter, name string, data any)

func (srv *Server) handleStaticFile(w http.ResponseWriter, r *http.Request) {
	var (
		filename = mux.Vars(r)["file"]
		fpath    = filepath.Join("assets", "static", filename)
		ext      = filepath.Ext(filename)
		mimeType string
	)

	if mimeType = srv.mimeTypes[ext]; mimeType == "" {
		if mimeType = mime.TypeByExtension(ext); mimeType == "" {
			mimeType = "application/octet-stream"
		}
	}

	var (
		err error
		fh  fs.File
	)

	if fh, err = assets.Open(fpath); err != nil {
		srv.sendErrorPage(w, 404)
		return
	}

	defer fh.Close() // nolint: errcheck

	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Cache-Control", cacheControl)
	w.WriteHeader(200)
	io.Copy(w, fh) // nolint: errcheck
} // func (srv *Server) handleStaticFile(w http.ResponseWriter, r *http.Request)

func (srv *Server) handleMachinePage(w http.ResponseWriter, r *http.Request) {
	srv.log.Printf("[TRACE] Handle request for %s from %s\n",
		r.URL.EscapedPath(),
		r.RemoteAddr)

	var (
		err       error
		shortname = mux.Vars(r)["machine"]
		data      tmplDataMachine
	)

	if data.Machine, err = srv.db.MachineGetInfo(shortname); err != nil {
		srv.serverError(w, fmt.Sprintf("Failed to load machine %s: %s",
			shortname,
			err.Error()))
		return
	} else if data.Machine == nil {
		srv.sendErrorPage(w, 404)
		return
	}

	data.Title = data.Machine.Description

	if data.Machine.Cloneof != "" {
		if data.CloneofDesc, err = srv.machineDescription(data.Machine.Cloneof); err != nil {
			srv.serverError(w, err.Error())
			return
		}
	}

	if data.Machine.Romof != "" && data.Machine.Romof != data.Machine.Cloneof {
		if data.RomofDesc, err = srv.machineDescription(data.Machine.Romof); err != nil {
			srv.serverError(w, err.Error())
			return
		}
	}

	var (
		id    = data.Machine.ID
		flags []model.FeatureFlag
		nslot int64
	)

	if flags, err = srv.db.FeatureFlagsGet(id); err != nil {
		srv.serverError(w, err.Error())
		return
	}

	for _, f := range flags {
		switch {
		case f.Overall == model.StatusImperfect:
			data.Imperfect = append(data.Imperfect, f.Feature)
		case f.Overall > model.StatusImperfect:
			data.Unemulated = append(data.Unemulated, f.Feature)
		}
	}

	if data.BiosSets, err = srv.db.BiosSetsGet(id); err != nil {
		srv.serverError(w, err.Error())
		return
	} else if data.RAMOptions, err = srv.db.RAMOptionsGet(id); err != nil {
		srv.serverError(w, err.Error())
		return
	} else if nslot, err = srv.db.SlotCount(id); err != nil {
		srv.serverError(w, err.Error())
		return
	} else if data.Clones, err = srv.db.MachineGetClones(shortname); err != nil {
		srv.serverError(w, err.Error())
		return
	} else if data.SoftwareLists, err = srv.db.MachineSoftwareListsGet(id); err != nil {
		srv.serverError(w, err.Error())
		return
	} else if data.DevicesRefd, err = srv.db.DevicesReferenced(id); err != nil {
		srv.serverError(w, err.Error())
		return
	} else if data.CompatSlots, err = srv.db.CompatSlots(id); err != nil {
		srv.serverError(w, err.Error())
		return
	} else if data.ReferencedBy, err = srv.db.DeviceReferences(id); err != nil {
		srv.serverError(w, err.Error())
		return
	}

	if nslot > 0 {
		data.HaveSlots = true
		if data.SlotInfo, err = srv.slotTree(shortname); err != nil {
			srv.serverError(w, err.Error())
			return
		}
	}

	srv.renderPage(w, "machine", &data)
} // func (srv *Server) handleMachinePage(w http.ResponseWriter, r *http.Request)

// machineDescription returns the description of a machine, or the empty
// string when no machine of that name was loaded.
func (srv *Server) machineDescription(shortname string) (string, error) {
	var info, err = srv.db.MachineGetInfo(shortname)

	if err != nil {
		return "", err
	} else if info == nil {
		return "", nil
	}

	return info.Description, nil
} // func (srv *Server) machineDescription(shortname string) (string, error)

func (srv *Server) handleSourcefilePage(w http.ResponseWriter, r *http.Request) {
	srv.log.Printf("[TRACE] Handle request for %s from %s\n",
		r.URL.EscapedPath(),
		r.RemoteAddr)

	var (
		err      error
		id       int64
		filename = mux.Vars(r)["filename"]
	)

	if filename == "" {
		srv.sourcefileListing(w, "")
		return
	}

	if id, err = srv.db.SourcefileGetID(filename); err != nil {
		srv.serverError(w, err.Error())
		return
	} else if id == 0 {
		// Not a known file. If the request names a directory, list
		// the files below it.
		if database.IsGlob(filename) {
			srv.sendErrorPage(w, 404)
			return
		}

		var pattern string
		if filename[len(filename)-1] == '/' {
			pattern = filename + "*"
		} else {
			pattern = filename + "/*"
		}

		var cnt int64
		if cnt, err = srv.db.SourcefileCount(pattern); err != nil {
			srv.serverError(w, err.Error())
			return
		} else if cnt == 0 {
			srv.sendErrorPage(w, 404)
			return
		}

		srv.sourcefileListing(w, pattern)
		return
	}

	var data = tmplDataSourcefile{
		tmplDataBase: tmplDataBase{Title: filename},
		Filename:     filename,
	}

	if data.Machines, err = srv.db.SourcefileMachines(id); err != nil {
		srv.serverError(w, err.Error())
		return
	}

	srv.renderPage(w, "sourcefile", &data)
} // func (srv *Server) handleSourcefilePage(w http.ResponseWriter, r *http.Request)

func (srv *Server) sourcefileListing(w http.ResponseWriter, pattern string) {
	var (
		err  error
		data = tmplDataSourcefileList{Pattern: pattern}
	)

	if pattern == "" {
		data.Title = "All Source Files"
	} else {
		data.Title = "Source Files: " + pattern
	}

	if data.Sourcefiles, err = srv.db.SourcefilesGet(pattern); err != nil {
		srv.serverError(w, err.Error())
		return
	}

	srv.renderPage(w, "sourcefile_list", &data)
} // func (srv *Server) sourcefileListing(w http.ResponseWriter, pattern string)

func (srv *Server) handleSoftwareListIndex(w http.ResponseWriter, r *http.Request) {
	srv.log.Printf("[TRACE] Handle request for %s from %s\n",
		r.URL.EscapedPath(),
		r.RemoteAddr)

	srv.softwareListListing(w, "")
} // func (srv *Server) handleSoftwareListIndex(w http.ResponseWriter, r *http.Request)

func (srv *Server) softwareListListing(w http.ResponseWriter, pattern string) {
	var (
		err  error
		data = tmplDataSoftwareListIndex{Pattern: pattern}
	)

	if pattern == "" {
		data.Title = "All Software Lists"
	} else {
		data.Title = "Software Lists: " + pattern
	}

	if data.Lists, err = srv.db.SoftwareListsGet(pattern); err != nil {
		srv.serverError(w, err.Error())
		return
	}

	srv.renderPage(w, "softwarelist_index", &data)
} // func (srv *Server) softwareListListing(w http.ResponseWriter, pattern string)

func (srv *Server) handleSoftwareListPage(w http.ResponseWriter, r *http.Request) {
	srv.log.Printf("[TRACE] Handle request for %s from %s\n",
		r.URL.EscapedPath(),
		r.RemoteAddr)

	var (
		err       error
		shortname = mux.Vars(r)["list"]
		data      tmplDataSoftwareList
	)

	if data.List, err = srv.db.SoftwareListGet(shortname); err != nil {
		srv.serverError(w, err.Error())
		return
	} else if data.List == nil {
		if database.IsGlob(shortname) {
			srv.sendErrorPage(w, 404)
			return
		}

		var (
			pattern = shortname + "*"
			cnt     int64
		)

		if cnt, err = srv.db.SoftwareListCount(pattern); err != nil {
			srv.serverError(w, err.Error())
			return
		} else if cnt == 0 {
			srv.sendErrorPage(w, 404)
			return
		}

		srv.softwareListListing(w, pattern)
		return
	}

	data.Title = data.List.Description

	if data.Software, err = srv.db.SoftwareListMembers(data.List.ID); err != nil {
		srv.serverError(w, err.Error())
		return
	}

	srv.renderPage(w, "softwarelist", &data)
} // func (srv *Server) handleSoftwareListPage(w http.ResponseWriter, r *http.Request)

func (srv *Server) handleSoftwarePage(w http.ResponseWriter, r *http.Request) {
	srv.log.Printf("[TRACE] Handle request for %s from %s\n",
		r.URL.EscapedPath(),
		r.RemoteAddr)

	var (
		err  error
		vars = mux.Vars(r)
		data tmplDataSoftware
	)

	if data.List, err = srv.db.SoftwareListGet(vars["list"]); err != nil {
		srv.serverError(w, err.Error())
		return
	} else if data.List == nil {
		srv.sendErrorPage(w, 404)
		return
	} else if data.Software, err = srv.db.SoftwareGet(data.List.ID, vars["software"]); err != nil {
		srv.serverError(w, err.Error())
		return
	} else if data.Software == nil {
		srv.sendErrorPage(w, 404)
		return
	}

	data.Title = data.Software.Description

	var parts []model.SoftwarePart

	if data.Info, err = srv.db.SoftwareInfoGet(data.Software.ID); err != nil {
		srv.serverError(w, err.Error())
		return
	} else if data.SharedFeat, err = srv.db.SharedFeatGet(data.Software.ID); err != nil {
		srv.serverError(w, err.Error())
		return
	} else if parts, err = srv.db.SoftwarePartsGet(data.Software.ID); err != nil {
		srv.serverError(w, err.Error())
		return
	}

	for _, p := range parts {
		var (
			detail = softwarePartDetail{SoftwarePart: p}
			disks  []model.PartDump
		)

		if detail.Features, err = srv.db.PartFeaturesGet(p.ID); err != nil {
			srv.serverError(w, err.Error())
			return
		} else if detail.Dumps, err = srv.db.PartRomDumpsGet(p.ID); err != nil {
			srv.serverError(w, err.Error())
			return
		} else if disks, err = srv.db.PartDiskDumpsGet(p.ID); err != nil {
			srv.serverError(w, err.Error())
			return
		}

		detail.Dumps = append(detail.Dumps, disks...)
		data.Parts = append(data.Parts, detail)
	}

	srv.renderPage(w, "software", &data)
} // func (srv *Server) handleSoftwarePage(w http.ResponseWriter, r *http.Request)

func (srv *Server) handleRomIdentPage(w http.ResponseWriter, r *http.Request) {
	srv.log.Printf("[TRACE] Handle request for %s from %s\n",
		r.URL.EscapedPath(),
		r.RemoteAddr)

	srv.renderPage(w, "romident", &tmplDataBase{Title: "Identify ROM dumps"})
} // func (srv *Server) handleRomIdentPage(w http.ResponseWriter, r *http.Request)

////////////////////////////////////////////////////////////////////////////////
//// RPC handlers //////////////////////////////////////////////////////////////
////////////////////////////////////////////////////////////////////////////////

// respondJSON memoizes the serialized payload under the given key; the data
// is read-only for the lifetime of the process, so a stale entry can only
// ever equal a fresh one.
func (srv *Server) respondJSON(w http.ResponseWriter, key string, build func() (any, error)) {
	var (
		err  error
		body string
	)

	if body, err = srv.cache.Fetch(key); err != nil {
		var payload any

		if payload, err = build(); err != nil {
			srv.serverError(w, err.Error())
			return
		} else if body, err = jsonEncode(payload); err != nil {
			srv.serverError(w, err.Error())
			return
		} else if err = srv.cache.Save(key, body, cacheTTL); err != nil {
			srv.log.Printf("[ERROR] Cannot cache payload for %s: %s\n",
				key,
				err.Error())
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", cacheControl)
	w.WriteHeader(200)
	io.WriteString(w, body) // nolint: errcheck
} // func (srv *Server) respondJSON(w http.ResponseWriter, key string, build func() (any, error))

func (srv *Server) handleBareRPC(w http.ResponseWriter, r *http.Request) {
	switch mux.Vars(r)["service"] {
	case "bios", "flags", "slots", "softwarelists":
		srv.sendErrorPage(w, 403)
	default:
		srv.sendErrorPage(w, 404)
	}
} // func (srv *Server) handleBareRPC(w http.ResponseWriter, r *http.Request)

func (srv *Server) handleMachineRPC(w http.ResponseWriter, r *http.Request) {
	srv.log.Printf("[TRACE] Handle request for %s from %s\n",
		r.URL.EscapedPath(),
		r.RemoteAddr)

	var (
		err       error
		vars      = mux.Vars(r)
		service   = vars["service"]
		shortname = vars["machine"]
		machine   int64
		build     func() (any, error)
	)

	switch service {
	case "bios":
		build = func() (any, error) { return srv.biosPayload(machine) }
	case "flags":
		build = func() (any, error) { return srv.flagsPayload(machine) }
	case "slots":
		build = func() (any, error) { return srv.slotsPayload(machine) }
	case "softwarelists":
		build = func() (any, error) { return srv.softwareListsPayload(machine) }
	default:
		srv.sendErrorPage(w, 404)
		return
	}

	if machine, err = srv.db.MachineGetID(shortname); err != nil {
		srv.serverError(w, err.Error())
		return
	} else if machine == 0 {
		srv.sendErrorPage(w, 404)
		return
	}

	srv.respondJSON(w, "rpc/"+service+"/"+shortname, build)
} // func (srv *Server) handleMachineRPC(w http.ResponseWriter, r *http.Request)

func (srv *Server) handleRomDumpsRPC(w http.ResponseWriter, r *http.Request) {
	srv.log.Printf("[TRACE] Handle request for %s from %s\n",
		r.URL.EscapedPath(),
		r.RemoteAddr)

	var (
		err  error
		args map[string]string
		crc  uint64
	)

	if args, err = parseQueryStrict(r.URL.RawQuery, "crc", "sha1"); err != nil {
		srv.serverError(w, err.Error())
		return
	} else if crc, err = strconv.ParseUint(args["crc"], 16, 32); err != nil {
		srv.serverError(w, fmt.Sprintf("Cannot parse crc %q: %s",
			args["crc"],
			err.Error()))
		return
	}

	var sha1 = args["sha1"]

	srv.respondJSON(w,
		fmt.Sprintf("rpc/romdumps/%08x/%s", crc, sha1),
		func() (any, error) { return srv.romDumpsPayload(uint32(crc), sha1) })
} // func (srv *Server) handleRomDumpsRPC(w http.ResponseWriter, r *http.Request)

func (srv *Server) handleDiskDumpsRPC(w http.ResponseWriter, r *http.Request) {
	srv.log.Printf("[TRACE] Handle request for %s from %s\n",
		r.URL.EscapedPath(),
		r.RemoteAddr)

	var args, err = parseQueryStrict(r.URL.RawQuery, "sha1")

	if err != nil {
		srv.serverError(w, err.Error())
		return
	}

	var sha1 = args["sha1"]

	srv.respondJSON(w,
		"rpc/diskdumps/"+sha1,
		func() (any, error) { return srv.diskDumpsPayload(sha1) })
} // func (srv *Server) handleDiskDumpsRPC(w http.ResponseWriter, r *http.Request)
