// /home/krylon/go/src/github.com/blicero/minimaws/ident/ident.go
// -*- mode: go; coding: utf-8; -*-
// Created on 16. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-08-16 17:32:50 krylon>

// Package ident computes content digests of candidate dump files for
// identification against the database. Zip archives are digested per member,
// CHD images contribute the SHA-1 of their decompressed payload from the
// header, everything else is digested as a plain rom.
package ident

import (
	"archive/zip"
	"crypto/sha1"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash/crc32"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	bt "go.etcd.io/bbolt" // Use the BoltDB backend

	"github.com/blicero/minimaws/common"
	"github.com/blicero/minimaws/common/path"
	"github.com/blicero/minimaws/logdomain"
	"github.com/faabiosr/cachego"
	"github.com/faabiosr/cachego/bolt"
)

// maxDepth is how far below each starting point the walk descends.
const maxDepth = 5

// blockSize is the read granularity for digesting.
const blockSize = 64 * 1024

// chdMagic is the signature of a CHD image file.
const chdMagic = "MComprHD"

// Digest is the pair of checksums identifying a rom, or - for disks - just
// the SHA-1.
type Digest struct {
	CRC  uint32
	SHA1 string
	Disk bool
}

func (d *Digest) String() string {
	if d.Disk {
		return fmt.Sprintf("SHA1(%s)", d.SHA1)
	}

	return fmt.Sprintf("CRC(%08x) SHA1(%s)", d.CRC, d.SHA1)
} // func (d *Digest) String() string

// Candidate is one digested file or archive member.
type Candidate struct {
	Path string
	Digest
}

// Scanner walks directory trees and digests candidate files. Digests of
// plain files are cached by path, size, and modification time, so repeated
// runs over large collections skip unchanged files.
type Scanner struct {
	log   *log.Logger
	cdb   *bt.DB
	cache cachego.Cache
}

// NewScanner creates a Scanner with its digest cache.
func NewScanner() (*Scanner, error) {
	var (
		err error
		s   = new(Scanner)
	)

	if s.log, err = common.GetLogger(logdomain.Ident); err != nil {
		return nil, err
	} else if s.cdb, err = bt.Open(common.Path(path.IdentCache), 0600, nil); err != nil {
		s.log.Printf("[ERROR] Failed to open digest cache at %s: %s\n",
			common.Path(path.IdentCache),
			err.Error())
		return nil, err
	}

	s.cache = bolt.New(s.cdb)

	return s, nil
} // func NewScanner() (*Scanner, error)

// Close closes the digest cache.
func (s *Scanner) Close() error {
	return s.cdb.Close()
} // func (s *Scanner) Close() error

// Walk digests all candidate files reachable from the given paths,
// descending at most five directory levels.
func (s *Scanner) Walk(paths []string) ([]Candidate, error) {
	var candidates = make([]Candidate, 0, 16)

	for _, root := range paths {
		var (
			err  error
			info os.FileInfo
		)

		if info, err = os.Stat(root); err != nil {
			s.log.Printf("[ERROR] Cannot stat %s: %s\n",
				root,
				err.Error())
			return nil, err
		} else if !info.IsDir() {
			if candidates, err = s.file(root, candidates); err != nil {
				return nil, err
			}
			continue
		}

		err = filepath.WalkDir(root, func(p string, d fs.DirEntry, werr error) error {
			if werr != nil {
				return werr
			} else if d.IsDir() {
				if pathDepth(root, p) >= maxDepth {
					return filepath.SkipDir
				}
				return nil
			}

			var ferr error
			candidates, ferr = s.file(p, candidates)
			return ferr
		})

		if err != nil {
			s.log.Printf("[ERROR] Walk of %s failed: %s\n",
				root,
				err.Error())
			return nil, err
		}
	}

	return candidates, nil
} // func (s *Scanner) Walk(paths []string) ([]Candidate, error)

func pathDepth(root, p string) int {
	var rel, err = filepath.Rel(root, p)

	if err != nil || rel == "." {
		return 0
	}

	return len(strings.Split(rel, string(filepath.Separator)))
} // func pathDepth(root, p string) int

// file digests one file, appending the resulting candidates.
func (s *Scanner) file(p string, candidates []Candidate) ([]Candidate, error) {
	if strings.EqualFold(filepath.Ext(p), ".chd") {
		var c, err = s.chd(p)
		if err != nil {
			return nil, err
		}

		return append(candidates, c), nil
	}

	// Anything that opens as a zip archive is digested per member.
	var arc, err = zip.OpenReader(p)

	if err == nil {
		defer arc.Close() // nolint: errcheck

		for _, member := range arc.File {
			var (
				rc io.ReadCloser
				d  Digest
			)

			if rc, err = member.Open(); err != nil {
				s.log.Printf("[ERROR] Cannot open %s in %s: %s\n",
					member.Name,
					p,
					err.Error())
				return nil, err
			} else if d, err = digestReader(rc); err != nil {
				rc.Close() // nolint: errcheck
				return nil, err
			}

			rc.Close() // nolint: errcheck
			candidates = append(candidates, Candidate{
				Path:   p + "/" + member.Name,
				Digest: d,
			})
		}

		return candidates, nil
	}

	var c Candidate

	if c, err = s.plain(p); err != nil {
		return nil, err
	}

	return append(candidates, c), nil
} // func (s *Scanner) file(p string, candidates []Candidate) ([]Candidate, error)

// plain digests a file as a rom, consulting the cache first.
func (s *Scanner) plain(p string) (Candidate, error) {
	var (
		err  error
		info os.FileInfo
		c    = Candidate{Path: p}
	)

	if info, err = os.Stat(p); err != nil {
		return c, err
	}

	var key = cacheKey(p, info)

	if cached, cerr := s.cache.Fetch(key); cerr == nil {
		if d, ok := decodeDigest(cached); ok {
			c.Digest = d
			return c, nil
		}
	}

	var fh *os.File

	if fh, err = os.Open(p); err != nil {
		s.log.Printf("[ERROR] Cannot open %s: %s\n",
			p,
			err.Error())
		return c, err
	}

	defer fh.Close() // nolint: errcheck

	if c.Digest, err = digestReader(fh); err != nil {
		return c, err
	}

	if err = s.cache.Save(key, encodeDigest(c.Digest), 0); err != nil {
		// A failing cache is not worth aborting the scan over.
		s.log.Printf("[ERROR] Cannot cache digest of %s: %s\n",
			p,
			err.Error())
	}

	return c, nil
} // func (s *Scanner) plain(p string) (Candidate, error)

// chd extracts the payload SHA-1 from a CHD header. Files that are too
// short, lack the magic, or carry an unknown header version are digested as
// plain roms instead.
func (s *Scanner) chd(p string) (Candidate, error) {
	var (
		err    error
		fh     *os.File
		header [124]byte
	)

	if fh, err = os.Open(p); err != nil {
		s.log.Printf("[ERROR] Cannot open %s: %s\n",
			p,
			err.Error())
		return Candidate{}, err
	}

	defer fh.Close() // nolint: errcheck

	if _, err = io.ReadFull(fh, header[:]); err != nil {
		// Too short for a CHD header, treat as a rom.
		return s.chdFallback(fh, p)
	} else if string(header[:8]) != chdMagic {
		return s.chdFallback(fh, p)
	}

	// Version-dependent offset of the decompressed payload's SHA-1.
	var offset int

	switch binary.BigEndian.Uint32(header[12:16]) {
	case 3:
		offset = 80
	case 4:
		offset = 48
	case 5:
		offset = 84
	default:
		return s.chdFallback(fh, p)
	}

	return Candidate{
		Path: p,
		Digest: Digest{
			SHA1: hex.EncodeToString(header[offset : offset+20]),
			Disk: true,
		},
	}, nil
} // func (s *Scanner) chd(p string) (Candidate, error)

func (s *Scanner) chdFallback(fh *os.File, p string) (Candidate, error) {
	var (
		err error
		c   = Candidate{Path: p}
	)

	if _, err = fh.Seek(0, io.SeekStart); err != nil {
		return c, err
	} else if c.Digest, err = digestReader(fh); err != nil {
		return c, err
	}

	return c, nil
} // func (s *Scanner) chdFallback(fh *os.File, p string) (Candidate, error)

// digestReader computes CRC-32 and SHA-1 in a single pass.
func digestReader(r io.Reader) (Digest, error) {
	var (
		err error
		crc = crc32.NewIEEE()
		sha = sha1.New()
		buf = make([]byte, blockSize)
	)

	if _, err = io.CopyBuffer(io.MultiWriter(crc, sha), r, buf); err != nil {
		return Digest{}, err
	}

	return Digest{
		CRC:  crc.Sum32(),
		SHA1: hex.EncodeToString(sha.Sum(nil)),
	}, nil
} // func digestReader(r io.Reader) (Digest, error)

func cacheKey(p string, info os.FileInfo) string {
	return fmt.Sprintf("%s|%d|%d",
		p,
		info.Size(),
		info.ModTime().UnixNano())
} // func cacheKey(p string, info os.FileInfo) string

func encodeDigest(d Digest) string {
	return fmt.Sprintf("%08x:%s", d.CRC, d.SHA1)
} // func encodeDigest(d Digest) string

func decodeDigest(s string) (Digest, bool) {
	var fields = strings.SplitN(s, ":", 2)

	if len(fields) != 2 || len(fields[1]) != 40 {
		return Digest{}, false
	}

	var crc, err = strconv.ParseUint(fields[0], 16, 32)

	if err != nil {
		return Digest{}, false
	}

	return Digest{CRC: uint32(crc), SHA1: fields[1]}, true
} // func decodeDigest(s string) (Digest, bool)
