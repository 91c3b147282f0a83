// /home/krylon/go/src/github.com/blicero/minimaws/ingest/handler.go
// -*- mode: go; coding: utf-8; -*-
// Created on 13. 01. 2025 by Benjamin Walkenhorst
// (c) 2025 Benjamin Walkenhorst
// Time-stamp: <2025-08-14 17:21:09 krylon>

package ingest

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// attributes is the attribute set of one XML element.
type attributes map[string]string

func (a attributes) get(name, fallback string) string {
	if v, ok := a[name]; ok {
		return v
	}

	return fallback
} // func (a attributes) get(name, fallback string) string

// elementHandler consumes one level of an XML subtree. startElement is called
// for the opening tag of each direct child; returning a non-nil handler
// delegates that child's entire subtree to it, and childDone fires on the
// parent once the subtree is finished. Returning nil keeps the element, and
// everything nested inside it is silently skipped. characters receives
// character data appearing directly inside the handler's own element.
type elementHandler interface {
	startElement(name string, attrs attributes) (elementHandler, error)
	characters(content string)
	childDone(name string, child elementHandler) error
}

// baseHandler supplies no-op defaults for handlers that do not care about
// character data or delegated children.
type baseHandler struct{}

func (b *baseHandler) characters(_ string) {}

func (b *baseHandler) childDone(_ string, _ elementHandler) error { return nil }

// textAccumulator collects the character data of elements whose content is a
// single string (descriptions, years, and the like).
type textAccumulator struct {
	baseHandler
	buf strings.Builder
}

func (t *textAccumulator) startElement(_ string, _ attributes) (elementHandler, error) {
	return nil, nil
} // func (t *textAccumulator) startElement(name string, attrs attributes) (elementHandler, error)

func (t *textAccumulator) characters(content string) {
	t.buf.WriteString(content)
} // func (t *textAccumulator) characters(content string)

func (t *textAccumulator) text() string {
	return t.buf.String()
} // func (t *textAccumulator) text() string

type frame struct {
	name  string
	h     elementHandler
	depth int
}

// parse drives a handler hierarchy over one XML document. The root element
// must carry the expected tag; unknown elements anywhere below it are
// skipped.
func (l *Loader) parse(r io.Reader, src, rootTag string, root elementHandler) error {
	var (
		err   error
		dec   = xml.NewDecoder(r)
		stack = make([]*frame, 0, 8)
	)

	for {
		var tok xml.Token

		if tok, err = dec.Token(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			// The decoder's syntax errors already carry a line
			// number.
			l.log.Printf("[ERROR] Parse error in %s: %s\n",
				src,
				err.Error())
			return fmt.Errorf("%s: %s", src, err.Error())
		}

		switch t := tok.(type) {
		case xml.StartElement:
			var (
				name  = t.Name.Local
				attrs = make(attributes, len(t.Attr))
			)

			for _, a := range t.Attr {
				attrs[a.Name.Local] = a.Value
			}

			if len(stack) == 0 {
				if name != rootTag {
					return fmt.Errorf("%s: root element is %s, expected %s",
						src,
						name,
						rootTag)
				} else if _, err = root.startElement(name, attrs); err != nil {
					return l.diag(src, dec, err)
				}

				stack = append(stack, &frame{name: name, h: root, depth: 1})
				continue
			}

			var cur = stack[len(stack)-1]

			if cur.depth > 1 {
				// Inside an element the handler kept but does
				// not understand.
				cur.depth++
				continue
			}

			var child elementHandler

			if child, err = cur.h.startElement(name, attrs); err != nil {
				return l.diag(src, dec, err)
			} else if child != nil {
				stack = append(stack, &frame{name: name, h: child, depth: 1})
			} else {
				cur.depth++
			}
		case xml.EndElement:
			var cur = stack[len(stack)-1]

			cur.depth--
			if cur.depth == 0 {
				stack = stack[:len(stack)-1]
				if len(stack) > 0 {
					if err = stack[len(stack)-1].h.childDone(t.Name.Local, cur.h); err != nil {
						return l.diag(src, dec, err)
					}
				}
			}
		case xml.CharData:
			if len(stack) > 0 && stack[len(stack)-1].depth == 1 {
				stack[len(stack)-1].h.characters(string(t))
			}
		}
	}

	if len(stack) != 0 {
		return fmt.Errorf("%s: document ended with %d elements still open",
			src,
			len(stack))
	}

	return nil
} // func (l *Loader) parse(r io.Reader, src, rootTag string, root elementHandler) error

func (l *Loader) diag(src string, dec *xml.Decoder, err error) error {
	l.log.Printf("[ERROR] Ingestion failed in %s at byte %d: %s\n",
		src,
		dec.InputOffset(),
		err.Error())
	return fmt.Errorf("%s (byte %d): %s",
		src,
		dec.InputOffset(),
		err.Error())
} // func (l *Loader) diag(src string, dec *xml.Decoder, err error) error
