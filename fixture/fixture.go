// seehuhn.de/go/pdffixture - test documents for PDF text extraction
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package fixture

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdf"
)

// DefaultFontSize is the font size used for lines which don't specify one.
const DefaultFontSize = 12

// Face identifies the font used for a line of text.
type Face int

// These are the fonts available for fixture text.
const (
	// Helvetica is the standard PDF font Helvetica.  It is not embedded
	// and only covers the Latin-1 range plus a few typographic symbols.
	Helvetica Face = iota

	// GoRegular is the Go font.  It is embedded and covers Latin, Greek,
	// Cyrillic and the common mathematical symbols.
	GoRegular
)

func (f Face) String() string {
	switch f {
	case Helvetica:
		return "Helvetica"
	case GoRegular:
		return "Go-Regular"
	default:
		return fmt.Sprintf("Face(%d)", int(f))
	}
}

// Line is a single string placed on a page.
type Line struct {
	// X is the horizontal position of the start of the baseline,
	// measured from the left edge of the page.
	X float64

	// Top is the vertical position of the baseline, measured downwards
	// from the top edge of the page.
	Top float64

	// Text is the string to show.
	Text string

	// Face is the font used to show Text.
	Face Face

	// Size is the font size in PDF units.  If this is zero,
	// DefaultFontSize is used.
	Size float64
}

// FontSize returns the font size used for the line.
func (l *Line) FontSize() float64 {
	if l.Size <= 0 {
		return DefaultFontSize
	}
	return l.Size
}

// Page is one page of a fixture document.
type Page struct {
	// Title is the page heading.  It is used for the document outline.
	Title string

	// Lines lists the text on the page, in drawing order.
	Lines []Line
}

// Strings returns the text of all lines on the page, in drawing order.
func (p *Page) Strings() []string {
	res := make([]string, len(p.Lines))
	for i, l := range p.Lines {
		res[i] = l.Text
	}
	return res
}

// Document is a fixture document.
type Document struct {
	// Title and Subject are stored in the document metadata.
	Title   string
	Subject string

	// Paper is the media box used for all pages.
	Paper *pdf.Rectangle

	Pages []*Page
}

// Strings returns the text of all lines in the document, in drawing order.
func (d *Document) Strings() []string {
	var res []string
	for _, p := range d.Pages {
		res = append(res, p.Strings()...)
	}
	return res
}

// Anchor returns the start of the baseline of l in PDF coordinates.
func (d *Document) Anchor(l *Line) vec.Vec2 {
	return vec.Vec2{
		X: d.Paper.LLx + l.X,
		Y: d.Paper.URy - l.Top,
	}
}

// ErrOutsidePage is returned by [Document.Check] if a line starts outside
// the page area.
var ErrOutsidePage = errors.New("text outside page area")

// Check verifies that the document can be drawn.  Every page must have
// at least one line, every line must have text, and the start of every
// baseline must lie inside the paper.
func (d *Document) Check() error {
	if d.Paper == nil || d.Paper.IsZero() {
		return errors.New("paper size not set")
	}
	if len(d.Pages) == 0 {
		return errors.New("document has no pages")
	}
	for i, p := range d.Pages {
		if len(p.Lines) == 0 {
			return fmt.Errorf("page %d: no text", i+1)
		}
		for j := range p.Lines {
			l := &p.Lines[j]
			if l.Text == "" {
				return fmt.Errorf("page %d, line %d: empty text", i+1, j+1)
			}
			if !utf8.ValidString(l.Text) {
				return fmt.Errorf("page %d, line %d: invalid UTF-8", i+1, j+1)
			}
			a := d.Anchor(l)
			if a.X < d.Paper.LLx || a.X > d.Paper.URx ||
				a.Y < d.Paper.LLy || a.Y > d.Paper.URy {
				return fmt.Errorf("page %d, line %d at (%g, %g): %w",
					i+1, j+1, a.X, a.Y, ErrOutsidePage)
			}
		}
	}
	return nil
}

// SplitAt splits s after the first n characters.  This is a hard break,
// word boundaries are ignored.  If s has at most n characters, the second
// return value is empty.
func SplitAt(s string, n int) (string, string) {
	if n <= 0 {
		return "", s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i], s[i:]
		}
		count++
	}
	return s, ""
}
