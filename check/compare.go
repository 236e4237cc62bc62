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

package check

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/pdffixture/fixture"
)

// Errors returned by [Report.Verify].
var (
	ErrPageCount   = errors.New("wrong number of pages")
	ErrPageSize    = errors.New("wrong page size")
	ErrMissingText = errors.New("text not found")
	ErrOutline     = errors.New("outline does not match pages")
)

// sizeTolerance is the allowed difference between the expected and the
// actual page dimensions, in PDF units.
const sizeTolerance = 0.5

// Missing is a string which was drawn on a page but is not contained in
// the text extracted from that page.
type Missing struct {
	Page int // 1-based
	Text string
}

func (m Missing) String() string {
	return fmt.Sprintf("page %d: %q", m.Page, m.Text)
}

// Missing returns the strings of doc which cannot be found in the text
// extracted from the corresponding page.  Both sides are brought to
// Unicode normal form C and runs of white space are collapsed before
// comparing, so differences in spacing are not reported.
//
// A string drawn several times on the same page must be found as often
// as it was drawn.  If copies are lost, the last ones in drawing order are
// reported.
func (r *Report) Missing(doc *fixture.Document) []Missing {
	var res []Missing
	for i, p := range doc.Pages {
		var extracted string
		if i < len(r.Pages) {
			extracted = normalize(r.Pages[i].Text)
		}
		found := make(map[string]int)
		seen := make(map[string]int)
		for _, s := range p.Strings() {
			key := normalize(s)
			n, ok := found[key]
			if !ok {
				n = strings.Count(extracted, key)
				found[key] = n
			}
			seen[key]++
			if seen[key] > n {
				res = append(res, Missing{Page: i + 1, Text: s})
			}
		}
	}
	return res
}

// Verify checks that the report matches the given document: the number
// of pages, the page sizes, the outline (if present) and the text on each
// page.
func (r *Report) Verify(doc *fixture.Document) error {
	if r.NumPages != len(doc.Pages) {
		return fmt.Errorf("%w: expected %d, got %d",
			ErrPageCount, len(doc.Pages), r.NumPages)
	}

	if len(r.PageSizes) != r.NumPages {
		return fmt.Errorf("%w: sizes known for %d of %d pages",
			ErrPageSize, len(r.PageSizes), r.NumPages)
	}
	want := Size{
		Width:  doc.Paper.URx - doc.Paper.LLx,
		Height: doc.Paper.URy - doc.Paper.LLy,
	}
	for i, got := range r.PageSizes {
		if math.Abs(got.Width-want.Width) > sizeTolerance ||
			math.Abs(got.Height-want.Height) > sizeTolerance {
			return fmt.Errorf("%w: page %d is %s, expected %s",
				ErrPageSize, i+1, got, want)
		}
	}

	if r.Outline != nil {
		if len(r.Outline) != len(doc.Pages) {
			return fmt.Errorf("%w: %d entries for %d pages",
				ErrOutline, len(r.Outline), len(doc.Pages))
		}
		for i, s := range r.Outline {
			if s.Page != i+1 {
				return fmt.Errorf("%w: %q points to page %d",
					ErrOutline, s.Title, s.Page)
			}
		}
	}

	if missing := r.Missing(doc); len(missing) > 0 {
		return &MissingError{Missing: missing}
	}
	return nil
}

// MissingError is returned by [Report.Verify] if some of the text cannot
// be extracted.  It matches [ErrMissingText] with [errors.Is].
type MissingError struct {
	Missing []Missing
}

func (err *MissingError) Error() string {
	if len(err.Missing) == 1 {
		return fmt.Sprintf("%s: %s", ErrMissingText, err.Missing[0])
	}
	return fmt.Sprintf("%s: %d strings, first is %s",
		ErrMissingText, len(err.Missing), err.Missing[0])
}

func (err *MissingError) Is(target error) bool {
	return target == ErrMissingText
}

// normalize brings s into Unicode normal form C and replaces every run of
// white space by a single space character.
func normalize(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}
