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
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	doc := Default()

	if len(doc.Pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(doc.Pages))
	}
	if doc.Paper.URx != 612 || doc.Paper.URy != 792 {
		t.Errorf("wrong paper size %s", doc.Paper)
	}
	for i, p := range doc.Pages {
		if p.Lines[0].Text != p.Title {
			t.Errorf("page %d: first line %q does not match title %q",
				i+1, p.Lines[0].Text, p.Title)
		}
	}

	err := doc.Check()
	if err != nil {
		t.Fatal(err)
	}
}

func TestDefaultIsCopy(t *testing.T) {
	a := Default()
	a.Paper.URx = 100
	a.Pages[0].Lines[0].Text = "changed"

	b := Default()
	if b.Paper.URx != 612 {
		t.Error("paper size is shared between documents")
	}
	if b.Pages[0].Lines[0].Text == "changed" {
		t.Error("lines are shared between documents")
	}
	if Letter.URx != 612 {
		t.Error("Letter was modified")
	}
}

func TestLongLine(t *testing.T) {
	p := Default().Pages[2]
	n := len(p.Lines)
	first, rest := p.Lines[n-2].Text, p.Lines[n-1].Text

	if first+rest != LongText {
		t.Errorf("lines do not add up to the long text")
	}
	if utf8.RuneCountInString(first) != 80 {
		t.Errorf("first part has %d characters", utf8.RuneCountInString(first))
	}
	if first != "This is a very long line of text that should extend beyond the normal margins an" {
		t.Errorf("wrong first part %q", first)
	}
}

func TestStrings(t *testing.T) {
	doc := Default()

	all := doc.Strings()
	count := 0
	for _, p := range doc.Pages {
		count += len(p.Lines)
	}
	if len(all) != count {
		t.Errorf("expected %d strings, got %d", count, len(all))
	}

	got := doc.Pages[1].Strings()[9:]
	want := []string{
		"Table Data:",
		"Name        Age    City",
		"John Doe    25     New York",
		"Jane Smith  30     Los Angeles",
		"Bob Wilson  35     Chicago",
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("table mismatch (-want +got):\n%s", d)
	}
}

func TestAnchor(t *testing.T) {
	doc := Default()
	l := &Line{X: 100, Top: 140}
	a := doc.Anchor(l)
	if a.X != 100 || a.Y != 652 {
		t.Errorf("wrong anchor (%g, %g)", a.X, a.Y)
	}
}

func TestCheck(t *testing.T) {
	cases := []struct {
		name    string
		modify  func(doc *Document)
		outside bool
	}{
		{
			name:    "left of page",
			modify:  func(doc *Document) { doc.Pages[0].Lines[1].X = -1 },
			outside: true,
		},
		{
			name:    "below page",
			modify:  func(doc *Document) { doc.Pages[1].Lines[0].Top = 800 },
			outside: true,
		},
		{
			name:    "above page",
			modify:  func(doc *Document) { doc.Pages[2].Lines[3].Top = -10 },
			outside: true,
		},
		{
			name:   "empty text",
			modify: func(doc *Document) { doc.Pages[0].Lines[2].Text = "" },
		},
		{
			name:   "empty page",
			modify: func(doc *Document) { doc.Pages[1].Lines = nil },
		},
		{
			name:   "no pages",
			modify: func(doc *Document) { doc.Pages = nil },
		},
		{
			name:   "no paper",
			modify: func(doc *Document) { doc.Paper = nil },
		},
		{
			name:   "bad UTF-8",
			modify: func(doc *Document) { doc.Pages[2].Lines[1].Text = "caf\xe9" },
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			doc := Default()
			c.modify(doc)
			err := doc.Check()
			if err == nil {
				t.Fatal("expected an error")
			}
			if errors.Is(err, ErrOutsidePage) != c.outside {
				t.Errorf("unexpected error %v", err)
			}
		})
	}
}

func TestSplitAt(t *testing.T) {
	cases := []struct {
		in          string
		n           int
		first, rest string
	}{
		{"abcdef", 3, "abc", "def"},
		{"abc", 3, "abc", ""},
		{"abc", 5, "abc", ""},
		{"abc", 0, "", "abc"},
		{"", 2, "", ""},
		{"naïve café", 3, "naï", "ve café"},
		{"αβγδ", 2, "αβ", "γδ"},
	}
	for _, c := range cases {
		first, rest := SplitAt(c.in, c.n)
		if first != c.first || rest != c.rest {
			t.Errorf("SplitAt(%q, %d) = %q, %q, expected %q, %q",
				c.in, c.n, first, rest, c.first, c.rest)
		}
	}
}

func TestFontSize(t *testing.T) {
	l := &Line{}
	if l.FontSize() != DefaultFontSize {
		t.Errorf("wrong default size %g", l.FontSize())
	}
	l.Size = 20
	if l.FontSize() != 20 {
		t.Errorf("wrong size %g", l.FontSize())
	}
}

func TestFaceString(t *testing.T) {
	if s := GoRegular.String(); s != "Go-Regular" {
		t.Errorf("wrong name %q", s)
	}
	if s := Face(7).String(); s != "Face(7)" {
		t.Errorf("wrong name %q", s)
	}
}
