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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/pdf"

	"seehuhn.de/go/pdffixture/fixture"
)

func TestArtifacts(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "clean",
			in:   "This is a normal paragraph with standard text.\nIt contains multiple sentences.",
		},
		{
			name: "empty",
			in:   "",
		},
		{
			name: "spaced",
			in:   "S p a c e d t e x t l i k e O C R",
			want: []string{ArtifactSpacing, ArtifactSingleChars},
		},
		{
			name: "concatenated",
			in: "firstWordsMergedTogether secondWordsMergedTogether " +
				"thirdWordsMergedTogether fourthWordsMergedTogether " +
				"fifthWordsMergedTogether sixthWordsMergedTogether",
			want: []string{ArtifactConcatenated},
		},
		{
			name: "control",
			in:   "text\x01\x02\x03\x04\x05\x06\x07\x08\x0b\x0c\x0e with control characters",
			want: []string{ArtifactControlChars},
		},
		{
			name: "unmapped",
			in:   "caf\uFFFD and \uE000",
			want: []string{ArtifactUnmappedGlyph},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Artifacts(c.in)
			if d := cmp.Diff(c.want, got); d != "" {
				t.Errorf("artifacts mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"Name        Age    City", "Name Age City"},
		{"  leading\tand\ntrailing  ", "leading and trailing"},
		{"café", "café"},
		{"", ""},
	}
	for _, c := range cases {
		if got := normalize(c.in); got != c.out {
			t.Errorf("normalize(%q) = %q, expected %q", c.in, got, c.out)
		}
	}
}

// fakeReport returns a report as it would be produced for a perfect
// extraction of doc.
func fakeReport(doc *fixture.Document) *Report {
	r := &Report{
		NumPages: len(doc.Pages),
	}
	for i, p := range doc.Pages {
		r.PageSizes = append(r.PageSizes, Size{Width: 612, Height: 792})
		text := ""
		for _, s := range p.Strings() {
			text += s + "\n"
		}
		r.Pages = append(r.Pages, PageText{Number: i + 1, Text: text})
		r.Outline = append(r.Outline, Section{Title: p.Title, Page: i + 1})
	}
	return r
}

func TestVerify(t *testing.T) {
	doc := fixture.Default()

	err := fakeReport(doc).Verify(doc)
	if err != nil {
		t.Fatal(err)
	}

	r := fakeReport(doc)
	r.NumPages = 2
	err = r.Verify(doc)
	if !errors.Is(err, ErrPageCount) {
		t.Errorf("unexpected error %v", err)
	}

	r = fakeReport(doc)
	r.PageSizes[1] = Size{Width: 595.276, Height: 841.89}
	err = r.Verify(doc)
	if !errors.Is(err, ErrPageSize) {
		t.Errorf("unexpected error %v", err)
	}

	r = fakeReport(doc)
	r.PageSizes = nil
	err = r.Verify(doc)
	if !errors.Is(err, ErrPageSize) {
		t.Errorf("unknown page sizes: unexpected error %v", err)
	}

	r = fakeReport(doc)
	r.PageSizes = r.PageSizes[:2]
	err = r.Verify(doc)
	if !errors.Is(err, ErrPageSize) {
		t.Errorf("missing page size: unexpected error %v", err)
	}

	r = fakeReport(doc)
	r.PageSizes[0] = Size{}
	err = r.Verify(doc)
	if !errors.Is(err, ErrPageSize) {
		t.Errorf("zero page size: unexpected error %v", err)
	}

	r = fakeReport(doc)
	r.Outline[2].Page = 1
	err = r.Verify(doc)
	if !errors.Is(err, ErrOutline) {
		t.Errorf("unexpected error %v", err)
	}

	r = fakeReport(doc)
	r.Pages[2].Text = "nothing to see here"
	err = r.Verify(doc)
	if !errors.Is(err, ErrMissingText) {
		t.Errorf("unexpected error %v", err)
	}
	var missing *MissingError
	if !errors.As(err, &missing) {
		t.Fatalf("unexpected error type %T", err)
	}
	if len(missing.Missing) != len(doc.Pages[2].Lines) {
		t.Errorf("expected %d missing strings, got %d",
			len(doc.Pages[2].Lines), len(missing.Missing))
	}
	for _, m := range missing.Missing {
		if m.Page != 3 {
			t.Errorf("unexpected missing string %s", m)
		}
	}
}

func TestMissingSpacing(t *testing.T) {
	doc := fixture.Default()
	r := fakeReport(doc)

	// extractors often change the amount of white space
	r.Pages[1].Text = "Page 2: Complex Layout Testing\n" +
		"Left Column: Right Column:\n" +
		"This text should be in This text should be in\n" +
		"the left column area the right column area\n" +
		"with multiple lines with different content\n\n" +
		"Table Data:\nName Age City\nJohn Doe 25 New York\n" +
		"Jane Smith 30 Los Angeles\nBob Wilson 35 Chicago\n"

	got := r.Missing(doc)
	if len(got) != 0 {
		t.Errorf("unexpected missing strings %v", got)
	}
}

func TestMissingDuplicate(t *testing.T) {
	doc := fixture.Default()
	r := fakeReport(doc)

	// "This text should be in" is drawn in both columns; the right
	// column is lost here
	r.Pages[1].Text = "Page 2: Complex Layout Testing\n" +
		"Left Column:\nThis text should be in\n" +
		"the left column area\nwith multiple lines\n" +
		"Right Column:\n" +
		"the right column area\nwith different content\n" +
		"Table Data:\nName Age City\nJohn Doe 25 New York\n" +
		"Jane Smith 30 Los Angeles\nBob Wilson 35 Chicago\n"

	got := r.Missing(doc)
	want := []Missing{{Page: 2, Text: "This text should be in"}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("missing mismatch (-want +got):\n%s", d)
	}
}

func TestPageSize(t *testing.T) {
	cases := []struct {
		name string
		page pdf.Dict
		want Size
	}{
		{
			name: "letter",
			page: pdf.Dict{"MediaBox": pdf.Array{
				pdf.Integer(0), pdf.Integer(0), pdf.Integer(612), pdf.Integer(792),
			}},
			want: Size{Width: 612, Height: 792},
		},
		{
			name: "offset",
			page: pdf.Dict{"MediaBox": pdf.Array{
				pdf.Integer(10), pdf.Integer(20), pdf.Number(605.276), pdf.Number(861.89),
			}},
			want: Size{Width: 595.276, Height: 841.89},
		},
		{
			name: "missing",
			page: pdf.Dict{},
		},
		{
			name: "malformed",
			page: pdf.Dict{"MediaBox": pdf.Array{pdf.Integer(612), pdf.Integer(792)}},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := pageSize(nil, c.page)
			if d := cmp.Diff(c.want, got, cmpopts.EquateApprox(0, 1e-6)); d != "" {
				t.Errorf("size mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestReportText(t *testing.T) {
	r := &Report{
		Pages: []PageText{
			{Number: 1, Text: "one two\n\n"},
			{Number: 2, Text: "  three\n"},
		},
	}
	if got := r.Text(); got != "one two\n\nthree" {
		t.Errorf("wrong text %q", got)
	}
	if got := r.Words(); got != 3 {
		t.Errorf("wrong word count %d", got)
	}
}
