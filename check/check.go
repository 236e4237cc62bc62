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

// Package check reads a PDF file back and reports what a text extractor
// sees in it.
//
// The report can be compared against a [fixture.Document] to find text
// which was drawn but cannot be extracted, and the extracted text can be
// scanned for common extraction artifacts.
package check

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strings"
	"time"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/outline"
	"seehuhn.de/go/pdf/pagetree"
	"seehuhn.de/go/pdf/tools/pdf-extract/sections"
	"seehuhn.de/go/pdf/tools/pdf-extract/text"
)

// Options control how a file is opened.  A nil pointer is the same as the
// zero value.
type Options struct {
	// Password is tried first when the file is encrypted.
	Password string

	// ReadPassword, if set, is called when Password is empty or wrong.
	// The arguments are the file ID and the number of the attempt,
	// starting at 0.  Returning the empty string aborts.
	ReadPassword func(ID []byte, try int) string

	// UseActualText makes the extractor use ActualText entries of marked
	// content, instead of the text of the glyphs.
	UseActualText bool
}

// Size is the width and height of a page, in PDF units.
type Size struct {
	Width, Height float64
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// PageText is the text extracted from one page.
type PageText struct {
	Number int // 1-based
	Text   string
}

// Section is an entry of the document outline.
type Section struct {
	Title string
	Page  int     // 1-based, 0 if the target page could not be found
	Top   float64 // y coordinate of the destination, +Inf if unknown
}

// Report describes a PDF file as seen by a text extractor.
type Report struct {
	NumPages  int
	PageSizes []Size
	Pages     []PageText
	Title     string
	Outline   []Section

	// Encrypted is set if the file required a password.
	Encrypted bool

	// Elapsed is the time taken to extract the text of all pages.
	Elapsed time.Duration

	// password is the password which opened the file, if any.
	password string
}

// OpenFile reads the named PDF file and returns a report about it.
func OpenFile(fileName string, opt *Options) (*Report, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	return Open(bytes.NewReader(data), opt)
}

// Open reads a PDF file from r and returns a report about it.
func Open(r io.ReadSeeker, opt *Options) (*Report, error) {
	if opt == nil {
		opt = &Options{}
	}

	// remember which password worked, for [Report.Validate]
	var password string
	var encrypted bool
	tryPasswd := func(ID []byte, try int) string {
		encrypted = true
		if opt.Password != "" {
			if try == 0 {
				password = opt.Password
				return password
			}
			try--
		}
		if opt.ReadPassword == nil {
			return ""
		}
		password = opt.ReadPassword(ID, try)
		return password
	}

	doc, err := pdf.NewReader(r, &pdf.ReaderOptions{
		ReadPassword:  tryPasswd,
		ErrorHandling: pdf.ErrorHandlingReport,
	})
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	numPages, err := pagetree.NumPages(doc)
	if err != nil {
		return nil, err
	}
	res := &Report{
		NumPages: numPages,
	}
	if info := doc.GetMeta().Info; info != nil {
		res.Title = string(info.Title)
	}

	start := time.Now()
	buf := &bytes.Buffer{}
	extractor := text.New(doc, buf)
	extractor.UseActualText = opt.UseActualText
	extractor.XRangeMin = math.Inf(-1)
	extractor.XRangeMax = math.Inf(+1)
	for i := range numPages {
		_, pageDict, err := pagetree.GetPage(doc, i)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}

		res.PageSizes = append(res.PageSizes, pageSize(doc, pageDict))

		buf.Reset()
		err = extractor.ExtractPage(pageDict)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		res.Pages = append(res.Pages, PageText{
			Number: i + 1,
			Text:   buf.String(),
		})
	}
	res.Elapsed = time.Since(start)

	res.Outline, err = readOutline(doc)
	if err != nil {
		return nil, err
	}

	res.Encrypted = encrypted
	res.password = password

	return res, nil
}

// pageSize returns the dimensions of the media box of a page.  The page
// tree lookup has already copied an inherited MediaBox into pageDict.  A
// missing or malformed media box gives the zero size, which
// [Report.Verify] rejects.
func pageSize(doc pdf.Getter, pageDict pdf.Dict) Size {
	box, err := pdf.GetRectangle(doc, pageDict["MediaBox"])
	if err != nil || box == nil {
		return Size{}
	}
	return Size{Width: box.URx - box.LLx, Height: box.URy - box.LLy}
}

// readOutline lists the top-level entries of the document outline,
// together with the page each entry points to.
func readOutline(doc pdf.Getter) ([]Section, error) {
	tree, err := outline.Read(doc)
	if err != nil {
		return nil, fmt.Errorf("outline: %w", err)
	}
	if tree == nil {
		return nil, nil
	}

	var res []Section
	for _, item := range tree.Items {
		s := Section{
			Title: item.Title,
			Top:   math.Inf(+1),
		}
		pattern := "^" + regexp.QuoteMeta(item.Title) + "$"
		if rng, err := sections.Pages(doc, pattern); err == nil {
			s.Page = rng.FirstPage + 1
			s.Top = rng.YMax
		}
		res = append(res, s)
	}
	return res, nil
}

// Text returns the extracted text of all pages, separated by blank lines.
func (r *Report) Text() string {
	parts := make([]string, len(r.Pages))
	for i, p := range r.Pages {
		parts[i] = strings.TrimSpace(p.Text)
	}
	return strings.Join(parts, "\n\n")
}

// Words returns the number of whitespace-separated words in the
// extracted text.
func (r *Report) Words() int {
	n := 0
	for _, p := range r.Pages {
		n += len(strings.Fields(p.Text))
	}
	return n
}
