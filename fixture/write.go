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
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/destination"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/font/gofont"
	"seehuhn.de/go/pdf/font/standard"
	"seehuhn.de/go/pdf/outline"
)

// WriteOptions control how a fixture document is written.
// The zero value, or a nil pointer, gives an unencrypted PDF-1.7 file
// with outline and metadata.
type WriteOptions struct {
	// Version is the PDF version of the output file.
	// If this is zero, PDF-1.7 is used.
	Version pdf.Version

	// UserPassword and OwnerPassword, if set, cause the file to be
	// encrypted.
	UserPassword  string
	OwnerPassword string

	// NoOutline disables the document outline.
	NoOutline bool

	// NoMetadata disables the Info dictionary and the XMP metadata stream.
	NoMetadata bool

	// Creator is the name of the program which generated the file.
	// This is recorded in the document metadata.
	Creator string
}

// WriteFile writes the document to the named file.  An existing file is
// overwritten.  If writing fails, the partial file is removed.
func (d *Document) WriteFile(fileName string, opt *WriteOptions) (err error) {
	fd, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			fd.Close()
			os.Remove(fileName)
		}
	}()

	err = d.Write(fd, opt)
	if err != nil {
		return err
	}
	return fd.Close()
}

// Write writes the document as a PDF file to w.
func (d *Document) Write(w io.Writer, opt *WriteOptions) error {
	if opt == nil {
		opt = &WriteOptions{}
	}

	err := d.Check()
	if err != nil {
		return err
	}

	v := opt.Version
	if v == 0 {
		v = pdf.V1_7
	}
	var wOpt *pdf.WriterOptions
	if opt.UserPassword != "" || opt.OwnerPassword != "" {
		wOpt = &pdf.WriterOptions{
			UserPassword:    opt.UserPassword,
			OwnerPassword:   opt.OwnerPassword,
			UserPermissions: pdf.PermCopy,
		}
	}

	doc, err := document.WriteMultiPage(w, d.Paper, v, wOpt)
	if err != nil {
		return err
	}

	fonts := make(fontCache)
	pageRefs := make([]pdf.Reference, len(d.Pages))
	for i, p := range d.Pages {
		pageRefs[i] = doc.Out.Alloc()
		err = d.drawPage(doc, pageRefs[i], p, fonts)
		if err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
	}

	if !opt.NoOutline {
		err = d.outline(pageRefs).Write(doc.RM)
		if err != nil {
			return fmt.Errorf("outline: %w", err)
		}
	}

	if !opt.NoMetadata {
		err = d.writeMetadata(doc.Out, opt.Creator)
		if err != nil {
			return fmt.Errorf("metadata: %w", err)
		}
	}

	return doc.Close()
}

// drawPage places every line of p on a new page.  Each line is set in its
// own text object, starting at the absolute position of the line.
func (d *Document) drawPage(doc *document.MultiPage, ref pdf.Reference, p *Page, fonts fontCache) error {
	page := doc.AddPage()
	page.Ref = ref

	for i := range p.Lines {
		l := &p.Lines[i]
		F, err := fonts.get(l.Face)
		if err != nil {
			return err
		}

		at := d.Anchor(l)
		page.TextBegin()
		page.TextSetFont(F, l.FontSize())
		page.TextFirstLine(at.X, at.Y)
		page.TextShow(l.Text)
		page.TextEnd()
	}

	return page.Close()
}

// outline returns a document outline with one entry per page.  Each entry
// points to the top of the first line on the page.
func (d *Document) outline(pageRefs []pdf.Reference) *outline.Outline {
	tree := &outline.Outline{}
	for i, p := range d.Pages {
		title := p.Title
		if title == "" {
			title = fmt.Sprintf("Page %d", i+1)
		}

		top := d.Paper.URy
		if len(p.Lines) > 0 {
			l := &p.Lines[0]
			top = d.Anchor(l).Y + l.FontSize()
		}

		tree.Items = append(tree.Items, &outline.Item{
			Title: title,
			Destination: &destination.XYZ{
				Page: pageRefs[i],
				Left: d.Paper.LLx,
				Top:  min(top, d.Paper.URy),
			},
		})
	}
	return tree
}

// fontCache makes sure that every face is loaded only once per document,
// so that all pages share the same font resource.
type fontCache map[Face]font.Instance

func (c fontCache) get(face Face) (font.Instance, error) {
	if F, ok := c[face]; ok {
		return F, nil
	}

	var F font.Instance
	switch face {
	case Helvetica:
		F = standard.Helvetica.New()
	case GoRegular:
		goFont, err := gofont.Regular.New(nil)
		if err != nil {
			return nil, err
		}
		F = goFont
	default:
		return nil, fmt.Errorf("unknown font face %s", face)
	}
	c[face] = F
	return F, nil
}
