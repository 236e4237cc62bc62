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
	"time"

	"golang.org/x/text/language"

	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdf"
)

// producer is recorded as the PDF producer in the document metadata.
const producer = "seehuhn.de/go/pdffixture"

// writeMetadata adds an Info dictionary and an XMP metadata stream to the
// document.  Both carry the same title and description.
func (d *Document) writeMetadata(out *pdf.Writer, creator string) error {
	meta := out.GetMeta()
	meta.Info = &pdf.Info{
		Title:    pdf.TextString(d.Title),
		Subject:  pdf.TextString(d.Subject),
		Creator:  pdf.TextString(creator),
		Producer: producer,
	}

	now := time.Now()

	dc := &xmp.DublinCore{}
	dc.Title.Set(language.MustParse("x-default"), d.Title)
	dc.Title.Set(language.English, d.Title)
	dc.Description.Set(language.MustParse("x-default"), d.Subject)
	dc.Description.Set(language.English, d.Subject)
	basic := &xmp.Basic{}
	basic.CreateDate = xmp.NewDate(now)
	basic.ModifyDate = xmp.NewDate(now)
	pdfInfo := &pdfNamespace{}
	pdfInfo.Keywords = xmp.NewText("text extraction, test fixture")
	pdfInfo.Producer = xmp.NewAgentName(producer)

	packet := xmp.NewPacket()
	packet.Set(dc, basic, pdfInfo)

	ref := out.Alloc()
	dict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	stm, err := out.OpenStream(ref, dict)
	if err != nil {
		return err
	}
	err = packet.Write(stm, &xmp.PacketOptions{Pretty: true})
	if err != nil {
		return err
	}
	err = stm.Close()
	if err != nil {
		return err
	}

	meta.Catalog.Metadata = ref
	return nil
}

// pdfNamespace is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type pdfNamespace struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
	Producer xmp.AgentName
}
