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
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	plainpdf "github.com/dslipak/pdf"
)

// PlainTextFile reads the named PDF file with [PlainText].
func PlainTextFile(fileName string) (*Report, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	return PlainText(bytes.NewReader(data), int64(len(data)))
}

// PlainText extracts the text of a PDF file using github.com/dslipak/pdf.
// This extractor shares no code with the one used by [Open], so that the
// two results can be compared.  Only NumPages, Pages, Title and Elapsed
// are set in the returned report.  Encrypted files cannot be read.
func PlainText(r io.ReaderAt, size int64) (res *Report, err error) {
	// the library panics on some kinds of malformed input
	defer func() {
		if p := recover(); p != nil {
			res = nil
			err = fmt.Errorf("malformed PDF: %v", p)
		}
	}()

	doc, err := plainpdf.NewReader(r, size)
	if err != nil {
		return nil, err
	}

	res = &Report{
		NumPages: doc.NumPage(),
		Title:    doc.Trailer().Key("Info").Key("Title").Text(),
	}

	start := time.Now()
	for i := 1; i <= res.NumPages; i++ {
		var text string
		page := doc.Page(i)
		if !page.V.IsNull() {
			text, err = page.GetPlainText(nil)
			if err != nil {
				return nil, fmt.Errorf("page %d: %w", i, err)
			}
		}
		res.Pages = append(res.Pages, PageText{Number: i, Text: text})
	}
	res.Elapsed = time.Since(start)

	return res, nil
}
