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

import "seehuhn.de/go/pdf"

// Letter is the US letter paper size, 8.5in x 11in.
var Letter = &pdf.Rectangle{URx: 612, URy: 792}

const (
	left        = 100 // left margin of all text
	rightColumn = 350 // start of the right column on page 2

	// longLineBreak is the character offset where the long sentence on
	// page 3 is broken.
	longLineBreak = 80
)

// LongText is the sentence which is drawn as two lines at the end of
// page 3.
const LongText = "This is a very long line of text that should extend beyond " +
	"the normal margins and might cause issues with text extraction if the " +
	"PDF parser doesn't handle line breaks and word boundaries correctly."

// Default returns the standard three-page test document.
// Each call returns a new copy, which the caller may modify.
func Default() *Document {
	paper := *Letter
	return &Document{
		Title:   "Text Extraction Test Document",
		Subject: "Plain text, letter-spaced text, columns, tables and special characters",
		Paper:   &paper,
		Pages: []*Page{
			simpleTextPage(),
			layoutPage(),
			edgeCasePage(),
		},
	}
}

func simpleTextPage() *Page {
	return &Page{
		Title: "Page 1: Simple Text Testing",
		Lines: []Line{
			{X: left, Top: 100, Text: "Page 1: Simple Text Testing"},
			{X: left, Top: 140, Text: "This is a normal paragraph with standard text."},
			{X: left, Top: 160, Text: "It contains multiple sentences to test basic extraction."},
			{X: left, Top: 180, Text: "Numbers: 12345, Symbols: !@#$%, Mixed: Text123"},

			// letter-spaced text, as OCR software sometimes produces
			{X: left, Top: 220, Text: "S p a c e d   t e x t   l i k e   O C R   m i g h t   p r o d u c e"},

			{X: left, Top: 260, Text: "CamelCaseText and normal text mixed together"},
			{X: left, Top: 280, Text: "ALL CAPS TEXT AND normal text"},

			{X: left, Top: 320, Text: "• First bullet point"},
			{X: left, Top: 340, Text: "• Second bullet point with more text content"},
			{X: left, Top: 360, Text: "• Third point"},
		},
	}
}

func layoutPage() *Page {
	return &Page{
		Title: "Page 2: Complex Layout Testing",
		Lines: []Line{
			{X: left, Top: 100, Text: "Page 2: Complex Layout Testing"},

			{X: left, Top: 140, Text: "Left Column:"},
			{X: left, Top: 160, Text: "This text should be in"},
			{X: left, Top: 180, Text: "the left column area"},
			{X: left, Top: 200, Text: "with multiple lines"},

			{X: rightColumn, Top: 140, Text: "Right Column:"},
			{X: rightColumn, Top: 160, Text: "This text should be in"},
			{X: rightColumn, Top: 180, Text: "the right column area"},
			{X: rightColumn, Top: 200, Text: "with different content"},

			// The columns of the table are aligned using spaces only.
			{X: left, Top: 280, Text: "Table Data:"},
			{X: left, Top: 300, Text: "Name        Age    City"},
			{X: left, Top: 320, Text: "John Doe    25     New York"},
			{X: left, Top: 340, Text: "Jane Smith  30     Los Angeles"},
			{X: left, Top: 360, Text: "Bob Wilson  35     Chicago"},
		},
	}
}

func edgeCasePage() *Page {
	first, rest := SplitAt(LongText, longLineBreak)
	return &Page{
		Title: "Page 3: Edge Cases and Special Characters",
		Lines: []Line{
			{X: left, Top: 100, Text: "Page 3: Edge Cases and Special Characters", Face: GoRegular},
			{X: left, Top: 140, Text: "Unicode: café résumé naïve coöperate", Face: GoRegular},
			{X: left, Top: 160, Text: "Accents: àáâãäåæçèéêëìíîïñòóôõöøùúûüý", Face: GoRegular},
			{X: left, Top: 180, Text: "Math: α β γ δ ε π Σ ∑ ∫ ∞ ≤ ≥ ≠ ±", Face: GoRegular},
			{X: left, Top: 200, Text: `Quotes: "smart quotes" 'single quotes' «guillemets»`, Face: GoRegular},
			{X: left, Top: 220, Text: "Em dash—en dash–hyphen-", Face: GoRegular},
			{X: left, Top: 240, Text: "Ellipsis… and three dots...", Face: GoRegular},

			{X: left, Top: 280, Text: first, Face: GoRegular},
			{X: left, Top: 300, Text: rest, Face: GoRegular},
		},
	}
}
