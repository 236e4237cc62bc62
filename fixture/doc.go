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

// Package fixture describes and writes a small PDF document which is used
// to test text extraction.
//
// The document consists of three US letter pages.  Every piece of text is
// a literal string placed at a literal position, so that the output of a
// text extractor can be compared with the known contents:
//
//   - page 1 has plain prose, letter-spaced "OCR-like" text, mixed case
//     text and bullet points,
//   - page 2 has a two-column layout and a table made of aligned text,
//   - page 3 has accented letters, Greek letters, mathematical symbols,
//     typographic punctuation and a long sentence broken at a fixed
//     character offset.
//
// Use [Default] to get the document and [Document.WriteFile] to write it.
package fixture
