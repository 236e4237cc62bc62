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
	"strings"
	"unicode"
	"unicode/utf8"
)

// Messages returned by [Artifacts].
const (
	ArtifactSpacing       = "Excessive character spacing detected (possible OCR artifact)"
	ArtifactSingleChars   = "High number of isolated single characters"
	ArtifactConcatenated  = "Possible concatenated words detected"
	ArtifactControlChars  = "Non-printable control characters detected"
	ArtifactUnmappedGlyph = "Unmapped glyphs detected (replacement or private use characters)"
)

// Artifacts looks for traces of common text extraction problems in text.
// The result lists a description for every kind of problem found, in a
// fixed order.  An empty result means that no problem was detected.
//
// These are heuristics: a document which legitimately contains
// letter-spaced text (like the fixture) is reported, too.
func Artifacts(text string) []string {
	var res []string

	words := strings.Fields(text)

	// letters which are part of a run of at least three single-letter
	// words, like "S p a c e d"
	spaced, letters := 0, 0
	run := 0
	for _, w := range words {
		for _, r := range w {
			if unicode.IsLetter(r) {
				letters++
			}
		}
		if isSingleLetter(w) {
			run++
			continue
		}
		if run >= 3 {
			spaced += run
		}
		run = 0
	}
	if run >= 3 {
		spaced += run
	}
	if letters > 0 && spaced > letters/20 {
		res = append(res, ArtifactSpacing)
	}

	single := 0
	for _, w := range words {
		if isSingleLetter(w) {
			single++
		}
	}
	if len(words) > 0 && single > len(words)/10 {
		res = append(res, ArtifactSingleChars)
	}

	concatenated := 0
	for _, w := range words {
		if utf8.RuneCountInString(w) > 15 && hasInnerCapital(w) {
			concatenated++
		}
	}
	if concatenated > 5 {
		res = append(res, ArtifactConcatenated)
	}

	control, unmapped := 0, 0
	for _, r := range text {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			// normal white space
		case unicode.IsControl(r):
			control++
		case r == utf8.RuneError || unicode.Is(unicode.Co, r):
			unmapped++
		}
	}
	if control > 10 {
		res = append(res, ArtifactControlChars)
	}
	if unmapped > 0 {
		res = append(res, ArtifactUnmappedGlyph)
	}

	return res
}

// isSingleLetter reports whether w consists of exactly one ASCII letter.
func isSingleLetter(w string) bool {
	if len(w) != 1 {
		return false
	}
	c := w[0]
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// hasInnerCapital reports whether w has a lower case letter directly
// followed by an upper case letter, as in "wordsRunTogether".
func hasInnerCapital(w string) bool {
	prevLower := false
	for _, r := range w {
		if prevLower && unicode.IsUpper(r) {
			return true
		}
		prevLower = unicode.IsLower(r)
	}
	return false
}
