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

// Package passwd asks the user for the password of an encrypted PDF file.
package passwd

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Prompter returns a function suitable for the ReadPassword field of
// [seehuhn.de/go/pdf.ReaderOptions].  The given passwords are tried
// first, in order.  After that the user is asked on the terminal, at most
// maxTries times.  If standard input is not a terminal, no questions are
// asked.
func Prompter(fileName string, maxTries int, passwords ...string) func(ID []byte, try int) string {
	fd := int(os.Stdin.Fd())
	return prompter(fileName, maxTries, passwords, term.IsTerminal(fd), func() ([]byte, error) {
		return term.ReadPassword(fd)
	}, os.Stderr)
}

func prompter(fileName string, maxTries int, passwords []string, interactive bool, read func() ([]byte, error), w io.Writer) func([]byte, int) string {
	return func(_ []byte, try int) string {
		if try < len(passwords) {
			return passwords[try]
		}
		if !interactive || try-len(passwords) >= maxTries {
			return ""
		}
		fmt.Fprintf(w, "password for %s: ", fileName)
		pw, err := read()
		fmt.Fprintln(w)
		if err != nil {
			return ""
		}
		return string(pw)
	}
}
