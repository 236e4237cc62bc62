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

package passwd

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPrompter(t *testing.T) {
	asked := 0
	read := func() ([]byte, error) {
		asked++
		return []byte("typed"), nil
	}
	out := &bytes.Buffer{}
	f := prompter("a.pdf", 2, []string{"one", "two"}, true, read, out)

	want := []string{"one", "two", "typed", "typed", ""}
	for try, w := range want {
		if got := f(nil, try); got != w {
			t.Errorf("try %d: got %q, expected %q", try, got, w)
		}
	}
	if asked != 2 {
		t.Errorf("user was asked %d times", asked)
	}
	if !strings.Contains(out.String(), "password for a.pdf: ") {
		t.Errorf("unexpected prompt %q", out.String())
	}
}

func TestPrompterNotInteractive(t *testing.T) {
	read := func() ([]byte, error) {
		t.Error("unexpected read")
		return nil, nil
	}
	f := prompter("a.pdf", 3, nil, false, read, &bytes.Buffer{})
	if got := f(nil, 0); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestPrompterError(t *testing.T) {
	read := func() ([]byte, error) {
		return nil, errors.New("no terminal")
	}
	f := prompter("a.pdf", 3, nil, true, read, &bytes.Buffer{})
	if got := f(nil, 0); got != "" {
		t.Errorf("got %q", got)
	}
}
