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

// Check-extraction reports how well the text of a PDF file can be
// extracted.
//
// For every file given on the command line, the text is extracted by two
// independent libraries.  For each of them the program prints the time
// taken for extraction, the number of pages, words and characters, a
// sample of the text, and a list of suspected extraction artifacts.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"

	"seehuhn.de/go/pdffixture/check"
	"seehuhn.de/go/pdffixture/fixture"
	"seehuhn.de/go/pdffixture/internal/buildinfo"
	"seehuhn.de/go/pdffixture/internal/passwd"
)

const cmdName = "check-extraction"

// sampleLength is the maximum number of characters shown from the
// extracted text.
const sampleLength = 500

// config holds all command-line flag values.
type config struct {
	fullText      bool
	fixture       bool
	validate      bool
	password      string
	useActualText bool
	width         int // maximal width of sample lines, 0 for no limit
}

func main() {
	var cfg config
	flag.BoolVar(&cfg.fullText, "P", false, "show the full text of every page instead of a sample")
	flag.BoolVar(&cfg.fixture, "fixture", false, "verify the file against the built-in test document")
	flag.BoolVar(&cfg.validate, "validate", false, "validate the file structure")
	flag.StringVar(&cfg.password, "password", "", "try password `pw` for encrypted files")
	flag.BoolVar(&cfg.useActualText, "use-actualtext", false, "use ActualText from marked content")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s \u2014 report on the text extracted from PDF files\n", cmdName)
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short(cmdName))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  %s [options] file.pdf...\n\n", cmdName)
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			cfg.width = w
		}
	}

	failed := false
	for i, fname := range flag.Args() {
		if i > 0 {
			fmt.Println()
			fmt.Println(strings.Repeat("=", 70))
			fmt.Println()
		}
		err := report(os.Stdout, fname, &cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", fname, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// report writes the extraction report for one file to w.  An error is
// returned if the file cannot be read, or if verification was requested
// and fails.
//
// The text is extracted twice, by two independent libraries.  Only the
// first extractor decides whether verification succeeds; the second one
// is shown for comparison and is skipped for encrypted files.
func report(w io.Writer, fileName string, cfg *config) error {
	var passwords []string
	if cfg.password != "" {
		passwords = append(passwords, cfg.password)
	}
	opt := &check.Options{
		ReadPassword:  passwd.Prompter(fileName, 3, passwords...),
		UseActualText: cfg.useActualText,
	}
	r, err := check.OpenFile(fileName, opt)
	if err != nil {
		return err
	}

	var doc *fixture.Document
	if cfg.fixture {
		doc = fixture.Default()
	}

	fmt.Fprintf(w, "Text extraction for: %s\n", fileName)
	if r.Title != "" {
		fmt.Fprintf(w, "Title: %s\n", r.Title)
	}
	if r.Encrypted {
		fmt.Fprintln(w, "Encrypted: yes")
	}

	fmt.Fprintf(w, "\n%d. %s\n", 1, extractorNames[0])
	fmt.Fprintln(w, strings.Repeat("-", 70))
	summary(w, r, doc, cfg)

	fmt.Fprintf(w, "\n%d. %s\n", 2, extractorNames[1])
	fmt.Fprintln(w, strings.Repeat("-", 70))
	if r.Encrypted {
		fmt.Fprintln(w, "Skipped: the file is encrypted.")
	} else if plain, err := check.PlainTextFile(fileName); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
	} else {
		summary(w, plain, doc, cfg)
	}

	if cfg.validate {
		fd, err := os.Open(fileName)
		if err != nil {
			return err
		}
		err = r.Validate(fd)
		fd.Close()
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintf(w, "\nFile structure is valid.\n")
	}

	if doc != nil {
		err = r.Verify(doc)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\nAll %d strings of the test document were found.\n",
			len(doc.Strings()))
	}

	return nil
}

// extractorNames are the libraries used for the two sections of the
// report.
var extractorNames = [2]string{
	"seehuhn.de/go/pdf",
	"github.com/dslipak/pdf",
}

// summary writes the metrics, the text or a sample, and the artifact list
// for one extractor.  If doc is not nil, strings of doc which the
// extractor did not find are listed.
func summary(w io.Writer, r *check.Report, doc *fixture.Document, cfg *config) {
	text := r.Text()

	fmt.Fprintf(w, "Extraction time: %v\n", r.Elapsed)
	fmt.Fprintf(w, "Pages processed: %d\n", r.NumPages)
	fmt.Fprintf(w, "Text length: %d characters\n", utf8.RuneCountInString(text))
	fmt.Fprintf(w, "Word count: %d\n", r.Words())

	if cfg.fullText {
		for _, p := range r.Pages {
			fmt.Fprintf(w, "\n--- Page %d ---\n\n", p.Number)
			fmt.Fprintln(w, strings.TrimSpace(p.Text))
		}
	} else {
		fmt.Fprintf(w, "\nSample text:\n%s\n", sample(text, sampleLength, cfg.width))
	}

	artifacts := check.Artifacts(text)
	if len(artifacts) > 0 {
		fmt.Fprintf(w, "\nPotential artifacts detected:\n")
		for _, a := range artifacts {
			fmt.Fprintf(w, "- %s\n", a)
		}
	} else {
		fmt.Fprintf(w, "\nNo obvious artifacts detected.\n")
	}

	if doc == nil {
		return
	}
	missing := r.Missing(doc)
	if len(missing) > 0 {
		fmt.Fprintf(w, "\nMissing text (%d of %d strings):\n",
			len(missing), len(doc.Strings()))
		for _, m := range missing {
			fmt.Fprintf(w, "- %s\n", m)
		}
	} else {
		fmt.Fprintf(w, "\nNo missing text.\n")
	}
}

// sample returns the first n characters of text, followed by "..." if
// the text was shortened.  If width is positive, longer lines are cut to
// this many characters.
func sample(text string, n, width int) string {
	short := text
	if utf8.RuneCountInString(text) > n {
		short, _ = fixture.SplitAt(text, n)
		short += "..."
	}
	if width <= 0 {
		return short
	}

	lines := strings.Split(short, "\n")
	for i, l := range lines {
		if utf8.RuneCountInString(l) > width {
			lines[i], _ = fixture.SplitAt(l, width)
		}
	}
	return strings.Join(lines, "\n")
}
