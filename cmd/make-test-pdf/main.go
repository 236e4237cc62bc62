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

// Make-test-pdf writes the text extraction test document.
//
// Without arguments, the document is written to "test_document.pdf" in the
// current directory.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/pdffixture/check"
	"seehuhn.de/go/pdffixture/fixture"
	"seehuhn.de/go/pdffixture/internal/buildinfo"
)

const cmdName = "make-test-pdf"

// config holds all command-line flag values.
type config struct {
	output   string
	expect   string
	password string
	check    bool
	version  bool
}

// defaultOutput is the name of the file written when no -o flag is given.
const defaultOutput = "test_document.pdf"

var errUsage = errors.New("unexpected arguments")

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		return
	} else if err != nil {
		os.Exit(2)
	}

	if cfg.version {
		fmt.Println(buildinfo.Short(cmdName))
		return
	}

	err = run(os.Stdout, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// parseArgs reads the command line arguments (without the program name).
// Usage information and flag errors are written to errOut.
func parseArgs(args []string, errOut io.Writer) (*config, error) {
	cfg := &config{}
	flags := flag.NewFlagSet(cmdName, flag.ContinueOnError)
	flags.SetOutput(errOut)
	flags.StringVar(&cfg.output, "o", defaultOutput, "write the PDF to `file`")
	flags.StringVar(&cfg.expect, "expect", "", "write the expected text to `file`")
	flags.StringVar(&cfg.password, "password", "", "encrypt the PDF with user password `pw`")
	flags.BoolVar(&cfg.check, "check", false, "read the file back and verify its contents")
	flags.BoolVar(&cfg.version, "version", false, "show version information")
	flags.Usage = func() {
		fmt.Fprintf(errOut, "%s \u2014 write a PDF file for testing text extraction\n", cmdName)
		fmt.Fprintf(errOut, "%s\n\n", buildinfo.Short(cmdName))
		fmt.Fprintf(errOut, "Usage:\n")
		fmt.Fprintf(errOut, "  %s [options]\n\n", cmdName)
		fmt.Fprintf(errOut, "Options:\n")
		flags.PrintDefaults()
	}

	err := flags.Parse(args)
	if err != nil {
		return nil, err
	}
	if flags.NArg() > 0 {
		flags.Usage()
		return nil, errUsage
	}
	return cfg, nil
}

// run writes the test document, and optionally the expected text, as
// described by cfg.  Progress messages go to w.
func run(w io.Writer, cfg *config) error {
	doc := fixture.Default()

	opt := &fixture.WriteOptions{
		UserPassword: cfg.password,
		Creator:      buildinfo.Short(cmdName),
	}
	err := doc.WriteFile(cfg.output, opt)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Created test PDF: %s\n", cfg.output)

	if cfg.expect != "" {
		err = writeExpected(cfg.expect, doc)
		if err != nil {
			return err
		}
	}

	if cfg.check {
		r, err := check.OpenFile(cfg.output, &check.Options{Password: cfg.password})
		if err != nil {
			return err
		}
		err = r.Verify(doc)
		if err != nil {
			return fmt.Errorf("%s: %w", cfg.output, err)
		}
		fmt.Fprintf(w, "Verified %d pages, %d words\n", r.NumPages, r.Words())
	}

	return nil
}

// writeExpected writes the strings of doc to the named file, one per line,
// with a marker line before each page.
func writeExpected(fileName string, doc *fixture.Document) error {
	fd, err := os.Create(fileName)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(fd)
	for i, p := range doc.Pages {
		fmt.Fprintf(w, "--- Page %d ---\n", i+1)
		for _, s := range p.Strings() {
			fmt.Fprintln(w, s)
		}
	}
	err = w.Flush()
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}
