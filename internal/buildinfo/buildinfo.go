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

// Package buildinfo describes the version of the running program.
package buildinfo

import (
	"runtime/debug"
)

// Short returns a one-line description of a command, for use in usage
// messages, e.g. "make-test-pdf (seehuhn.de/go/pdffixture v0.1.0)".
// If no version information is compiled into the binary, only the
// command name is returned.
func Short(cmdName string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return cmdName
	}
	v := version(info)
	if v == "" {
		return cmdName
	}
	return cmdName + " (" + info.Main.Path + " " + v + ")"
}

// version returns the module version, or the abbreviated VCS revision for
// development builds.
func version(info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if rev != "" && dirty {
		rev += "+dirty"
	}
	return rev
}
