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
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var disableConfigDir sync.Once

// pdfcpuConfig returns a configuration for the second, independent PDF
// reader.  pdfcpu would otherwise create a configuration directory in the
// user's home directory.
func pdfcpuConfig(password string) *model.Configuration {
	disableConfigDir.Do(api.DisableConfigDir)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if password != "" {
		conf.UserPW = password
	}
	return conf
}

// Validate checks the structure of a PDF file.  The check is done by
// pdfcpu, which shares no code with the library used to write and read the
// fixtures, so that errors in one cannot hide errors in the other.
func Validate(r io.ReadSeeker, password string) error {
	return api.Validate(r, pdfcpuConfig(password))
}

// Validate checks the structure of the file the report was made from, like
// the function [Validate].  The password which opened the file in [Open] is
// used again, so that prompted passwords need not be entered twice.  The
// page dimensions seen by pdfcpu must agree with r.PageSizes.
func (r *Report) Validate(rs io.ReadSeeker) error {
	err := Validate(rs, r.password)
	if err != nil {
		return err
	}

	_, err = rs.Seek(0, io.SeekStart)
	if err != nil {
		return err
	}
	sizes, err := pageSizes(rs, r.password)
	if err != nil {
		return err
	}
	if len(sizes) != len(r.PageSizes) {
		return fmt.Errorf("%w: pdfcpu sees %d pages, expected %d",
			ErrPageSize, len(sizes), len(r.PageSizes))
	}
	for i, got := range sizes {
		want := r.PageSizes[i]
		if math.Abs(got.Width-want.Width) > sizeTolerance ||
			math.Abs(got.Height-want.Height) > sizeTolerance {
			return fmt.Errorf("%w: pdfcpu sees page %d as %s, expected %s",
				ErrPageSize, i+1, got, want)
		}
	}
	return nil
}

// pageSizes returns the media box dimensions of all pages, as seen by
// pdfcpu.  Inherited attributes from the page tree are taken into account.
func pageSizes(r io.ReadSeeker, password string) ([]Size, error) {
	dims, err := api.PageDims(r, pdfcpuConfig(password))
	if err != nil {
		return nil, err
	}
	res := make([]Size, len(dims))
	for i, d := range dims {
		res[i] = Size{Width: d.Width, Height: d.Height}
	}
	return res, nil
}
