/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/mibigtaxa/pkg/errcode"
)

// MissingInputError is returned when a required build path is not set.
func MissingInputError(flag, env string) error {
	msg := `Path for <em>--%s</em> is not set

<em>How to fix:</em>
  1. Use the --%s flag
  2. Or set the %s environment variable
  3. Or set it in config.yaml`
	vars := []any{flag, flag, env}

	return &gn.Error{
		Code: errcode.MissingInputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("missing required input --%s", flag),
	}
}

// BadTaxIDError is returned when an argument is not an integer ID.
func BadTaxIDError(arg string, err error) error {
	msg := "Taxonomy ID must be an integer, got <em>%s</em>"
	vars := []any{arg}

	return &gn.Error{
		Code: errcode.BadTaxIDError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("bad taxonomy ID %q: %w", arg, err),
	}
}
