// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Format is an output format of the commands which print tables.
type Format int

const (
	FormatUndefined = Format(iota)
	FormatText
	FormatJSON
)

// ParseFormat parses "text" or "json".
func ParseFormat(s string) Format {
	switch strings.Trim(strings.ToLower(s), " ") {
	case "text":
		return FormatText
	case "json":
		return FormatJSON
	}
	return FormatUndefined
}

// FormatFlag is the "--format" option shared by commands.
type FormatFlag struct {
	Format *string `long:"format" description:"output format [text, json]"`
}

// Get returns the requested format, FormatText if none.
func (f FormatFlag) Get() (Format, error) {
	if f.Format == nil {
		return FormatText, nil
	}
	format := ParseFormat(*f.Format)
	if format == FormatUndefined {
		return FormatUndefined, ErrArgs{Err: fmt.Errorf("unknown format '%s'", *f.Format)}
	}
	return format, nil
}

// Output returns w, or os.Stdout if w is nil.
func Output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
