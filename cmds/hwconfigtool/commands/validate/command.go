// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validate

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-multierror"

	"github.com/linuxboot/hwconfig/cmds/hwconfigtool/commands"
	"github.com/linuxboot/hwconfig/pkg/dump"
	"github.com/linuxboot/hwconfig/pkg/klv"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	out io.Writer
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "checks the structure of dumps"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return `Walks every record of each given dump and reports the first structural
problem found in it. The exit code is non-zero if any dump is invalid.`
}

// Execute is the main function here. It is responsible to
// start the execution of the command.
//
// `args` are the arguments left unused by verb itself and options.
func (cmd *Command) Execute(args []string) error {
	if len(args) == 0 {
		return commands.ErrArgs{Err: fmt.Errorf("no dump given")}
	}

	w := commands.Output(cmd.out)
	var result *multierror.Error
	for _, path := range args {
		if err := check(w, path); err != nil {
			fmt.Fprintf(w, "%s: FAIL: %v\n", path, err)
			result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))
		}
	}
	return result.ErrorOrNil()
}

func check(w io.Writer, path string) error {
	blob, err := dump.Read(path)
	if err != nil {
		return err
	}

	count := 0
	it := klv.NewIterator(blob)
	for it.Next() {
		count++
	}
	if err := it.Err(); err != nil {
		return fmt.Errorf("%w (after %d valid records)", err, count)
	}
	fmt.Fprintf(w, "%s: OK: %d records, %s\n", path, count, humanize.IBytes(uint64(len(blob))))
	return nil
}
