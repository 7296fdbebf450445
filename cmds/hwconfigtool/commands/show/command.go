// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package show

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/linuxboot/hwconfig/cmds/hwconfigtool/commands"
	"github.com/linuxboot/hwconfig/pkg/dump"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	commands.FormatFlag
	DumpPath string `short:"f" long:"dump" description:"path to a hardware configuration dump (.xz, .lz4 and .zst are decompressed)" required:"true"`

	out io.Writer
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "prints the records of a dump"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return "Validates the dump and prints every record with its offset, key, attribute name and value."
}

// Execute is the main function here. It is responsible to
// start the execution of the command.
//
// `args` are the arguments left unused by verb itself and options.
func (cmd *Command) Execute(args []string) error {
	if len(args) != 0 {
		return commands.ErrArgs{Err: fmt.Errorf("there are extra arguments")}
	}
	format, err := cmd.FormatFlag.Get()
	if err != nil {
		return err
	}

	blob, err := dump.Load(cmd.DumpPath)
	if err != nil {
		return fmt.Errorf("unable to load the dump: %w", err)
	}
	return commands.PrintRecords(commands.Output(cmd.out), filepath.Base(cmd.DumpPath), blob, format)
}
