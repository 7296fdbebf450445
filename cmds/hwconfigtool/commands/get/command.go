// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package get

import (
	"fmt"
	"io"

	"github.com/linuxboot/hwconfig/cmds/hwconfigtool/commands"
	"github.com/linuxboot/hwconfig/pkg/dump"
	"github.com/linuxboot/hwconfig/pkg/hwconfig"
	"github.com/linuxboot/hwconfig/pkg/klv"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	DumpPath string `short:"f" long:"dump" description:"path to a hardware configuration dump" required:"true"`
	Raw      bool   `long:"raw" description:"print value words only, one per line, in decimal"`

	out io.Writer
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "prints the value of an attribute"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return `The attribute may be given by name ("MaxSlicesSupported"), by slug
("max-slices-supported") or by numeric key ("1", "0x1").`
}

// Execute is the main function here. It is responsible to
// start the execution of the command.
//
// `args` are the arguments left unused by verb itself and options.
func (cmd *Command) Execute(args []string) error {
	if len(args) != 1 {
		return commands.ErrArgs{Err: fmt.Errorf("exactly one attribute is expected, got %d", len(args))}
	}
	attr, err := hwconfig.ParseAttribute(args[0])
	if err != nil {
		return commands.ErrArgs{Err: err}
	}

	blob, err := dump.Load(cmd.DumpPath)
	if err != nil {
		return fmt.Errorf("unable to load the dump: %w", err)
	}
	r, ok := klv.Find(blob, klv.Key(attr))
	if !ok {
		return &hwconfig.ErrNotFound{Key: klv.Key(attr)}
	}

	w := commands.Output(cmd.out)
	if cmd.Raw {
		for _, word := range r.Words() {
			fmt.Fprintf(w, "%d\n", word)
		}
		return nil
	}
	fmt.Fprintf(w, "%s: %s\n", attr.DisplayName(), commands.FormatValue(r.Words()))
	return nil
}
