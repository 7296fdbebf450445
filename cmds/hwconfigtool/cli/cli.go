// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli wires the hwconfigtool verbs into a command line parser.
package cli

import (
	"github.com/jessevdk/go-flags"

	"github.com/linuxboot/hwconfig/cmds/hwconfigtool/commands"
	"github.com/linuxboot/hwconfig/cmds/hwconfigtool/commands/get"
	"github.com/linuxboot/hwconfig/cmds/hwconfigtool/commands/pack"
	"github.com/linuxboot/hwconfig/cmds/hwconfigtool/commands/show"
	"github.com/linuxboot/hwconfig/cmds/hwconfigtool/commands/simulate"
	"github.com/linuxboot/hwconfig/cmds/hwconfigtool/commands/validate"
)

func knownCommands() map[string]commands.Command {
	return map[string]commands.Command{
		"show":     &show.Command{},
		"validate": &validate.Command{},
		"get":      &get.Command{},
		"simulate": &simulate.Command{},
		"pack":     &pack.Command{},
	}
}

// NewParser returns a parser knowing every verb. Each call gets fresh
// command structs, so a parser can be used for a single invocation only.
func NewParser(options flags.Options) *flags.Parser {
	flagsParser := flags.NewParser(nil, options)
	for commandName, command := range knownCommands() {
		_, err := flagsParser.AddCommand(commandName, command.ShortDescription(), command.LongDescription(), command)
		if err != nil {
			panic(err)
		}
	}
	return flagsParser
}

// Run parses args (without the program name) and executes the verb.
func Run(args ...string) error {
	_, err := NewParser(flags.HelpFlag | flags.PassDoubleDash).ParseArgs(args)
	return err
}
