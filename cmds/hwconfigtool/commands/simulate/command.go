// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simulate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/linuxboot/hwconfig/cmds/hwconfigtool/commands"
	"github.com/linuxboot/hwconfig/pkg/device"
	"github.com/linuxboot/hwconfig/pkg/dump"
	"github.com/linuxboot/hwconfig/pkg/firmware/sim"
	"github.com/linuxboot/hwconfig/pkg/hwconfig"
	"github.com/linuxboot/hwconfig/pkg/log"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	commands.FormatFlag
	DumpPath         string  `short:"f" long:"dump" description:"path to the table the simulated firmware serves; it is not validated" required:"true"`
	Platform         string  `short:"p" long:"platform" description:"platform of the simulated device" default:"alderlake-p"`
	Variant          string  `long:"variant" description:"platform variant of the simulated device"`
	Revision         uint8   `short:"r" long:"revision" description:"revision of the simulated device"`
	CapabilitiesPath string  `short:"c" long:"capabilities" description:"TOML file listing the devices which have a table"`
	MaxSize          uint32  `long:"max-size" description:"largest table to accept, in bytes (default 1 MiB)"`
	NotPresent       bool    `long:"not-present" description:"simulate a firmware without GET_HWCONFIG"`
	ReportSize       *uint32 `long:"report-size" description:"size the firmware reports on the probe instead of the real one"`
	ProbeStatus      int32   `long:"probe-status" description:"failure status the firmware answers the probe with"`
	FetchStatus      int32   `long:"fetch-status" description:"failure status the firmware answers the fetch with"`
	LogLevel         string  `long:"log-level" description:"log level [debug, info, warn, error]" default:"info"`

	out    io.Writer
	logOut io.Writer
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "retrieves a table from a simulated firmware"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return `Runs the whole retrieval (capability check, size probe, fetch through a
scratch region, validation) against a simulated firmware serving the given
dump, then prints the retrieved records. Firmware faults can be injected
with the options below.`
}

func (cmd *Command) descriptor() (device.Descriptor, error) {
	platform, err := device.ParsePlatform(cmd.Platform)
	if err != nil {
		return device.Descriptor{}, commands.ErrArgs{Err: err}
	}
	return device.Descriptor{Platform: platform, Variant: cmd.Variant, Revision: cmd.Revision}, nil
}

func (cmd *Command) logger() (log.Logger, error) {
	level, err := log.ParseLevel(cmd.LogLevel)
	if err != nil {
		return nil, commands.ErrArgs{Err: err}
	}
	logOut := cmd.logOut
	if logOut == nil {
		logOut = os.Stderr
	}
	return log.NewLogger(logOut, level), nil
}

func (cmd *Command) options(logger log.Logger) ([]hwconfig.Option, error) {
	opts := []hwconfig.Option{hwconfig.WithLogger(logger)}
	if cmd.MaxSize != 0 {
		opts = append(opts, hwconfig.WithMaxSize(cmd.MaxSize))
	}
	if cmd.CapabilitiesPath != "" {
		caps, err := device.LoadCapabilities(cmd.CapabilitiesPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, hwconfig.WithCapabilities(caps))
	}
	return opts, nil
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
	desc, err := cmd.descriptor()
	if err != nil {
		return err
	}
	logger, err := cmd.logger()
	if err != nil {
		return err
	}
	opts, err := cmd.options(logger)
	if err != nil {
		return err
	}

	table, err := dump.Read(cmd.DumpPath)
	if err != nil {
		return fmt.Errorf("unable to read the dump: %w", err)
	}
	fw := &sim.Firmware{
		Table:       table,
		NotPresent:  cmd.NotPresent,
		ProbeStatus: cmd.ProbeStatus,
		FetchStatus: cmd.FetchStatus,
		Logger:      logger,
	}
	if cmd.ReportSize != nil {
		fw.OverrideSize = true
		fw.ReportSize = *cmd.ReportSize
	}

	h := hwconfig.New(fw, fw, opts...)
	defer h.Fini()
	if err := h.Init(context.Background(), desc); err != nil {
		return fmt.Errorf("unable to retrieve the table of %s: %w", desc, err)
	}
	if outstanding := fw.Outstanding(); outstanding != 0 {
		return fmt.Errorf("%d scratch regions were not released", outstanding)
	}

	w := commands.Output(cmd.out)
	if h.State() != hwconfig.StateReady {
		fmt.Fprintf(w, "%s: no hardware configuration table\n", desc)
		return nil
	}
	title := fmt.Sprintf("%s from %s", desc, filepath.Base(cmd.DumpPath))
	return commands.PrintRecords(w, title, h.Bytes(), format)
}
