// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pack

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-multierror"

	"github.com/linuxboot/hwconfig/cmds/hwconfigtool/commands"
	"github.com/linuxboot/hwconfig/pkg/compression"
	"github.com/linuxboot/hwconfig/pkg/dump"
	"github.com/linuxboot/hwconfig/pkg/hwconfig"
	"github.com/linuxboot/hwconfig/pkg/klv"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	InputPath   string `short:"i" long:"input" description:"TOML file describing the records" required:"true"`
	OutputPath  string `short:"o" long:"output" description:"path of the dump to write (.xz, .lz4 and .zst are compressed)" required:"true"`
	Compression string `long:"compression" description:"compression of the dump [none, xz, lz4, zstd] (default: by the output extension)"`

	out io.Writer
}

type packRecord struct {
	Attribute string   `toml:"attribute"`
	Key       *uint32  `toml:"key"`
	Value     []uint32 `toml:"value"`
}

type packFile struct {
	Record []packRecord `toml:"record"`
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "builds a dump from a TOML description"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return `The input lists the records in table order:

    [[record]]
    attribute = "max-slices-supported"
    value = [1]

    [[record]]
    key = 0x1000
    value = [0xdead, 0xbeef]

Each record is identified either by an attribute (name, slug or ID) or by a
raw key.`
}

// Execute is the main function here. It is responsible to
// start the execution of the command.
//
// `args` are the arguments left unused by verb itself and options.
func (cmd *Command) Execute(args []string) error {
	if len(args) != 0 {
		return commands.ErrArgs{Err: fmt.Errorf("there are extra arguments")}
	}

	c, err := cmd.compressor()
	if err != nil {
		return err
	}

	blob, count, err := Build(cmd.InputPath)
	if err != nil {
		return err
	}
	if err := dump.SaveWith(cmd.OutputPath, blob, c); err != nil {
		return fmt.Errorf("unable to save the dump: %w", err)
	}
	fmt.Fprintf(commands.Output(cmd.out), "wrote %d records (%s) to %s\n",
		count, humanize.IBytes(uint64(len(blob))), cmd.OutputPath)
	return nil
}

func (cmd *Command) compressor() (compression.Compressor, error) {
	switch cmd.Compression {
	case "":
		return compression.CompressorFromExtension(cmd.OutputPath), nil
	case "none":
		return nil, nil
	}
	c := compression.CompressorFromName(cmd.Compression)
	if c == nil {
		return nil, commands.ErrArgs{Err: fmt.Errorf("unknown compression '%s'", cmd.Compression)}
	}
	return c, nil
}

// Build encodes the records described by a TOML file. It returns the table
// and the amount of records in it.
func Build(path string) ([]byte, int, error) {
	var f packFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, 0, fmt.Errorf("unable to parse '%s': %w", path, err)
	}

	var result *multierror.Error
	for _, key := range md.Undecoded() {
		result = multierror.Append(result, fmt.Errorf("unknown key '%s'", key))
	}

	var blob []byte
	for idx, r := range f.Record {
		key, err := r.key()
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("record #%d: %w", idx, err))
			continue
		}
		blob = klv.AppendRecord(blob, key, r.Value...)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, 0, fmt.Errorf("invalid records file '%s': %w", path, err)
	}
	return blob, len(f.Record), nil
}

func (r packRecord) key() (klv.Key, error) {
	switch {
	case r.Attribute != "" && r.Key != nil:
		return 0, fmt.Errorf("both attribute '%s' and key 0x%x are set", r.Attribute, *r.Key)
	case r.Key != nil:
		return klv.Key(*r.Key), nil
	case r.Attribute != "":
		attr, err := hwconfig.ParseAttribute(r.Attribute)
		if err != nil {
			return 0, err
		}
		return klv.Key(attr), nil
	}
	return 0, fmt.Errorf("neither attribute nor key is set")
}
