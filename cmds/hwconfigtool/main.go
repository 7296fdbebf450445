// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// hwconfigtool inspects GuC hardware configuration tables (HWConfig) and
// exercises their retrieval against a simulated firmware.
//
// Synopsis:
//
//	hwconfigtool show -f DUMP [--format=text|json]
//	hwconfigtool validate DUMP...
//	hwconfigtool get -f DUMP [--raw] ATTRIBUTE
//	hwconfigtool simulate -f DUMP [-p PLATFORM] [-r REVISION] [-c CAPABILITIES] [options]
//	hwconfigtool pack -i RECORDS.toml -o DUMP [--compression=none|xz|lz4|zstd]
//
// An example:
//
//	hwconfigtool pack -i records.toml -o adlp.bin.xz
//	hwconfigtool show -f adlp.bin.xz --format=json | jq '.[] | select(.attribute == "max-num-eu-per-dss") | .value[0]'
//	hwconfigtool get -f adlp.bin.xz max-dual-subslices-supported
//	hwconfigtool simulate -f adlp.bin.xz -p alderlake-p --log-level=debug
//	hwconfigtool simulate -f adlp.bin.xz --report-size=0
//
// Description:
//
//	show:     Print the records of a dump
//	validate: Check the structure of dumps
//	get:      Print the value of a single attribute
//	simulate: Retrieve the table through a simulated firmware
//	pack:     Build a dump from a TOML description
package main

import (
	"errors"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/linuxboot/hwconfig/cmds/hwconfigtool/cli"
	"github.com/linuxboot/hwconfig/pkg/log"
)

func main() {
	// parse arguments and execute the appropriate command
	if _, err := cli.NewParser(flags.Default).Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		log.Fatalf("%v", err)
	}
}
