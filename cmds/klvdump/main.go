// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// klvdump prints the raw records of a KLV table, one per line, stopping at
// the first malformed record.
//
// Synopsis:
//
//	klvdump [--names] [--hex] <table-file>
//
// Compressed files (.xz, .lz4, .zst) are decompressed first. The exit code
// is non-zero if the table is malformed.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/linuxboot/hwconfig/pkg/dump"
	"github.com/linuxboot/hwconfig/pkg/hwconfig"
	"github.com/linuxboot/hwconfig/pkg/klv"
	"github.com/linuxboot/hwconfig/pkg/log"
)

var (
	names  = flag.BoolP("names", "n", false, "print attribute names next to keys")
	hexOut = flag.BoolP("hex", "x", false, "print a hex dump of every value")
)

func printRecords(w io.Writer, blob []byte, withNames, withHex bool) error {
	it := klv.NewIterator(blob)
	for it.Next() {
		r := it.Record()
		line := r.String()
		if withNames {
			line += " " + hwconfig.Attribute(r.Key).String()
		}
		fmt.Fprintln(w, line)
		if withHex && len(r.Value()) > 0 {
			fmt.Fprint(w, hex.Dump(r.Value()))
		}
	}
	return it.Err()
}

func main() {
	flag.Parse()

	a := flag.Args()
	if len(a) != 1 {
		log.Fatalf("Usage: klvdump [--names] [--hex] <table-file>")
	}

	blob, err := dump.Read(a[0])
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := printRecords(os.Stdout, blob, *names, *hexOut); err != nil {
		log.Fatalf("%v", err)
	}
}
