// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/linuxboot/hwconfig/pkg/hwconfig"
	"github.com/linuxboot/hwconfig/pkg/klv"
)

// Record is the JSON representation of a table record.
type Record struct {
	Offset    int      `json:"offset"`
	Key       uint32   `json:"key"`
	Attribute string   `json:"attribute,omitempty"`
	Value     []uint32 `json:"value"`
}

// NewRecord converts a parsed record.
func NewRecord(r klv.Record) Record {
	result := Record{
		Offset: r.Offset,
		Key:    uint32(r.Key),
		Value:  r.Words(),
	}
	if attr := hwconfig.Attribute(r.Key); attr.IsKnown() {
		result.Attribute = attr.Slug()
	}
	return result
}

// FormatValue prints a value: a single word in hex and decimal, several
// words as a hex list.
func FormatValue(words []uint32) string {
	switch len(words) {
	case 0:
		return "-"
	case 1:
		return fmt.Sprintf("0x%08x (%d)", words[0], words[0])
	}
	parts := make([]string, 0, len(words))
	for _, word := range words {
		parts = append(parts, fmt.Sprintf("0x%08x", word))
	}
	return strings.Join(parts, " ")
}

// PrintRecords prints the records of a valid table in the given format.
func PrintRecords(w io.Writer, title string, blob []byte, format Format) error {
	records, err := klv.Parse(blob)
	if err != nil {
		return err
	}

	if format == FormatJSON {
		list := make([]Record, 0, len(records))
		for _, r := range records {
			list = append(list, NewRecord(r))
		}
		b, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return fmt.Errorf("unable to serialize the records: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("%s (%s, %d records)", title, humanize.IBytes(uint64(len(blob))), len(records))
	t.AppendHeader(table.Row{"Offset", "Key", "Attribute", "Words", "Value"})
	for _, r := range records {
		t.AppendRow(table.Row{
			fmt.Sprintf("0x%04x", r.Offset),
			r.Key.String(),
			hwconfig.Attribute(r.Key).DisplayName(),
			r.Length,
			FormatValue(r.Words()),
		})
	}
	t.Render()
	return nil
}
