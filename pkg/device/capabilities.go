// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package device

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
)

// Capability describes a class of devices whose GuC firmware exposes the
// hardware configuration table.
type Capability struct {
	Platform Platform
	// Variant restricts the match to one sub-platform; empty matches any.
	Variant string
	// MinRevision and MaxRevision bound the stepping, both inclusive.
	// MaxRevision of zero means there is no upper bound.
	MinRevision uint8
	MaxRevision uint8
}

// Matches returns true if the device belongs to the class.
func (c Capability) Matches(d Descriptor) bool {
	if c.Platform != d.Platform {
		return false
	}
	if c.Variant != "" && !strings.EqualFold(c.Variant, d.Variant) {
		return false
	}
	if d.Revision < c.MinRevision {
		return false
	}
	if c.MaxRevision != 0 && d.Revision > c.MaxRevision {
		return false
	}
	return true
}

// Capabilities is the list of device classes known to have a table.
type Capabilities []Capability

// DefaultCapabilities enables the table on Alder Lake-P and its
// sub-platforms, any stepping.
var DefaultCapabilities = Capabilities{
	{Platform: PlatformAlderLakeP},
}

// HasTable returns true if the device is expected to expose the table.
// It does not talk to the device.
func (caps Capabilities) HasTable(d Descriptor) bool {
	for _, c := range caps {
		if c.Matches(d) {
			return true
		}
	}
	return false
}

// Validate reports every inconsistent entry at once.
func (caps Capabilities) Validate() error {
	var result *multierror.Error
	for idx, c := range caps {
		if _, ok := platformNames[c.Platform]; !ok {
			result = multierror.Append(result, fmt.Errorf("entry #%d: unknown platform %s", idx, c.Platform))
		}
		if c.MaxRevision != 0 && c.MaxRevision < c.MinRevision {
			result = multierror.Append(result, fmt.Errorf("entry #%d: max revision 0x%02x is less than min revision 0x%02x",
				idx, c.MaxRevision, c.MinRevision))
		}
	}
	return result.ErrorOrNil()
}

type capabilitiesFile struct {
	Capability []struct {
		Platform    string `toml:"platform"`
		Variant     string `toml:"variant"`
		MinRevision uint8  `toml:"min_revision"`
		MaxRevision uint8  `toml:"max_revision"`
	} `toml:"capability"`
}

// LoadCapabilities reads a capability table from a TOML file:
//
//	[[capability]]
//	platform = "alderlake-p"
//	variant = "n"
//	min_revision = 0
//	max_revision = 4
func LoadCapabilities(path string) (Capabilities, error) {
	var f capabilitiesFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("unable to parse capabilities file '%s': %w", path, err)
	}

	var result *multierror.Error
	for _, key := range md.Undecoded() {
		result = multierror.Append(result, fmt.Errorf("unknown key '%s'", key))
	}

	caps := make(Capabilities, 0, len(f.Capability))
	for idx, entry := range f.Capability {
		platform, err := ParsePlatform(entry.Platform)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("entry #%d: %w", idx, err))
			continue
		}
		caps = append(caps, Capability{
			Platform:    platform,
			Variant:     entry.Variant,
			MinRevision: entry.MinRevision,
			MaxRevision: entry.MaxRevision,
		})
	}
	if err := caps.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("invalid capabilities file '%s': %w", path, err)
	}
	return caps, nil
}
