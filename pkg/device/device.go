// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package device describes graphics devices and which of them expose a GuC
// hardware configuration table.
package device

import (
	"fmt"
	"strings"
)

// Platform is a graphics device family.
type Platform uint8

// Known platforms.
const (
	PlatformUnknown Platform = iota
	PlatformTigerLake
	PlatformRocketLake
	PlatformDG1
	PlatformAlderLakeS
	PlatformAlderLakeP
	PlatformDG2
	PlatformMeteorLake
)

var platformNames = map[Platform]string{
	PlatformTigerLake:  "tigerlake",
	PlatformRocketLake: "rocketlake",
	PlatformDG1:        "dg1",
	PlatformAlderLakeS: "alderlake-s",
	PlatformAlderLakeP: "alderlake-p",
	PlatformDG2:        "dg2",
	PlatformMeteorLake: "meteorlake",
}

func (p Platform) String() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Platform(%d)", uint8(p))
}

// ErrUnknownPlatform means a platform name is not recognized.
type ErrUnknownPlatform struct {
	Name string
}

func (err *ErrUnknownPlatform) Error() string {
	return fmt.Sprintf("unknown platform '%s'", err.Name)
}

// ParsePlatform returns the platform with the given name (case-insensitive).
func ParsePlatform(name string) (Platform, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for platform, platformName := range platformNames {
		if platformName == name {
			return platform, nil
		}
	}
	return PlatformUnknown, &ErrUnknownPlatform{Name: name}
}

// Descriptor identifies a device instance.
type Descriptor struct {
	Platform Platform
	// Variant is the sub-platform, e.g. "n" for Alder Lake-N. Empty for the
	// base platform.
	Variant string
	// Revision is the hardware stepping.
	Revision uint8
}

func (d Descriptor) String() string {
	var s strings.Builder
	s.WriteString(d.Platform.String())
	if d.Variant != "" {
		fmt.Fprintf(&s, "/%s", d.Variant)
	}
	fmt.Fprintf(&s, " rev 0x%02x", d.Revision)
	return s.String()
}
