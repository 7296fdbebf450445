// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hwconfig

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Attribute is the key of a HWConfig record. The IDs are defined by the
// hardware specification and shared by every firmware version.
type Attribute uint32

// Known attributes.
const (
	AttributeMaxSlicesSupported Attribute = iota + 1
	AttributeMaxDualSubslicesSupported
	AttributeMaxNumEUPerDSS
	AttributeNumPixelPipes
	AttributeDeprecatedMaxNumGeometryPipes
	AttributeDeprecatedL3CacheSizeInKB
	AttributeDeprecatedL3BankCount
	AttributeL3CacheWaysSizeInBytes
	AttributeL3CacheWaysPerSector
	AttributeMaxMemoryChannels
	AttributeMemoryType
	AttributeCacheTypes
	AttributeLocalMemoryPageSizesSupported
	AttributeDeprecatedSLMSizeInKB
	AttributeNumThreadsPerEU
	AttributeTotalVSThreads
	AttributeTotalGSThreads
	AttributeTotalHSThreads
	AttributeTotalDSThreads
	AttributeTotalVSThreadsPOCS
	AttributeTotalPSThreads
	AttributeDeprecatedMaxFillRate
	AttributeMaxRCS
	AttributeMaxCCS
	AttributeMaxVCS
	AttributeMaxVECS
	AttributeMaxCopyCS
	AttributeDeprecatedURBSizeInKB
	AttributeMinVSURBEntries
	AttributeMaxVSURBEntries
	AttributeMinPCSURBEntries
	AttributeMaxPCSURBEntries
	AttributeMinHSURBEntries
	AttributeMaxHSURBEntries
	AttributeMinGSURBEntries
	AttributeMaxGSURBEntries
	AttributeMinDSURBEntries
	AttributeMaxDSURBEntries
	AttributePushConstantURBReservedSize
	AttributePOCSPushConstantURBReservedSize
	AttributeURBRegionAlignmentSizeInBytes
	AttributeURBAllocationSizeUnitsInBytes
	AttributeMaxURBSizeCCSInBytes
	AttributeVSMinDerefBlockSizeHandleCount
	AttributeDSMinDerefBlockSizeHandleCount
	AttributeNumRTStacksPerDSS
	AttributeMaxURBStartingAddress
	AttributeMinCSURBEntries
	AttributeMaxCSURBEntries
	AttributeL3AllocPerBankURB
	AttributeL3AllocPerBankRest
	AttributeL3AllocPerBankDC
	AttributeL3AllocPerBankRO
	AttributeL3AllocPerBankZ
	AttributeL3AllocPerBankColor
	AttributeL3AllocPerBankUnifiedTileCache
	AttributeL3AllocPerBankCommandBuffer
	AttributeL3AllocPerBankRW
	AttributeMaxNumL3Configs
	AttributeBindlessSurfaceOffsetBitCount
	AttributeReservedCCSWays
	AttributeCSRSizeInMB
	AttributeGeometryPipesPerSlice
	AttributeL3BankSizeInKB
	AttributeSLMSizePerDSS
	AttributeMaxPixelFillRatePerSlice
	AttributeMaxPixelFillRatePerDSS
	AttributeURBSizePerSliceInKB
	AttributeURBSizePerL3BankCountInKB
	AttributeMaxSubslice
	AttributeMaxEUPerSubslice
	AttributeRamboL3BankSizeInKB
	AttributeSLMSizePerSSInKB
)

var attributeNames = map[Attribute]string{
	AttributeMaxSlicesSupported:              "MaxSlicesSupported",
	AttributeMaxDualSubslicesSupported:       "MaxDualSubslicesSupported",
	AttributeMaxNumEUPerDSS:                  "MaxNumEUPerDSS",
	AttributeNumPixelPipes:                   "NumPixelPipes",
	AttributeDeprecatedMaxNumGeometryPipes:   "DeprecatedMaxNumGeometryPipes",
	AttributeDeprecatedL3CacheSizeInKB:       "DeprecatedL3CacheSizeInKB",
	AttributeDeprecatedL3BankCount:           "DeprecatedL3BankCount",
	AttributeL3CacheWaysSizeInBytes:          "L3CacheWaysSizeInBytes",
	AttributeL3CacheWaysPerSector:            "L3CacheWaysPerSector",
	AttributeMaxMemoryChannels:               "MaxMemoryChannels",
	AttributeMemoryType:                      "MemoryType",
	AttributeCacheTypes:                      "CacheTypes",
	AttributeLocalMemoryPageSizesSupported:   "LocalMemoryPageSizesSupported",
	AttributeDeprecatedSLMSizeInKB:           "DeprecatedSLMSizeInKB",
	AttributeNumThreadsPerEU:                 "NumThreadsPerEU",
	AttributeTotalVSThreads:                  "TotalVSThreads",
	AttributeTotalGSThreads:                  "TotalGSThreads",
	AttributeTotalHSThreads:                  "TotalHSThreads",
	AttributeTotalDSThreads:                  "TotalDSThreads",
	AttributeTotalVSThreadsPOCS:              "TotalVSThreadsPOCS",
	AttributeTotalPSThreads:                  "TotalPSThreads",
	AttributeDeprecatedMaxFillRate:           "DeprecatedMaxFillRate",
	AttributeMaxRCS:                          "MaxRCS",
	AttributeMaxCCS:                          "MaxCCS",
	AttributeMaxVCS:                          "MaxVCS",
	AttributeMaxVECS:                         "MaxVECS",
	AttributeMaxCopyCS:                       "MaxCopyCS",
	AttributeDeprecatedURBSizeInKB:           "DeprecatedURBSizeInKB",
	AttributeMinVSURBEntries:                 "MinVSURBEntries",
	AttributeMaxVSURBEntries:                 "MaxVSURBEntries",
	AttributeMinPCSURBEntries:                "MinPCSURBEntries",
	AttributeMaxPCSURBEntries:                "MaxPCSURBEntries",
	AttributeMinHSURBEntries:                 "MinHSURBEntries",
	AttributeMaxHSURBEntries:                 "MaxHSURBEntries",
	AttributeMinGSURBEntries:                 "MinGSURBEntries",
	AttributeMaxGSURBEntries:                 "MaxGSURBEntries",
	AttributeMinDSURBEntries:                 "MinDSURBEntries",
	AttributeMaxDSURBEntries:                 "MaxDSURBEntries",
	AttributePushConstantURBReservedSize:     "PushConstantURBReservedSize",
	AttributePOCSPushConstantURBReservedSize: "POCSPushConstantURBReservedSize",
	AttributeURBRegionAlignmentSizeInBytes:   "URBRegionAlignmentSizeInBytes",
	AttributeURBAllocationSizeUnitsInBytes:   "URBAllocationSizeUnitsInBytes",
	AttributeMaxURBSizeCCSInBytes:            "MaxURBSizeCCSInBytes",
	AttributeVSMinDerefBlockSizeHandleCount:  "VSMinDerefBlockSizeHandleCount",
	AttributeDSMinDerefBlockSizeHandleCount:  "DSMinDerefBlockSizeHandleCount",
	AttributeNumRTStacksPerDSS:               "NumRTStacksPerDSS",
	AttributeMaxURBStartingAddress:           "MaxURBStartingAddress",
	AttributeMinCSURBEntries:                 "MinCSURBEntries",
	AttributeMaxCSURBEntries:                 "MaxCSURBEntries",
	AttributeL3AllocPerBankURB:               "L3AllocPerBankURB",
	AttributeL3AllocPerBankRest:              "L3AllocPerBankRest",
	AttributeL3AllocPerBankDC:                "L3AllocPerBankDC",
	AttributeL3AllocPerBankRO:                "L3AllocPerBankRO",
	AttributeL3AllocPerBankZ:                 "L3AllocPerBankZ",
	AttributeL3AllocPerBankColor:             "L3AllocPerBankColor",
	AttributeL3AllocPerBankUnifiedTileCache:  "L3AllocPerBankUnifiedTileCache",
	AttributeL3AllocPerBankCommandBuffer:     "L3AllocPerBankCommandBuffer",
	AttributeL3AllocPerBankRW:                "L3AllocPerBankRW",
	AttributeMaxNumL3Configs:                 "MaxNumL3Configs",
	AttributeBindlessSurfaceOffsetBitCount:   "BindlessSurfaceOffsetBitCount",
	AttributeReservedCCSWays:                 "ReservedCCSWays",
	AttributeCSRSizeInMB:                     "CSRSizeInMB",
	AttributeGeometryPipesPerSlice:           "GeometryPipesPerSlice",
	AttributeL3BankSizeInKB:                  "L3BankSizeInKB",
	AttributeSLMSizePerDSS:                   "SLMSizePerDSS",
	AttributeMaxPixelFillRatePerSlice:        "MaxPixelFillRatePerSlice",
	AttributeMaxPixelFillRatePerDSS:          "MaxPixelFillRatePerDSS",
	AttributeURBSizePerSliceInKB:             "URBSizePerSliceInKB",
	AttributeURBSizePerL3BankCountInKB:       "URBSizePerL3BankCountInKB",
	AttributeMaxSubslice:                     "MaxSubslice",
	AttributeMaxEUPerSubslice:                "MaxEUPerSubslice",
	AttributeRamboL3BankSizeInKB:             "RamboL3BankSizeInKB",
	AttributeSLMSizePerSSInKB:                "SLMSizePerSSInKB",
}

// String returns the attribute name, e.g. "MaxSlicesSupported".
func (a Attribute) String() string {
	if name, ok := attributeNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Attribute(0x%X)", uint32(a))
}

// IsKnown returns true if the attribute is in the catalogue.
func (a Attribute) IsKnown() bool {
	_, ok := attributeNames[a]
	return ok
}

// words splits the name into words, keeping digits attached to the
// preceding word ("L3", not "L 3").
func (a Attribute) words() []string {
	name, ok := attributeNames[a]
	if !ok {
		return nil
	}
	var result []string
	for _, word := range camelcase.Split(name) {
		if len(result) > 0 && isDigits(word) {
			result[len(result)-1] += word
			continue
		}
		result = append(result, word)
	}
	return result
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

// DisplayName returns a human readable name, e.g. "Max Num EU Per DSS".
func (a Attribute) DisplayName() string {
	words := a.words()
	if words == nil {
		return a.String()
	}
	return cases.Title(language.English, cases.NoLower).String(strings.Join(words, " "))
}

// Slug returns the command line friendly name, e.g. "max-num-eu-per-dss".
func (a Attribute) Slug() string {
	words := a.words()
	if words == nil {
		return fmt.Sprintf("0x%x", uint32(a))
	}
	return cases.Lower(language.Und).String(strings.Join(words, "-"))
}

// ParseAttribute accepts an attribute name, its slug or its numeric ID.
// Names are compared case-insensitively.
func ParseAttribute(s string) (Attribute, error) {
	s = strings.TrimSpace(s)
	if id, err := strconv.ParseUint(s, 0, 32); err == nil {
		return Attribute(id), nil
	}

	fold := cases.Fold()
	want := fold.String(strings.TrimPrefix(s, "Attribute"))
	for attr, name := range attributeNames {
		if fold.String(name) == want || fold.String(attr.Slug()) == want {
			return attr, nil
		}
	}
	return 0, fmt.Errorf("unknown attribute '%s'", s)
}

// Attributes returns the known attributes in ID order.
func Attributes() []Attribute {
	result := make([]Attribute, 0, len(attributeNames))
	for attr := AttributeMaxSlicesSupported; attr <= AttributeSLMSizePerSSInKB; attr++ {
		result = append(result, attr)
	}
	return result
}
