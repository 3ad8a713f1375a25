// Package debug provides env-gated tracing for treex algorithms.
//
// Flags are read once at init from TREEX_DEBUG_MAP, TREEX_DEBUG_SECTIONS,
// and TREEX_DEBUG_PATCH.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Map      bool
	Sections bool
	Patch    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Map = boolEnv("TREEX_DEBUG_MAP")
	d.Sections = boolEnv("TREEX_DEBUG_SECTIONS")
	d.Patch = boolEnv("TREEX_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Map() bool {
	return d.Map
}
func Sections() bool {
	return d.Sections
}
func Patch() bool {
	return d.Patch
}
