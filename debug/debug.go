// Package debug gates trace logging on environment variables, so that
// a misbehaving document can be chased without a debugger:
//
//	TOML_DEBUG_PARSE=1 toml check doc.toml
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Keys  bool
	Query bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("TOML_DEBUG_PARSE")
	d.Keys = boolEnv("TOML_DEBUG_KEYS")
	d.Query = boolEnv("TOML_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Keys() bool {
	return d.Keys
}
func Query() bool {
	return d.Query
}
