// Package debug holds the process-wide debug toggles, read once from
// GRAM_DEBUG_* environment variables at startup.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Resolve  bool
	Fold     bool
	Sweep    bool
	Pipeline bool
	Query    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Resolve = boolEnv("GRAM_DEBUG_RESOLVE")
	d.Fold = boolEnv("GRAM_DEBUG_FOLD")
	d.Sweep = boolEnv("GRAM_DEBUG_SWEEP")
	d.Pipeline = boolEnv("GRAM_DEBUG_PIPELINE")
	d.Query = boolEnv("GRAM_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Resolve() bool {
	return d.Resolve
}
func Fold() bool {
	return d.Fold
}
func Sweep() bool {
	return d.Sweep
}
func Pipeline() bool {
	return d.Pipeline
}
func Query() bool {
	return d.Query
}
