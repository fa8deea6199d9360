/*
Package dscgfx is a library for building graphics assets for the DSC
platform.

It converts source images into packed indexed or 15-bit direct color
graphics, optionally caching the results in a SQLite database so that
unchanged images are not converted again on the next build.
*/
package dscgfx

import (
	"io/ioutil"
	"log"
)

// Builder converts image files into graphics containers.
type Builder struct {
	cache  *Cache
	logger *log.Logger
}

// New returns a Builder. cache may be nil to disable caching and logger may
// be nil to discard diagnostics.
func New(cache *Cache, logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &Builder{
		cache:  cache,
		logger: logger,
	}
}
