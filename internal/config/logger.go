package config

import (
	"io"
	"log"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// Logger returns a logger writing to w at the configured verbosity.
func (c Config) Logger(w io.Writer) logr.Logger {
	stdr.SetVerbosity(c.LogVerbosity)
	return stdr.New(log.New(w, "", log.LstdFlags))
}
