package models

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// NewLogger writes logfmt diagnostics to c.Output. Debug lines need Verbose.
func (c *Config) NewLogger() log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(c.Output))
	if c.Verbose {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowInfo())
}
