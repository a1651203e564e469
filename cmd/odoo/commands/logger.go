package commands

import (
	"io"
	"sort"
	"strings"

	"github.com/fivetwenty-io/odoo-client/internal/constants"
	"github.com/fivetwenty-io/odoo-client/pkg/odoo"
	"github.com/hashicorp/go-hclog"
)

// hclogAdapter implements odoo.Logger on top of hclog.
type hclogAdapter struct {
	logger hclog.Logger
}

var _ odoo.Logger = (*hclogAdapter)(nil)

func (a *hclogAdapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug(msg, flatten(fields)...)
}

func (a *hclogAdapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info(msg, flatten(fields)...)
}

func (a *hclogAdapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn(msg, flatten(fields)...)
}

func (a *hclogAdapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error(msg, flatten(fields)...)
}

// flatten turns fields into hclog key/value pairs ordered by key.
func flatten(fields map[string]interface{}) []interface{} {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	pairs := make([]interface{}, 0, len(keys)*2)
	for _, key := range keys {
		pairs = append(pairs, key, fields[key])
	}

	return pairs
}

// newLogger builds the CLI logger. Unknown levels fall back to ERROR; debug
// forces DEBUG.
func newLogger(w io.Writer, level string, debug bool) hclog.Logger {
	parsed := hclog.LevelFromString(strings.TrimSpace(level))
	if parsed == hclog.NoLevel {
		parsed = hclog.LevelFromString(constants.DefaultLogLevel)
	}

	if debug {
		parsed = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "odoo",
		Level:  parsed,
		Output: w,
	})
}
