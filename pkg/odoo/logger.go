package odoo

import (
	"fmt"

	"github.com/fivetwenty-io/odoo-client/pkg/xmlrpc"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// loggerAdapter exposes a Logger to the transport's key/value logging.
type loggerAdapter struct {
	logger Logger
}

var _ xmlrpc.Logger = (*loggerAdapter)(nil)

func (l *loggerAdapter) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, toFields(keysAndValues))
}

func (l *loggerAdapter) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, toFields(keysAndValues))
}

func (l *loggerAdapter) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, toFields(keysAndValues))
}

func (l *loggerAdapter) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, toFields(keysAndValues))
}

// extraValueKey holds a trailing value that has no key, as hclog does.
const extraValueKey = "EXTRA_VALUE_AT_END"

func toFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, (len(keysAndValues)+1)/2)

	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 == len(keysAndValues) {
			fields[extraValueKey] = keysAndValues[i]

			break
		}

		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return fields
}
