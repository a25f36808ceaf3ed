package reporter

import (
	"fmt"
	"strings"

	"github.com/philipp01105/nlogwire/core"
	"github.com/philipp01105/nlogwire/logger"
	"github.com/philipp01105/nlogwire/processor"
)

// Priorities understood by Adapter.Log.
const (
	Debug     = "debug"
	Info      = "info"
	Warning   = "warning"
	Error     = "error"
	Exception = "exception"
	Critical  = "critical"
	Access    = "access"
)

// Reporter is the error-reporting entry point of an application.
type Reporter interface {
	Log(value any, priority string)
}

// Adapter forwards reported values to a logger.
type Adapter struct {
	log         *logger.Logger
	accessLevel core.Level
}

var _ Reporter = (*Adapter)(nil)

// New returns an Adapter writing to log. accessLevel is the level of
// values reported with the Access priority.
func New(log *logger.Logger, accessLevel core.Level) *Adapter {
	return &Adapter{log: log, accessLevel: accessLevel}
}

// Level maps a reporter priority to a log level. Unknown priorities log at INFO.
func (a *Adapter) Level(priority string) core.Level {
	switch strings.ToLower(priority) {
	case Debug:
		return core.DebugLevel
	case Info:
		return core.InfoLevel
	case Warning:
		return core.WarnLevel
	case Error, Exception, Critical:
		return core.ErrorLevel
	case Access:
		return a.accessLevel
	default:
		return core.InfoLevel
	}
}

// Log writes value with a priority field. Errors are attached as the
// exception field so the exception processor writes a report for them.
func (a *Adapter) Log(value any, priority string) {
	fields := []core.Field{logger.String(processor.PriorityKey, strings.ToLower(priority))}

	var msg string
	switch v := value.(type) {
	case error:
		msg = v.Error()
		fields = append(fields, logger.Exception(v))
	case string:
		msg = v
	case fmt.Stringer:
		msg = v.String()
	default:
		msg = fmt.Sprintf("%v", v)
	}

	a.log.Log(a.Level(priority), msg, fields...)
}
