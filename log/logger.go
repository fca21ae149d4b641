package log

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/go-stack/stack"
	"github.com/golang/glog"
)

const errorKey = "LOG_ERROR"
const skipLevel = 2

// location alignment state shared across all loggers, mirrors the teacher's
// fancy-aligned console formatter without the handler machinery it built on.
var locationEnabled uint32
var locationLength uint32

type Lvl int

const (
	LvlCrit Lvl = iota
	LvlError
	LvlWarn
	LvlInfo
	LvlDebug
	LvlTrace
)

// AlignedString returns a 5-character string containing the name of a Lvl.
func (l Lvl) AlignedString() string {
	switch l {
	case LvlTrace:
		return "TRACE"
	case LvlDebug:
		return "DEBUG"
	case LvlInfo:
		return "INFO "
	case LvlWarn:
		return "WARN "
	case LvlError:
		return "ERROR"
	case LvlCrit:
		return "CRIT "
	default:
		panic("bad level")
	}
}

// String returns the name of a Lvl.
func (l Lvl) String() string {
	switch l {
	case LvlTrace:
		return "trce"
	case LvlDebug:
		return "dbug"
	case LvlInfo:
		return "info"
	case LvlWarn:
		return "warn"
	case LvlError:
		return "eror"
	case LvlCrit:
		return "crit"
	default:
		panic("bad level")
	}
}

// LvlFromString returns the appropriate Lvl from a string name.
// Useful for parsing command line args and configuration files.
func LvlFromString(lvlString string) (Lvl, error) {
	switch lvlString {
	case "trace", "trce":
		return LvlTrace, nil
	case "debug", "dbug":
		return LvlDebug, nil
	case "info":
		return LvlInfo, nil
	case "warn":
		return LvlWarn, nil
	case "error", "eror":
		return LvlError, nil
	case "crit":
		return LvlCrit, nil
	default:
		return LvlDebug, fmt.Errorf("unknown level: %v", lvlString)
	}
}

// A Logger writes leveled messages with structured key/value context,
// dispatched through glog.
type Logger interface {
	// New returns a new Logger that has this logger's context plus the given context
	New(ctx ...interface{}) Logger

	Trace(msg string, ctx ...interface{})
	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	Crit(msg string, ctx ...interface{})
}

type logger struct {
	ctx []interface{}
}

func (l *logger) write(msg string, lvl Lvl, ctx []interface{}, skip int) {
	line := getLogMsg(msg, newContext(l.ctx, ctx), skip)
	switch lvl {
	case LvlTrace:
		glog.V(3).Info(line)
	case LvlDebug:
		glog.V(2).Info(line)
	case LvlInfo:
		glog.Info(line)
	case LvlWarn:
		glog.Warning(line)
	case LvlError:
		glog.Error(line)
	case LvlCrit:
		glog.Fatal(line)
	default:
		glog.Info(line)
	}
}

func (l *logger) New(ctx ...interface{}) Logger {
	return &logger{ctx: newContext(l.ctx, ctx)}
}

func newContext(prefix []interface{}, suffix []interface{}) []interface{} {
	normalizedSuffix := normalize(suffix)
	newCtx := make([]interface{}, len(prefix)+len(normalizedSuffix))
	n := copy(newCtx, prefix)
	copy(newCtx[n:], normalizedSuffix)
	return newCtx
}

func (l *logger) Trace(msg string, ctx ...interface{}) {
	l.write(msg, LvlTrace, ctx, skipLevel)
}

func (l *logger) Debug(msg string, ctx ...interface{}) {
	l.write(msg, LvlDebug, ctx, skipLevel)
}

func (l *logger) Info(msg string, ctx ...interface{}) {
	l.write(msg, LvlInfo, ctx, skipLevel)
}

func (l *logger) Warn(msg string, ctx ...interface{}) {
	l.write(msg, LvlWarn, ctx, skipLevel)
}

func (l *logger) Error(msg string, ctx ...interface{}) {
	l.write(msg, LvlError, ctx, skipLevel)
}

func (l *logger) Crit(msg string, ctx ...interface{}) {
	l.write(msg, LvlCrit, ctx, skipLevel)
	os.Exit(1)
}

// getLogMsg returns the log message in the following format:
// <Full path of origin> <padding> <Log message> <padding> <Context key & value>
func getLogMsg(msg string, ctx []interface{}, skip int) string {
	location := fmt.Sprintf("%+v", stack.Caller(skip))
	align := int(atomic.LoadUint32(&locationLength))
	if align < len(location) {
		align = len(location)
		atomic.StoreUint32(&locationLength, uint32(align))
	}
	padding := strings.Repeat(" ", align-len(location))
	buf := &bytes.Buffer{}
	buf.WriteString(location)
	buf.WriteString(padding)
	buf.WriteString(msg)
	if align < len(msg) {
		align = len(msg)
		atomic.StoreUint32(&locationLength, uint32(align))
	}
	padding = strings.Repeat(" ", align-len(msg))
	buf.WriteString(padding)
	writeCtx(buf, ctx)
	return buf.String()
}

// writeCtx renders context key/value pairs as space-separated k=v tokens,
// quoting values that contain whitespace.
func writeCtx(buf *bytes.Buffer, ctx []interface{}) {
	for i := 0; i < len(ctx); i += 2 {
		k, ok := ctx[i].(string)
		if !ok {
			k = fmt.Sprintf("%+v", ctx[i])
		}
		v := ctx[i+1]
		buf.WriteByte(' ')
		buf.WriteString(k)
		buf.WriteByte('=')
		s := fmt.Sprintf("%+v", v)
		if strings.ContainsAny(s, " \t\"") {
			buf.WriteString(fmt.Sprintf("%q", s))
		} else {
			buf.WriteString(s)
		}
	}
}

func normalize(ctx []interface{}) []interface{} {
	// ctx needs to be even because it's a series of key/value pairs.
	// No one wants to check for errors on logging functions, so instead of
	// erroring on bad input, pad it and let users fix it once they see the
	// malformed output.
	if len(ctx)%2 != 0 {
		ctx = append(ctx, nil, errorKey, "normalized odd number of arguments by adding nil")
	}
	return ctx
}

// Lazy holds a function producing a logged value. writeCtx does not call Fn:
// a Lazy in the context is printed with %+v like any other value.
type Lazy struct {
	Fn interface{}
}
