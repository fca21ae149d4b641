package log

var root Logger = &logger{}

// Root returns the root logger.
func Root() Logger {
	return root
}

// New returns a new logger with the given context, rooted at the package
// root logger.
func New(ctx ...interface{}) Logger {
	return root.New(ctx...)
}

func Trace(msg string, ctx ...interface{}) { root.Trace(msg, ctx...) }
func Debug(msg string, ctx ...interface{}) { root.Debug(msg, ctx...) }
func Info(msg string, ctx ...interface{})  { root.Info(msg, ctx...) }
func Warn(msg string, ctx ...interface{})  { root.Warn(msg, ctx...) }
func Error(msg string, ctx ...interface{}) { root.Error(msg, ctx...) }
func Crit(msg string, ctx ...interface{})  { root.Crit(msg, ctx...) }
