package logger

type Full interface {
	Lite

	Debug(args ...interface{})
	Debugf(tmpl string, args ...interface{})

	Info(args ...interface{})
	Infof(tmpl string, args ...interface{})

	Warn(args ...interface{})
	Warnf(tmpl string, args ...interface{})

	Error(args ...interface{})
	Errorf(tmpl string, args ...interface{})

	Fatal(args ...interface{})
	Fatalf(tmpl string, args ...interface{})
	Fatalw(msg string, err interface{}, args ...interface{})
}

// Lite is what request models and adapters log through.
type Lite interface {
	Debugw(msg string, args ...interface{})
	Infow(msg string, args ...interface{})
	Warnw(msg string, args ...interface{})
	Errorw(msg string, err interface{}, args ...interface{})
}

type WarnAndError interface {
	Warnw(msg string, args ...interface{})
	Errorw(msg string, err interface{}, args ...interface{})
}
