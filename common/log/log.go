package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/common/config"
)

// Logger is the logging interface shared by all packages. It is a thin
// wrapper over logrus so call sites stay decoupled from the backend.
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	Printf(format string, args ...interface{})
	WithFields(fields logrus.Fields) Logger
}

type logrusLogger struct {
	entry *logrus.Entry
}

// GetLogger builds a Logger from the given config. A nil config yields a
// text logger at info level on stdout.
func GetLogger(conf *config.LoggerConfig) (Logger, error) {
	base := logrus.New()

	if conf == nil {
		conf = &config.LoggerConfig{}
	}

	level := conf.Level
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	base.SetLevel(parsed)

	switch conf.Format {
	case "json":
		base.SetFormatter(&logrus.JSONFormatter{})
	default:
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var out io.Writer = os.Stdout
	if conf.Path != "" {
		rotation := int(conf.RotationCount)
		if rotation == 0 {
			rotation = 50
		}
		out = &lumberjack.Logger{
			Filename:   conf.Path,
			MaxBackups: rotation,
		}
	}
	base.SetOutput(out)

	return &logrusLogger{entry: logrus.NewEntry(base)}, nil
}

func (l *logrusLogger) Debug(args ...interface{}) { l.entry.Debug(args...) }

func (l *logrusLogger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }

func (l *logrusLogger) Info(args ...interface{}) { l.entry.Info(args...) }

func (l *logrusLogger) Infof(format string, args ...interface{}) { l.entry.Infof(format, args...) }

func (l *logrusLogger) Warn(args ...interface{}) { l.entry.Warn(args...) }

func (l *logrusLogger) Warnf(format string, args ...interface{}) { l.entry.Warnf(format, args...) }

func (l *logrusLogger) Error(args ...interface{}) { l.entry.Error(args...) }

func (l *logrusLogger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

func (l *logrusLogger) Fatal(args ...interface{}) { l.entry.Fatal(args...) }

func (l *logrusLogger) Fatalf(format string, args ...interface{}) { l.entry.Fatalf(format, args...) }

func (l *logrusLogger) Printf(format string, args ...interface{}) { l.entry.Infof(format, args...) }

func (l *logrusLogger) WithFields(fields logrus.Fields) Logger {
	return &logrusLogger{entry: l.entry.WithFields(fields)}
}
