package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the process wide logger. It starts as a plain logrus logger so
// packages can log before BootstrapLogger runs.
var Log = logrus.New()

func BootstrapLogger(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.DebugLevel
	}

	Log = &logrus.Logger{
		Out:   os.Stdout,
		Hooks: make(logrus.LevelHooks),
		Formatter: &logrus.TextFormatter{
			DisableColors:    false,
			DisableQuote:     false,
			DisableTimestamp: false,
			FullTimestamp:    true,
			TimestampFormat:  "",
		},
		ReportCaller: true,
		Level:        lvl,
		ExitFunc:     os.Exit,
	}

	if err != nil {
		Log.Warnf("unknown log level %q, using debug", level)
	}
}
