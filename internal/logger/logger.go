package logger

import "go.uber.org/zap"

// Log is a no-op until Init runs, so packages can log from tests.
var Log = zap.NewNop()

func Init(development bool) {
	var (
		l   *zap.Logger
		err error
	)
	if development {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return
	}
	Log = l
}

func Sync() {
	_ = Log.Sync()
}
