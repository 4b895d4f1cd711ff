package opc

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	globalLogger     *log.Logger
	globalLoggerOnce sync.Once
)

func initGlobalLogger() {
	globalLoggerOnce.Do(func() {
		config := ConfigFromEnvironment()
		globalLogger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "opc",
			Level:  parseLogLevel(config.LogLevel),
		})
	})
}

func parseLogLevel(levelStr string) log.Level {
	level, err := log.ParseLevel(levelStr)
	if err != nil {
		return log.WarnLevel
	}
	return level
}

// SetLogger replaces the package logger.
func SetLogger(logger *log.Logger) {
	initGlobalLogger()
	globalLogger = logger
}

// GetLogger returns the package logger.
func GetLogger() *log.Logger {
	initGlobalLogger()
	return globalLogger
}
