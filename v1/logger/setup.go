package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a wrapper around Uber's Zap logger.
type Logger struct {
	// Zap is the underlying zap.Logger instance. Exposed for cases that
	// need Zap-specific functionality; most logging should go through the
	// wrapper methods.
	Zap *zap.Logger
}

// NewLoggerClient initializes and returns a new logger based on configuration.
//
// The logger is configured with JSON encoding, ISO8601 timestamps, capital
// level names, caller information, and the process ID and service name as
// default fields. Output goes to stderr.
//
// If the Zap build step fails, the function calls log.Fatal.
func NewLoggerClient(cfg Config) *Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	logLevel := zap.InfoLevel

	switch cfg.Level {
	case Debug:
		logLevel = zap.DebugLevel
	case Info:
		logLevel = zap.InfoLevel
	case Warning:
		logLevel = zap.WarnLevel
	case Error:
		logLevel = zap.ErrorLevel
	}

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(logLevel),
		Development:       false,
		DisableCaller:     false,
		DisableStacktrace: false,
		Sampling:          nil,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths: []string{
			"stderr",
		},
		ErrorOutputPaths: []string{
			"stderr",
		},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	zl, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		log.Fatal(err)
	}

	return &Logger{Zap: zl}
}

// NewNopLogger returns a logger that discards everything. Intended for tests
// and for callers that want to silence a package without nil checks.
func NewNopLogger() *Logger {
	return &Logger{Zap: zap.NewNop()}
}
