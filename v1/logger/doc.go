// Package logger provides structured logging for the schemapath packages.
//
// It wraps Uber's Zap logger behind a small set of leveled methods that take
// a message, an optional error, and optional structured field maps. The
// consuming packages (v1/postgres, v1/namespace) declare their own minimal
// logger interfaces; *Logger satisfies all of them.
//
// Direct usage:
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "tenant-api",
//	})
//	log.Info("namespace activated", nil, map[string]interface{}{
//		"namespace": "tenant_a",
//	})
//
// FX usage:
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(func() logger.Config {
//			return logger.Config{Level: logger.Info, ServiceName: "tenant-api"}
//		}),
//	)
//
// The FX module registers a shutdown hook that flushes buffered entries.
package logger
