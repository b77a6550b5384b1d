package logger

import (
	"log"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gopkg.in/natefinch/lumberjack.v2"
)

var sugar *zap.SugaredLogger
var once sync.Once

// Init initializes a thread-safe singleton logger.
// This would be called from a main method when the application starts up
func Init(logLevel, filePath string, logRotate bool) {
	// once ensures the singleton is initialized only once
	once.Do(func() {
		config := zap.NewProductionConfig()
		outputs := []string{"stderr"}
		if len(filePath) > 0 {
			outputs = append(outputs, filePath)
		}
		config.OutputPaths = outputs
		config.ErrorOutputPaths = outputs
		config.EncoderConfig = zapcore.EncoderConfig{
			MessageKey: "message",

			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.ISO8601TimeEncoder,
		}

		// Set log level
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(logLevel)); err != nil {
			log.Fatalf("can't unmarshal level string: %v", logLevel)
		}
		config.Level = zap.NewAtomicLevelAt(level)

		logger, err := config.Build()
		if err != nil {
			log.Fatalf("can't initialize zap logger: %v", err)
		}

		// Added logrotate syncer from
		// https://github.com/uber-go/zap/issues/342
		if logRotate && len(filePath) > 0 {
			syncer := zapcore.AddSync(&lumberjack.Logger{
				Filename:   filePath,
				MaxSize:    1, // megabytes
				MaxBackups: 5,
				MaxAge:     28, // days
			})
			logger = logger.WithOptions(SetOutput(syncer, config))
		}

		defer func() {
			// Do not process sync err as told in:
			// https://github.com/uber-go/zap/issues/328
			_ = logger.Sync()
		}()

		sugar = logger.Sugar()
	})
}

// SetOutput replaces existing Core with new, that writes to passed WriteSyncer.
func SetOutput(ws zapcore.WriteSyncer, conf zap.Config) zap.Option {
	var enc zapcore.Encoder
	// Copy paste from zap.Config.buildEncoder.
	switch conf.Encoding {
	case "json":
		enc = zapcore.NewJSONEncoder(conf.EncoderConfig)
	case "console":
		enc = zapcore.NewConsoleEncoder(conf.EncoderConfig)
	default:
		panic("unknown encoding")
	}
	return zap.WrapCore(func(zapcore.Core) zapcore.Core {
		return zapcore.NewCore(enc, ws, conf.Level)
	})
}

// Debug logs a debug message with the given fields
func Debug(message string, fields ...interface{}) {
	sugar.Debugw(message, fields...)
}

// Info logs an info message with the given fields
func Info(message string, fields ...interface{}) {
	sugar.Infow(message, fields...)
}

// Warn logs a warning message with the given fields
func Warn(message string, fields ...interface{}) {
	sugar.Warnw(message, fields...)
}

// Error logs an error message with the given fields
func Error(message string, fields ...interface{}) {
	sugar.Errorw(message, fields...)
}

// Fatal logs a message than calls os.Exit(1)
func Fatal(message string, fields ...interface{}) {
	sugar.Fatalw(message, fields...)
}
