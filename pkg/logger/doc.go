// Package logger provides a configured slog.Logger factory with functional
// options for level, format and output, plus environment presets matching
// the application's deployment environments.
//
// Development logs are human-readable text at debug level; staging and
// production log JSON at info level for aggregation. The debug configuration
// toggle lowers the level to debug regardless of environment.
package logger
