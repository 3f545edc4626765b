// Package log provides the logging abstraction for mainline components.
//
// The package defines a Logger interface that can be implemented by any
// logging library. A zerolog adapter is provided for real output and a
// no-op logger for embedding and tests.
//
// Use the zerolog adapter:
//
//	logger := log.NewZerologAdapter()
//
// Or wrap an existing zerolog.Logger:
//
//	logger := log.NewZerologAdapterWithLogger(zl)
//
// The library defaults to the no-op logger, so host applications that do
// not care about diagnostics pay nothing.
package log
