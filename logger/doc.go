/*

The logger package provides a small leveled logging API
used throughout the response toolkit.

A default Logger writes colorized lines to os.Stdout.
When SENTRY_DSN is set, error-level logs additionally ship to Sentry.

*/
package logger
