// Package logger wraps zap to provide a global sugared logger with a console
// encoder, context helpers (ToContext/FromContext/WithName/WithKV) and level
// parsing.
//
// Output goes to stderr so that commands can print their results to stdout.
package logger
