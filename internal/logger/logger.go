// Package logger provides the package-wide structured logging handle used
// by every stage of the OBJ/MTL import and export pipeline.
package logger

import "go.uber.org/zap"

// Log is the process-wide sugared logger. It is initialized once at package
// load and shared by value across every collaborator, instead of being
// threaded through every function call.
var Log *zap.SugaredLogger

func init() {
	l, err := zap.NewProduction()
	if err != nil {
		// Fall back to a development logger rather than leaving Log nil;
		// a missing logger should never abort a parse.
		l, _ = zap.NewDevelopment()
	}
	Log = l.Sugar()
}
