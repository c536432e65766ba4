// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"context"
	"fmt"
	"io"

	"github.com/invowk/linetools/internal/textio"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/interp"
)

type (
	// HandlerContext provides the I/O environment of one utility invocation.
	HandlerContext struct {
		// Stdin is the input stream for the command and the target of "-".
		Stdin io.Reader
		// Stdout is the output stream for the command.
		Stdout io.Writer
		// Stderr receives per-file diagnostics.
		Stderr io.Writer
		// Dir is the directory relative file names resolve against.
		Dir string
		// LookupEnv retrieves environment variables.
		LookupEnv func(string) (string, bool)
		// Logger receives debug records. Nil discards them.
		Logger *log.Logger
	}

	// handlerContextKey is the context key for storing HandlerContext.
	handlerContextKey struct{}
)

var discardLogger = log.New(io.Discard)

// ExtractHandlerContext builds a HandlerContext from the shell interpreter's
// handler context. It must only be called from inside an interp exec handler.
func ExtractHandlerContext(ctx context.Context) *HandlerContext {
	hc := interp.HandlerCtx(ctx)
	return &HandlerContext{
		Stdin:  hc.Stdin,
		Stdout: hc.Stdout,
		Stderr: hc.Stderr,
		Dir:    hc.Dir,
		LookupEnv: func(name string) (string, bool) {
			v := hc.Env.Get(name)
			return v.Str, v.Set
		},
	}
}

// WithHandlerContext stores a HandlerContext in the context.
func WithHandlerContext(ctx context.Context, hc *HandlerContext) context.Context {
	return context.WithValue(ctx, handlerContextKey{}, hc)
}

// GetHandlerContext retrieves the HandlerContext from the context.
// If the context was created with WithHandlerContext, it returns that value.
// Otherwise, it extracts from the shell interpreter's handler context.
func GetHandlerContext(ctx context.Context) *HandlerContext {
	if hc, ok := ctx.Value(handlerContextKey{}).(*HandlerContext); ok {
		return hc
	}
	return ExtractHandlerContext(ctx)
}

// Opener returns the stream opener for this context.
func (hc *HandlerContext) Opener() textio.Opener {
	return textio.Opener{Stdin: hc.Stdin, Dir: hc.Dir}
}

func (hc *HandlerContext) log() *log.Logger {
	if hc.Logger == nil {
		return discardLogger
	}
	return hc.Logger
}

// reportOpenError writes the per-file diagnostic and lets processing continue.
func (hc *HandlerContext) reportOpenError(err *textio.OpenError) {
	hc.log().Debug("skipping input", "file", err.Name, "err", err.Err)
	fmt.Fprintln(hc.Stderr, err.Error())
}
