// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
)

// testIO captures the output streams of one invocation.
type testIO struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
	hc     *HandlerContext
}

// newTestIO returns a HandlerContext rooted at dir with the given stdin.
func newTestIO(t *testing.T, dir, stdin string) *testIO {
	t.Helper()
	tio := &testIO{}
	tio.hc = &HandlerContext{
		Stdin:     strings.NewReader(stdin),
		Stdout:    &tio.stdout,
		Stderr:    &tio.stderr,
		Dir:       dir,
		LookupEnv: os.LookupEnv,
	}
	return tio
}

func (tio *testIO) ctx(t *testing.T) context.Context {
	return WithHandlerContext(t.Context(), tio.hc)
}
