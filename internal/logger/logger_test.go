/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package logger_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"bennypowers.dev/tokenpipe/internal/logger"
)

func TestLevelPrefixes(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer logger.SetOutput(io.Discard)

	logger.Info("%s", "hello")
	logger.Warn("%s", "careful")
	logger.Error("%s", "broken")

	out := buf.String()
	for _, want := range []string{"info: hello", "warn: careful", "error: broken"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got %q", want, out)
		}
	}
}

func TestDebug_SilentByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer logger.SetOutput(io.Discard)

	logger.SetDebug(false)
	logger.Debug("should not appear")
	if buf.Len() != 0 {
		t.Errorf("expected no output with debug disabled, got %q", buf.String())
	}
}

func TestDebug_EnabledByFlag(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer func() {
		logger.SetOutput(io.Discard)
		logger.SetDebug(false)
	}()

	logger.SetDebug(true)
	logger.Debug("%s", "now visible")
	if !strings.Contains(buf.String(), "debug: now visible") {
		t.Errorf("expected debug output, got %q", buf.String())
	}
}
