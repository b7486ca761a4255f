/*
   Copyright 2025 The Fu Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package zapx

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jocades/fu"
)

func observe(t *testing.T, fields ...zap.Field) map[string]any {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	zap.New(core).Error("failed", fields...)
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("logged %d entries, want 1", len(entries))
	}
	return entries[0].ContextMap()
}

func TestError_Chain(t *testing.T) {
	loc := fu.Location{File: "config/load.go", Line: 30, Column: 9}
	mid := fu.E("read settings", fu.WithLocationOption(loc), fu.WithCauseOption(errors.New("unexpected EOF")))
	top := fu.E("load config",
		fu.WithLocationOption(fu.Location{File: "cmd/main.go", Line: 12, Column: 2}),
		fu.WithCauseOption(mid),
	)

	got := observe(t, Error(top))
	want := map[string]any{
		"error": map[string]any{
			"message": "load config",
			"location": map[string]any{
				"file":   "cmd/main.go",
				"line":   12,
				"column": 2,
			},
			"causes": []any{
				"read settings    config/load.go:[30:9]",
				"unexpected EOF",
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("context mismatch (-want +got):\n%s", diff)
	}
}

func TestError_ForeignAndMark(t *testing.T) {
	got := observe(t,
		NamedError("plain", errors.New("boom")),
		NamedError("mark", fu.Mark().WithCause(errors.New("root"))),
	)

	plain := got["plain"].(map[string]any)
	if plain["message"] != "boom" {
		t.Fatalf("plain = %v", plain)
	}
	if _, ok := plain["causes"]; ok {
		t.Fatal("causeless error must not log causes")
	}

	mark := got["mark"].(map[string]any)
	if _, ok := mark["message"]; ok {
		t.Fatal("message-less error must not log a message")
	}
	if _, ok := mark["location"]; !ok {
		t.Fatal("location missing")
	}
	if diff := cmp.Diff([]any{"root"}, mark["causes"]); diff != "" {
		t.Fatalf("causes mismatch (-want +got):\n%s", diff)
	}
}

func TestError_NilSkipped(t *testing.T) {
	got := observe(t, Error(nil))
	if len(got) != 0 {
		t.Fatalf("nil error must be skipped, got %v", got)
	}
}

func TestLocation(t *testing.T) {
	got := observe(t, Location("at", fu.Location{File: "a/b.go", Line: 1, Column: 3}))
	want := map[string]any{"at": map[string]any{"file": "a/b.go", "line": 1, "column": 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("context mismatch (-want +got):\n%s", diff)
	}
}
