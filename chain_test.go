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

package fu

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

func TestChain_WrapsExternalChain(t *testing.T) {
	e1 := errors.New("e1")
	e0 := fmt.Errorf("e0: %w", e1)
	err := Wrap(e0, "ctx")

	got := slices.Collect(Chain(err))
	want := []error{err, e0, e1}
	if len(got) != len(want) {
		t.Fatalf("chain length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("link %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestChain_Restartable(t *testing.T) {
	err := New("top").WithCause(New("mid").WithCause(errors.New("root")))

	first := slices.Collect(err.Chain())
	second := slices.Collect(err.Chain())
	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("chain lengths = %d, %d; want 3", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("link %d differs between traversals", i)
		}
	}
}

func TestChain_StopsEarly(t *testing.T) {
	err := New("top").WithCause(errors.New("root"))
	n := 0
	for range Chain(err) {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("visited %d links, want 1", n)
	}
}

func TestChain_Nil(t *testing.T) {
	for range Chain(nil) {
		t.Fatal("nil error must yield nothing")
	}
	if Root(nil) != nil || Causes(nil) != nil {
		t.Fatal("Root/Causes of nil must be nil")
	}
}

func TestChain_JoinIsTerminal(t *testing.T) {
	joined := errors.Join(errors.New("a"), errors.New("b"))
	err := Wrap(joined, "both failed")
	if got := len(slices.Collect(Chain(err))); got != 2 {
		t.Fatalf("chain length = %d, want 2", got)
	}
}

func TestCausesAndRoot(t *testing.T) {
	root := errors.New("root")
	mid := fmt.Errorf("mid: %w", root)
	err := New("top").WithCause(mid)

	causes := Causes(err)
	if len(causes) != 2 || causes[0] != mid || causes[1] != root {
		t.Fatalf("Causes = %v", causes)
	}
	if Root(err) != root {
		t.Fatalf("Root = %v, want %v", Root(err), root)
	}
	if Root(root) != root {
		t.Fatal("Root of a causeless error is itself")
	}
	if len(Causes(root)) != 0 {
		t.Fatal("causeless error has no causes")
	}
}
