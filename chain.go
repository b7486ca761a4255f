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
	"iter"
)

// Chain returns a lazy sequence over err and its causes: err first, then
// each successive errors.Unwrap result, stopping at the first link without
// a cause. A nil err yields nothing.
//
// The sequence can be ranged over any number of times and never modifies
// the links. Only single-cause Unwrap is followed, so an errors.Join value
// ends the chain.
//
// Causes must form a simple chain. An error that is its own (transitive)
// cause makes the sequence infinite.
func Chain(err error) iter.Seq[error] {
	return func(yield func(error) bool) {
		for link := err; link != nil; link = errors.Unwrap(link) {
			if !yield(link) {
				return
			}
		}
	}
}

// Chain returns the chain starting at e. See the package-level Chain.
func (e *Error) Chain() iter.Seq[error] {
	if e == nil {
		return Chain(nil)
	}
	return Chain(e)
}

// Causes returns every link of the chain after err itself.
func Causes(err error) []error {
	var out []error
	for link := range Chain(errors.Unwrap(err)) {
		out = append(out, link)
	}
	return out
}

// Root returns the last link of err's chain, or nil if err is nil.
func Root(err error) error {
	var last error
	for link := range Chain(err) {
		last = link
	}
	return last
}
