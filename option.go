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

// Option is a functional option for constructing an Error with E.
// It always takes an *Error and returns a (possibly new) *Error.
type Option func(*Error) *Error

// WithCauseOption attaches a cause on construction.
func WithCauseOption(err error) Option {
	return func(e *Error) *Error {
		return e.WithCause(err)
	}
}

// WithLocationOption overrides the captured location. Useful for errors
// describing a position in some other input, or for helpers that already
// resolved their caller via Caller.
func WithLocationOption(loc Location) Option {
	return func(e *Error) *Error {
		return e.withLocation(loc)
	}
}
