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

// Wrap returns a new Error located at the caller, with ctx as its message
// and err as its cause. A nil err is returned as nil, so
//
//	return fu.Wrap(db.Ping(), "ping database")
//
// only fails when the inner call did.
func Wrap(err error, ctx string) error {
	if err == nil {
		return nil
	}
	return &Error{message: ctx, hasMessage: true, location: capture(1), cause: err}
}

// Wrapf is Wrap with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{message: message(format, args), hasMessage: true, location: capture(1), cause: err}
}

// Result holds the outcome of a call returning (T, error) so it can be
// wrapped in one expression:
//
//	f, err := fu.Try(os.Open(name)).Wrap("open config")
type Result[T any] struct {
	value T
	err   error
}

// Try captures the results of a (T, error) call.
func Try[T any](v T, err error) Result[T] {
	return Result[T]{value: v, err: err}
}

// Wrap passes a successful value through unchanged. On failure it returns
// the zero T and a new Error located at the caller, with ctx as its
// message and the original error as its cause.
func (r Result[T]) Wrap(ctx string) (T, error) {
	if r.err == nil {
		return r.value, nil
	}
	var zero T
	return zero, &Error{message: ctx, hasMessage: true, location: capture(1), cause: r.err}
}

// Wrapf is Wrap with a formatted context message.
func (r Result[T]) Wrapf(format string, args ...any) (T, error) {
	if r.err == nil {
		return r.value, nil
	}
	var zero T
	return zero, &Error{message: message(format, args), hasMessage: true, location: capture(1), cause: r.err}
}

// Unwrap returns the captured pair untouched.
func (r Result[T]) Unwrap() (T, error) { return r.value, r.err }
