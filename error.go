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

// Error is an error value that knows where it was raised.
//
// It carries:
//   - Message: optional human-readable description (what went wrong);
//   - Location: the call site that constructed the error (always set);
//   - Cause: optional underlying error, exposed through Unwrap.
//
// An Error is immutable once built. WithContext and WithCause return a
// shallow copy, so values can be passed around and annotated freely.
type Error struct {
	message    string
	hasMessage bool
	location   Location
	cause      error
}

// New returns an Error with the given message, located at the caller.
func New(msg string) *Error {
	return &Error{message: msg, hasMessage: true, location: capture(1)}
}

// Newf is New with a formatted message. Without args the format string
// is used verbatim, as with Raise.
func Newf(format string, args ...any) *Error {
	return &Error{message: message(format, args), hasMessage: true, location: capture(1)}
}

// Mark returns an Error without a message; it renders as its location only.
func Mark() *Error {
	return &Error{location: capture(1)}
}

// E is a convenience constructor for Error.
//
// Usage:
//
//	return fu.E("storage is down",
//	    fu.WithCauseOption(err),
//	)
//
// It always returns a *new* Error located at the caller and applies all
// provided options in order.
func E(msg string, opts ...Option) *Error {
	e := &Error{message: msg, hasMessage: true, location: capture(1)}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Message returns the error message, or "" if none was given.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// HasMessage reports whether the error carries a message.
func (e *Error) HasMessage() bool { return e != nil && e.hasMessage }

// Location returns the call site that constructed the error.
func (e *Error) Location() Location {
	if e == nil {
		return Location{}
	}
	return e.location
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// WithContext returns a shallow copy of e with the message replaced by ctx.
// Location and cause are kept, so an error can be relabelled on its way up
// without losing where it came from.
func (e *Error) WithContext(ctx string) *Error {
	if e == nil {
		return nil
	}
	cp := *e
	cp.message = ctx
	cp.hasMessage = true
	return &cp
}

// WithCause returns a shallow copy of e with err as its cause.
// Any previous cause is replaced; a nil err leaves the copy without one.
func (e *Error) WithCause(err error) *Error {
	if e == nil {
		return nil
	}
	cp := *e
	cp.cause = err
	return &cp
}

// withLocation returns a shallow copy of e reporting loc instead.
func (e *Error) withLocation(loc Location) *Error {
	cp := *e
	cp.location = loc
	return &cp
}
