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

import "fmt"

// Raise returns a new Error located at the caller, typed as error so it
// can be returned directly:
//
//	if value > max {
//	    return fu.Raise("value is larger than %d", max)
//	}
//
// Without args the format string is used verbatim.
func Raise(format string, args ...any) error {
	return &Error{message: message(format, args), hasMessage: true, location: capture(1)}
}

// Ensure returns nil when cond holds. Otherwise it returns what Raise
// would have returned from the same line:
//
//	if err := fu.Ensure(value >= 0, "value must be non-negative"); err != nil {
//	    return err
//	}
func Ensure(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return &Error{message: message(format, args), hasMessage: true, location: capture(1)}
}

func message(format string, args []any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
