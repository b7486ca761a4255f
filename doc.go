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

// Package fu provides an error type that records where it was raised.
//
// An Error carries an optional message, the file, line and column of the
// call that built it, and an optional cause. Constructors capture the
// location of their caller, so
//
//	func example(value int) error {
//	    if err := fu.Ensure(value >= 0, "value must be non-negative"); err != nil {
//	        return err
//	    }
//	    if value > max {
//	        return fu.Raise("value is larger than %d", max)
//	    }
//	    return nil
//	}
//
// reports the line of the failing Ensure or Raise. Errors from other
// packages are lifted with Wrap or Try(...).Wrap, which record the
// wrapping site and keep the original error as the cause:
//
//	f, err := fu.Try(os.Open("abc")).Wrap("wrapped")
//
// Printing an Error renders the whole chain:
//
//	wrapped    pkg/main.go:[12:12]
//	Caused by: open abc: no such file or directory
//
// Columns come from the source file: the runtime only records lines, so the
// column is where the call to the constructor starts on that line, found by
// parsing the file once. It is 1 when the source is not available.
//
// Errors are immutable. WithContext and WithCause return copies, and Chain
// walks the causes lazily without touching them. Cause chains must not be
// cyclic; Chain does not guard against it.
package fu
