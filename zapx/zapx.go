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

// Package zapx encodes fu errors as structured zap fields.
//
// A chain is logged as one object:
//
//	{"message": "load config",
//	 "location": {"file": "cmd/main.go", "line": 12, "column": 2},
//	 "causes": ["read settings    config/load.go:[30:9]", "unexpected EOF"]}
//
// so log pipelines can index the raise site without parsing the rendered
// text. Errors from other packages are logged with their message and causes.
package zapx

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jocades/fu"
)

// Error returns a field named "error" describing err and its chain.
// A nil err yields a field that is skipped.
func Error(err error) zap.Field { return NamedError("error", err) }

// NamedError is Error with a custom key.
func NamedError(key string, err error) zap.Field {
	if err == nil {
		return zap.Skip()
	}
	return zap.Object(key, chain{err: err})
}

// Location returns a field describing loc.
func Location(key string, loc fu.Location) zap.Field {
	return zap.Object(key, location(loc))
}

type location fu.Location

func (l location) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("file", l.File)
	enc.AddInt("line", l.Line)
	enc.AddInt("column", l.Column)
	return nil
}

type chain struct {
	err error
}

func (c chain) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if fe, ok := c.err.(*fu.Error); ok {
		if fe.HasMessage() {
			enc.AddString("message", fe.Message())
		}
		if err := enc.AddObject("location", location(fe.Location())); err != nil {
			return err
		}
	} else {
		enc.AddString("message", fu.Text(c.err))
	}

	causes := fu.Causes(c.err)
	if len(causes) == 0 {
		return nil
	}
	return enc.AddArray("causes", zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
		for _, cause := range causes {
			arr.AppendString(fu.Text(cause))
		}
		return nil
	}))
}
