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

// Package httpx writes fu errors as HTTP responses.
//
// The body is the google.rpc.Status JSON produced by grpcx, so HTTP and gRPC
// clients see the same message, code and chain.
package httpx

import (
	"net/http"

	gcodes "google.golang.org/grpc/codes"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/jocades/fu/grpcx"
)

// Writer is a thin adapter that turns an error chain into an HTTP response.
// The zero value is ready to use.
type Writer struct {
	Converter grpcx.Converter
}

// Write serializes err as google.rpc.Status JSON with an HTTP status derived
// from its gRPC code. A nil err writes nothing.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	st := w.Converter.Status(err)

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(HTTPStatus(st.Code()))

	// IMPORTANT: protobuf JSON through protojson must be used so the Any
	// details carry their @type and well-known field names.
	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false, // use json_name
	}).Marshal(st.Proto())
	_, _ = rw.Write(b)
}

// httpStatus maps gRPC codes onto the closest REST conventions.
var httpStatus = map[gcodes.Code]int{
	gcodes.OK:                 http.StatusOK,
	gcodes.Canceled:           499, // client closed request (nginx)
	gcodes.Unknown:            http.StatusInternalServerError,
	gcodes.InvalidArgument:    http.StatusBadRequest,
	gcodes.DeadlineExceeded:   http.StatusGatewayTimeout,
	gcodes.NotFound:           http.StatusNotFound,
	gcodes.AlreadyExists:      http.StatusConflict,
	gcodes.PermissionDenied:   http.StatusForbidden,
	gcodes.ResourceExhausted:  http.StatusTooManyRequests,
	gcodes.FailedPrecondition: http.StatusBadRequest,
	gcodes.Aborted:            http.StatusConflict,
	gcodes.OutOfRange:         http.StatusBadRequest,
	gcodes.Unimplemented:      http.StatusNotImplemented,
	gcodes.Internal:           http.StatusInternalServerError,
	gcodes.Unavailable:        http.StatusServiceUnavailable,
	gcodes.DataLoss:           http.StatusInternalServerError,
	gcodes.Unauthenticated:    http.StatusUnauthorized,
}

// HTTPStatus returns the HTTP status for a gRPC code; unknown codes map to 500.
func HTTPStatus(c gcodes.Code) int {
	if s, ok := httpStatus[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}
