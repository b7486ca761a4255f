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

// Package grpcx converts fu errors into gRPC statuses.
//
// The status message is the head error's message and the full chain travels
// as a google.rpc.DebugInfo detail, one stack entry per link, so clients can
// print where a failure was raised on the server.
package grpcx

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"github.com/jocades/fu"
)

// grpcStatus is implemented by errors produced by the status package.
type grpcStatus interface {
	GRPCStatus() *gstatus.Status
}

// Converter turns error chains into gRPC statuses.
// The zero value is ready to use.
type Converter struct {
	// Fallback is the code used when no link of the chain carries a gRPC
	// status. Zero (OK) means codes.Unknown.
	Fallback gcodes.Code
}

// Status converts err with the default Converter.
func Status(err error) *gstatus.Status { return Converter{}.Status(err) }

// Status converts err into a gRPC status. It returns nil for a nil err.
//
// The code is taken from the first link of the chain that carries a gRPC
// status, else from Fallback.
func (c Converter) Status(err error) *gstatus.Status {
	if err == nil {
		return nil
	}

	st := gstatus.New(c.code(err), message(err))

	info := &errdetails.DebugInfo{Detail: plain(err)}
	for link := range fu.Chain(err) {
		info.StackEntries = append(info.StackEntries, fu.Text(link))
	}

	// Try to attach the chain as details. If it fails, return the bare status.
	if with, derr := st.WithDetails(info); derr == nil {
		return with
	}
	return st
}

func (c Converter) code(err error) gcodes.Code {
	for link := range fu.Chain(err) {
		gs, ok := link.(grpcStatus)
		if !ok {
			continue
		}
		if s := gs.GRPCStatus(); s != nil && s.Code() != gcodes.OK {
			return s.Code()
		}
	}
	if c.Fallback != gcodes.OK {
		return c.Fallback
	}
	return gcodes.Unknown
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that
// converts handler errors containing a *fu.Error into statuses.
// Other errors are returned as-is.
func UnaryServerInterceptor(c Converter) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, c.convert(err)
	}
}

// StreamServerInterceptor is the streaming counterpart of UnaryServerInterceptor.
func StreamServerInterceptor(c Converter) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if err := handler(srv, ss); err != nil {
			return c.convert(err)
		}
		return nil
	}
}

func (c Converter) convert(err error) error {
	var fe *fu.Error
	if !errors.As(err, &fe) {
		// Not ours, return as-is.
		return err
	}
	return c.Status(err).Err()
}

// ExtractDebugInfo pulls the DebugInfo detail out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractDebugInfo(err error) (*errdetails.DebugInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if di, ok := d.(*errdetails.DebugInfo); ok {
			return di, true
		}
	}
	return nil, false
}

func message(err error) string {
	if fe, ok := err.(*fu.Error); ok && fe.HasMessage() {
		return fe.Message()
	}
	return fu.Text(err)
}

func plain(err error) string {
	if fe, ok := err.(*fu.Error); ok {
		return fe.Plain()
	}
	return fu.Text(err)
}
