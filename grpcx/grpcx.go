/*
   Copyright 2025 The DIRPX Authors

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

// Package grpcx maps winerr.ErrorCode values onto gRPC statuses, carrying
// the numeric Win32 code in a google.rpc.ErrorInfo detail so clients can
// recover it exactly.
package grpcx

import (
	"context"
	"errors"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/winerr"
	"dirpx.dev/winerr/code"
)

// Domain marks ErrorInfo details produced by this package.
const Domain = "win32"

// metadataCodeKey is the ErrorInfo metadata key holding the decimal code.
const metadataCodeKey = "code"

// ToStatus converts an ErrorCode into a gRPC status: code resolved via
// CodeOf, message the rendered system text, and an ErrorInfo detail with
// the exact numeric code attached.
//
// Note that code.Success maps to codes.OK, whose status yields a nil error
// from Err().
func ToStatus(e winerr.ErrorCode) *gstatus.Status {
	base := gstatus.New(CodeOf(e.Code()), e.String())

	info := &errdetails.ErrorInfo{
		Reason: reasonOf(e.Code()),
		Domain: Domain,
		Metadata: map[string]string{
			metadataCodeKey: strconv.FormatUint(uint64(e.Code()), 10),
		},
	}

	// Try to attach the detail. If it fails — return base.
	if with, err := base.WithDetails(info); err == nil {
		return with
	}
	return base
}

// FromError recovers the ErrorCode embedded in a gRPC error produced by
// ToStatus (or by the interceptor). The second result is false when err
// carries no win32 ErrorInfo detail.
func FromError(err error) (winerr.ErrorCode, bool) {
	if err == nil {
		return winerr.ErrorCode{}, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return winerr.ErrorCode{}, false
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != Domain {
			continue
		}
		v, err := strconv.ParseUint(info.GetMetadata()[metadataCodeKey], 10, 32)
		if err != nil {
			continue
		}
		return winerr.WithCode(uint32(v)), true
	}
	return winerr.ErrorCode{}, false
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// winerr.ErrorCode errors escaping a handler into rich gRPC statuses.
// Errors of any other type pass through untouched.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var ec winerr.ErrorCode
		if !errors.As(err, &ec) {
			// Not ours — return as-is.
			return nil, err
		}
		return nil, ToStatus(ec).Err()
	}
}

func reasonOf(c uint32) string {
	if n, ok := code.Name(c); ok {
		return n
	}
	return "WIN32_ERROR"
}
