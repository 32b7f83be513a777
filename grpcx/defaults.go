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

package grpcx

import (
	"google.golang.org/grpc/codes"

	"dirpx.dev/winerr/code"
)

// defaultGRPC defines the library's built-in gRPC mappings for well-known
// Win32 error codes. The values align with the canonical gRPC status code
// semantics; callers may wrap CodeOf at the transport edge if a different
// policy is required.
var defaultGRPC = map[uint32]codes.Code{
	code.Success: codes.OK,

	// Input / arguments.
	code.InvalidParameter: codes.InvalidArgument, // Bad argument to the call.
	code.InvalidData:      codes.InvalidArgument, // Structurally invalid payload.
	code.BadExeFormat:     codes.InvalidArgument, // Content of the wrong shape.

	// Resource state.
	code.FileNotFound:  codes.NotFound,      // Target file absent.
	code.PathNotFound:  codes.NotFound,      // Target path absent.
	code.NotFound:      codes.NotFound,      // Generic element absent.
	code.FileExists:    codes.AlreadyExists, // Create on an existing file.
	code.AlreadyExists: codes.AlreadyExists, // Create on an existing object.
	code.DupName:       codes.AlreadyExists, // Network name collision.

	// Concurrency.
	code.SharingViolation: codes.Aborted, // Object busy elsewhere; retryable.
	code.LockViolation:    codes.Aborted, // Byte range locked elsewhere.

	// AuthZ.
	code.AccessDenied: codes.PermissionDenied,
	code.WriteProtect: codes.PermissionDenied, // Medium refuses writes.

	// Capability.
	code.NotSupported:       codes.Unimplemented, // Host refuses the request kind.
	code.CallNotImplemented: codes.Unimplemented, // Function absent on this platform.

	// Time / cancellation.
	code.Timeout:          codes.DeadlineExceeded,
	code.WaitTimeout:      codes.DeadlineExceeded,
	code.Cancelled:        codes.Canceled,
	code.OperationAborted: codes.Canceled,

	// Resources.
	code.NotEnoughMemory: codes.ResourceExhausted,
	code.OutOfMemory:     codes.ResourceExhausted,
	code.MoreData:        codes.OutOfRange, // Supplied buffer too small for the result.
}

// CodeOf resolves the gRPC code for a Win32 error code. Codes without a
// default mapping resolve to codes.Unknown.
func CodeOf(c uint32) codes.Code {
	if gc, ok := defaultGRPC[c]; ok {
		return gc
	}
	return codes.Unknown
}
