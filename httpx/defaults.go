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

package httpx

import (
	"net/http"

	"dirpx.dev/winerr/code"
)

// defaultHTTP defines the library's built-in HTTP mappings for well-known
// Win32 error codes. These are only defaults: callers are expected to wrap
// or override them at the boundary where HTTP is actually produced.
//
// The intent is to stay close to common REST conventions while preserving
// the Win32 failure semantics (sharing violations are conflicts, wait
// timeouts are gateway timeouts, etc.).
var defaultHTTP = map[uint32]int{
	code.Success: http.StatusOK, // Zero code — nothing went wrong.

	// 4xx — caller-side issues.
	code.InvalidParameter: http.StatusBadRequest, // Malformed input to the call.
	code.InvalidData:      http.StatusBadRequest, // Payload failed structural checks.
	code.BadExeFormat:     http.StatusBadRequest, // Content is not what the operation expects.
	code.FileNotFound:     http.StatusNotFound,   // Target file does not exist.
	code.PathNotFound:     http.StatusNotFound,   // Target path does not exist.
	code.NotFound:         http.StatusNotFound,   // Generic element-not-found.
	code.AccessDenied:     http.StatusForbidden,  // Caller lacks rights on the object.
	code.WriteProtect:     http.StatusForbidden,  // Medium refuses writes.

	// Conflicts and concurrency.
	code.FileExists:       http.StatusConflict, // Create clash — target already exists.
	code.AlreadyExists:    http.StatusConflict, // Create clash — target already exists.
	code.DupName:          http.StatusConflict, // Name collision on the network.
	code.SharingViolation: http.StatusConflict, // Object is busy in another process.
	code.LockViolation:    http.StatusConflict, // Byte range locked elsewhere.

	// Unsupported operations.
	code.NotSupported:       http.StatusNotImplemented, // Host refuses the request kind.
	code.CallNotImplemented: http.StatusNotImplemented, // Function absent on this platform.

	// Time and cancellation.
	code.Timeout:          http.StatusGatewayTimeout, // Operation ran out of time budget.
	code.WaitTimeout:      http.StatusGatewayTimeout, // Wait expired before the object signaled.
	code.Cancelled:        http.StatusRequestTimeout, // Caller abandoned the operation.
	code.OperationAborted: http.StatusRequestTimeout, // I/O torn down mid-flight.

	// Resource exhaustion.
	code.NotEnoughMemory: http.StatusInsufficientStorage,
	code.OutOfMemory:     http.StatusInsufficientStorage,
}

// StatusOf resolves the HTTP status for a Win32 error code. Codes without a
// default mapping resolve to 500, the safe choice for an unclassified host
// failure.
func StatusOf(c uint32) int {
	if st, ok := defaultHTTP[c]; ok {
		return st
	}
	return http.StatusInternalServerError
}
