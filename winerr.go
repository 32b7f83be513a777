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

// Package winerr retrieves and formats Windows API error messages.
//
// An ErrorCode is an immutable snapshot of a numeric Win32 error code. It can
// be captured from the calling thread's last-error slot, wrapped around a raw
// code, or extracted from a packed HRESULT, and it renders itself into the
// localized message text registered for the code in the system catalog:
//
//	// Capture the last error and display it.
//	e := winerr.Last()
//	fmt.Println(e)
//
//	// Wrap a known code.
//	e = winerr.WithCode(5)
//	fmt.Println(e) // "Access is denied."
//
// Rendering never fails: when the code has no registered message (or the
// lookup itself fails), the output degrades to a descriptive fallback that
// still carries the original code. See String for the exact contract.
//
// On non-Windows platforms the package compiles and stays safe to call, but
// every lookup degrades to the fallback text since there is no Win32 message
// catalog to consult.
package winerr

import (
	"cmp"
	"syscall"

	"dirpx.dev/winerr/hresult"
)

// ErrorCode is a Windows API error code.
//
// The zero value is code 0 (ERROR_SUCCESS). ErrorCode is a plain comparable
// value: == and map keys follow the wrapped code, and Compare exposes the
// same total order. It does not track live host state — the code is a
// snapshot taken at construction time.
type ErrorCode struct {
	code uint32
}

// Last captures the calling thread's last-error slot, the equivalent of the
// Windows API call GetLastError.
//
// The slot is ambient per-thread state that any subsequent API call may
// overwrite, so Last must be called immediately after the operation whose
// error is of interest. The package does not (and cannot) enforce that
// proximity.
func Last() ErrorCode {
	return ErrorCode{code: sysCatalog.LastError()}
}

// LastError is an alias of Last, kept for callers that prefer the spelling
// of the underlying API call.
func LastError() ErrorCode {
	return Last()
}

// WithCode wraps a raw error code.
//
// No validation is performed: any 32-bit value is accepted, including values
// with no registered message. Such codes simply render through the fallback
// path.
func WithCode(code uint32) ErrorCode {
	return ErrorCode{code: code}
}

// FromHRESULT extracts the Win32 error code embedded in the low 16 bits of a
// packed HRESULT value and wraps it. The severity and facility bits are
// discarded; see the hresult package to inspect them.
func FromHRESULT(hr int32) ErrorCode {
	return WithCode(hresult.Code(hr))
}

// Code returns the wrapped error code.
func (e ErrorCode) Code() uint32 {
	return e.code
}

// Compare orders two error codes by their numeric value. It returns -1, 0,
// or 1, consistent with == on ErrorCode.
func (e ErrorCode) Compare(other ErrorCode) int {
	return cmp.Compare(e.code, other.code)
}

// String renders the message text registered for the code in the system
// catalog, with surrounding whitespace trimmed. Line breaks inside
// multi-line messages are preserved verbatim; only the outer edges are
// trimmed. Messages are resolved in the system default language and
// insert placeholders such as "%1" are left in the text untouched.
//
// When the code has no registered message, the host's own error from the
// failed lookup is reported instead:
//
//	Error code 15999 (could not format due to internal error: 317 - <text>)
//
// and when even that secondary lookup yields nothing:
//
//	Error code 15999 (could not format due to internal error code: 317)
//
// The result is never empty and String never panics.
func (e ErrorCode) String() string {
	return render(sysCatalog, e.code)
}

// Error implements the error interface. The output is identical to String.
func (e ErrorCode) Error() string {
	return e.String()
}

// Errno reinterprets the code as a platform-native OS error number. No
// transformation is applied beyond the numeric cast, so the original code is
// recoverable exactly.
func (e ErrorCode) Errno() syscall.Errno {
	return syscall.Errno(e.code)
}

// OSError returns the code as a plain error value suitable for errors.Is /
// errors.As chains built on syscall.Errno.
func (e ErrorCode) OSError() error {
	return e.Errno()
}
