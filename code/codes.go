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

package code

// Success and the classic DOS-era codes
//
// These are the codes most Win32 file and process APIs report for everyday
// failures. They are stable since the earliest SDKs.
const (
	// Success (ERROR_SUCCESS) is the zero code: "The operation completed
	// successfully." Note that a zero last-error slot does not prove the
	// preceding call succeeded — only that nothing recorded a failure.
	Success uint32 = 0

	// InvalidFunction (ERROR_INVALID_FUNCTION): "Incorrect function."
	InvalidFunction uint32 = 1

	// FileNotFound (ERROR_FILE_NOT_FOUND): the system cannot find the file
	// specified.
	FileNotFound uint32 = 2

	// PathNotFound (ERROR_PATH_NOT_FOUND): the system cannot find the path
	// specified.
	PathNotFound uint32 = 3

	// AccessDenied (ERROR_ACCESS_DENIED): the caller lacks the rights for
	// the attempted operation.
	AccessDenied uint32 = 5

	// InvalidHandle (ERROR_INVALID_HANDLE): the handle is invalid.
	InvalidHandle uint32 = 6

	// NotEnoughMemory (ERROR_NOT_ENOUGH_MEMORY): not enough storage is
	// available to process this command.
	NotEnoughMemory uint32 = 8

	// InvalidData (ERROR_INVALID_DATA): the data is invalid.
	InvalidData uint32 = 13

	// OutOfMemory (ERROR_OUTOFMEMORY): not enough storage is available to
	// complete this operation.
	OutOfMemory uint32 = 14

	// WriteProtect (ERROR_WRITE_PROTECT): the media is write protected.
	WriteProtect uint32 = 19

	// SharingViolation (ERROR_SHARING_VIOLATION): the file is in use by
	// another process.
	SharingViolation uint32 = 32

	// LockViolation (ERROR_LOCK_VIOLATION): another process has locked a
	// portion of the file.
	LockViolation uint32 = 33

	// NotSupported (ERROR_NOT_SUPPORTED): the request is not supported.
	NotSupported uint32 = 50

	// DupName (ERROR_DUP_NAME): a duplicate name exists on the network.
	DupName uint32 = 52

	// FileExists (ERROR_FILE_EXISTS): the file already exists.
	FileExists uint32 = 80

	// InvalidParameter (ERROR_INVALID_PARAMETER): the parameter is
	// incorrect.
	InvalidParameter uint32 = 87

	// BrokenPipe (ERROR_BROKEN_PIPE): the pipe has been ended.
	BrokenPipe uint32 = 109

	// CallNotImplemented (ERROR_CALL_NOT_IMPLEMENTED): the function is not
	// valid on this platform. Also what this module's non-Windows stub
	// reports for every lookup.
	CallNotImplemented uint32 = 120

	// InsufficientBuffer (ERROR_INSUFFICIENT_BUFFER): the data area passed
	// to a system call is too small.
	InsufficientBuffer uint32 = 122

	// AlreadyExists (ERROR_ALREADY_EXISTS): cannot create a file when that
	// file already exists.
	AlreadyExists uint32 = 183

	// ExeMarkedInvalid (ERROR_EXE_MARKED_INVALID): "The operating system
	// cannot run %1." — a classic example of a message whose insert
	// placeholder is left verbatim by this module.
	ExeMarkedInvalid uint32 = 192

	// BadExeFormat (ERROR_BAD_EXE_FORMAT): %1 is not a valid application.
	BadExeFormat uint32 = 193

	// MoreData (ERROR_MORE_DATA): more data is available than the supplied
	// buffer could hold.
	MoreData uint32 = 234

	// WaitTimeout (WAIT_TIMEOUT): the wait operation timed out.
	WaitTimeout uint32 = 258

	// MrMidNotFound (ERROR_MR_MID_NOT_FOUND): the system cannot find
	// message text for the requested message number. This is the code
	// FormatMessage itself reports when asked about an unregistered code,
	// so it is the usual secondary code in this module's fallback text.
	MrMidNotFound uint32 = 317
)

// Operation-lifecycle and availability codes
const (
	// OperationAborted (ERROR_OPERATION_ABORTED): the I/O operation was
	// aborted because of a thread exit or application request.
	OperationAborted uint32 = 995

	// IOPending (ERROR_IO_PENDING): an overlapped I/O operation is in
	// progress. Reported by asynchronous APIs; not a failure.
	IOPending uint32 = 997

	// NotFound (ERROR_NOT_FOUND): the element was not found. The generic
	// modern sibling of FileNotFound.
	NotFound uint32 = 1168

	// Cancelled (ERROR_CANCELLED): the operation was canceled by the user.
	Cancelled uint32 = 1223

	// Timeout (ERROR_TIMEOUT): the operation returned because the timeout
	// period expired.
	Timeout uint32 = 1460
)

// names maps numeric values back to their winerror.h symbols. Kept in sync
// with the constant blocks above by TestNameCoversConstants.
var names = map[uint32]string{
	Success:            "ERROR_SUCCESS",
	InvalidFunction:    "ERROR_INVALID_FUNCTION",
	FileNotFound:       "ERROR_FILE_NOT_FOUND",
	PathNotFound:       "ERROR_PATH_NOT_FOUND",
	AccessDenied:       "ERROR_ACCESS_DENIED",
	InvalidHandle:      "ERROR_INVALID_HANDLE",
	NotEnoughMemory:    "ERROR_NOT_ENOUGH_MEMORY",
	InvalidData:        "ERROR_INVALID_DATA",
	OutOfMemory:        "ERROR_OUTOFMEMORY",
	WriteProtect:       "ERROR_WRITE_PROTECT",
	SharingViolation:   "ERROR_SHARING_VIOLATION",
	LockViolation:      "ERROR_LOCK_VIOLATION",
	NotSupported:       "ERROR_NOT_SUPPORTED",
	DupName:            "ERROR_DUP_NAME",
	FileExists:         "ERROR_FILE_EXISTS",
	InvalidParameter:   "ERROR_INVALID_PARAMETER",
	BrokenPipe:         "ERROR_BROKEN_PIPE",
	CallNotImplemented: "ERROR_CALL_NOT_IMPLEMENTED",
	InsufficientBuffer: "ERROR_INSUFFICIENT_BUFFER",
	AlreadyExists:      "ERROR_ALREADY_EXISTS",
	ExeMarkedInvalid:   "ERROR_EXE_MARKED_INVALID",
	BadExeFormat:       "ERROR_BAD_EXE_FORMAT",
	MoreData:           "ERROR_MORE_DATA",
	WaitTimeout:        "WAIT_TIMEOUT",
	MrMidNotFound:      "ERROR_MR_MID_NOT_FOUND",
	OperationAborted:   "ERROR_OPERATION_ABORTED",
	IOPending:          "ERROR_IO_PENDING",
	NotFound:           "ERROR_NOT_FOUND",
	Cancelled:          "ERROR_CANCELLED",
	Timeout:            "ERROR_TIMEOUT",
}

// Name returns the winerror.h symbol for a numeric code, such as
// "ERROR_FILE_NOT_FOUND" for 2. The second result reports whether the code
// is in the named set.
func Name(c uint32) (string, bool) {
	n, ok := names[c]
	return n, ok
}

// Known reports whether the code is in the named set. Unknown codes are not
// invalid — they simply have no symbol here.
func Known(c uint32) bool {
	_, ok := names[c]
	return ok
}
