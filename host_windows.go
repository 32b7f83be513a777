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

//go:build windows

package winerr

import "golang.org/x/sys/windows"

// formatFlags resolve messages from the system catalog only, and leave
// insert placeholders ("%1" etc.) in the text verbatim instead of consuming
// a format-argument array.
const formatFlags = windows.FORMAT_MESSAGE_FROM_SYSTEM | windows.FORMAT_MESSAGE_IGNORE_INSERTS

// hostCatalog is the live Win32 facility: GetLastError plus FormatMessageW.
type hostCatalog struct{}

func (hostCatalog) LastError() uint32 {
	err := windows.GetLastError()
	if err == nil {
		return 0
	}
	errno, ok := err.(windows.Errno)
	if !ok {
		return 0
	}
	return uint32(errno)
}

func (hostCatalog) FormatMessage(code uint32, buf []uint16) uint32 {
	// Language id 0 requests default-language resolution.
	n, err := windows.FormatMessage(formatFlags, 0, code, 0, buf, nil)
	if err != nil {
		return 0
	}
	return n
}
