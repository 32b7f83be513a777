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

//go:build !windows

package winerr

import "dirpx.dev/winerr/code"

// hostCatalog on non-Windows platforms has no message catalog to consult.
// Every lookup reports zero characters written and a CallNotImplemented
// last error, so rendering degrades deterministically to the fallback text
// and downstream code cross-compiles and tests everywhere.
type hostCatalog struct{}

func (hostCatalog) LastError() uint32 {
	return code.CallNotImplemented
}

func (hostCatalog) FormatMessage(uint32, []uint16) uint32 {
	return 0
}
