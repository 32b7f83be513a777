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

package hresult

// FacilityWin32 is the facility under which plain Win32 error codes are
// packed into HRESULTs (FACILITY_WIN32 in the SDK).
const FacilityWin32 uint32 = 7

// Code extracts the facility-specific code from the low 16 bits.
func Code(hr int32) uint32 {
	return uint32(hr) & 0xFFFF
}

// Facility extracts the facility identifier from bits 16-26.
func Facility(hr int32) uint32 {
	return (uint32(hr) >> 16) & 0x7FF
}

// Severity extracts the severity bit: 0 for success, 1 for failure.
func Severity(hr int32) uint32 {
	return uint32(hr) >> 31
}

// Failed reports whether the value carries the failure severity bit.
func Failed(hr int32) bool {
	return hr < 0
}

// Succeeded reports whether the value carries the success severity bit.
func Succeeded(hr int32) bool {
	return hr >= 0
}

// FromWin32 packs a Win32 error code into a FACILITY_WIN32 failure HRESULT,
// the HRESULT_FROM_WIN32 macro. Zero stays zero: success has no failure
// HRESULT.
func FromWin32(c uint32) int32 {
	if c == 0 {
		return 0
	}
	return int32(0x80000000 | FacilityWin32<<16 | c&0xFFFF)
}
