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

// Package hresult picks apart packed HRESULT status values.
//
// An HRESULT is a signed 32-bit value with a fixed bit layout:
//
//	bit 31     severity (0 success, 1 failure)
//	bits 16-26 facility
//	bits 0-15  facility-specific code
//
// All functions are pure bit arithmetic with no host interaction; they accept
// any value and never fail.
package hresult
