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

// Package code names the well-known Win32 error codes the rest of the module
// (and its callers) refer to.
//
// The constants carry the numeric values from the Windows SDK's winerror.h;
// the Go names drop the ERROR_ prefix and use CamelCase, so ERROR_FILE_NOT_FOUND
// becomes code.FileNotFound. Name recovers the original SDK symbol for a
// numeric value, which is the form most useful in diagnostics and in
// machine-readable payloads.
//
// The set is intentionally not exhaustive — winerror.h defines thousands of
// codes. It covers the codes this module's transport mappers key on plus the
// ones that show up routinely in diagnostics. Codes outside the set are still
// perfectly valid inputs everywhere in the module; they are simply anonymous.
package code
