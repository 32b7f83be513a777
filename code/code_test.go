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

import (
	"strings"
	"testing"
)

func TestName_Known(t *testing.T) {
	tests := []struct {
		name string
		in   uint32
		want string
	}{
		{"success", Success, "ERROR_SUCCESS"},
		{"file not found", FileNotFound, "ERROR_FILE_NOT_FOUND"},
		{"access denied", AccessDenied, "ERROR_ACCESS_DENIED"},
		{"mr mid not found", MrMidNotFound, "ERROR_MR_MID_NOT_FOUND"},
		{"wait timeout", WaitTimeout, "WAIT_TIMEOUT"},
		{"cancelled", Cancelled, "ERROR_CANCELLED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Name(tt.in)
			if !ok {
				t.Fatalf("Name(%d) reported unknown", tt.in)
			}
			if got != tt.want {
				t.Fatalf("Name(%d) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestName_Unknown(t *testing.T) {
	for _, c := range []uint32{15999, 4096, 0xFFFFFFFF} {
		if n, ok := Name(c); ok {
			t.Fatalf("Name(%d) = %q, want unknown", c, n)
		}
		if Known(c) {
			t.Fatalf("Known(%d) = true, want false", c)
		}
	}
}

func TestNameCoversConstants(t *testing.T) {
	// Spot-check the numeric values against winerror.h. A wrong value here
	// would silently skew every mapping table keyed on these constants.
	values := map[string]uint32{
		"ERROR_SUCCESS":              0,
		"ERROR_INVALID_FUNCTION":     1,
		"ERROR_FILE_NOT_FOUND":       2,
		"ERROR_PATH_NOT_FOUND":       3,
		"ERROR_ACCESS_DENIED":        5,
		"ERROR_INVALID_HANDLE":       6,
		"ERROR_NOT_ENOUGH_MEMORY":    8,
		"ERROR_INVALID_DATA":         13,
		"ERROR_OUTOFMEMORY":          14,
		"ERROR_SHARING_VIOLATION":    32,
		"ERROR_NOT_SUPPORTED":        50,
		"ERROR_FILE_EXISTS":          80,
		"ERROR_INVALID_PARAMETER":    87,
		"ERROR_CALL_NOT_IMPLEMENTED": 120,
		"ERROR_INSUFFICIENT_BUFFER":  122,
		"ERROR_ALREADY_EXISTS":       183,
		"ERROR_EXE_MARKED_INVALID":   192,
		"WAIT_TIMEOUT":               258,
		"ERROR_MR_MID_NOT_FOUND":     317,
		"ERROR_OPERATION_ABORTED":    995,
		"ERROR_NOT_FOUND":            1168,
		"ERROR_CANCELLED":            1223,
		"ERROR_TIMEOUT":              1460,
	}
	for symbol, value := range values {
		got, ok := Name(value)
		if !ok {
			t.Fatalf("Name(%d) unknown, want %q", value, symbol)
		}
		if got != symbol {
			t.Fatalf("Name(%d) = %q, want %q", value, got, symbol)
		}
	}
}

func TestName_SymbolShape(t *testing.T) {
	// Every symbol must be an upper-snake identifier usable as an ErrorInfo
	// reason in API payloads.
	for c, n := range names {
		if n == "" {
			t.Fatalf("empty name for %d", c)
		}
		if strings.ToUpper(n) != n {
			t.Fatalf("name %q for %d is not upper case", n, c)
		}
		if strings.ContainsAny(n, " -") {
			t.Fatalf("name %q for %d contains separators", n, c)
		}
	}
}
