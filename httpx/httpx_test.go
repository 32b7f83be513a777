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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dirpx.dev/winerr"
	"dirpx.dev/winerr/code"
)

// decodeErrorInfo parses the ErrorInfo JSON body. protojson output spacing
// is deliberately unstable, so tests must not match on raw substrings.
func decodeErrorInfo(t *testing.T, body []byte) (reason, domain string, metadata map[string]string) {
	t.Helper()
	var payload struct {
		Reason   string            `json:"reason"`
		Domain   string            `json:"domain"`
		Metadata map[string]string `json:"metadata"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("invalid body %s: %v", body, err)
	}
	return payload.Reason, payload.Domain, payload.Metadata
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		in   uint32
		want int
	}{
		{"success", code.Success, http.StatusOK},
		{"file not found", code.FileNotFound, http.StatusNotFound},
		{"access denied", code.AccessDenied, http.StatusForbidden},
		{"already exists", code.AlreadyExists, http.StatusConflict},
		{"wait timeout", code.WaitTimeout, http.StatusGatewayTimeout},
		{"not supported", code.NotSupported, http.StatusNotImplemented},
		{"unmapped", 15999, http.StatusInternalServerError},
		{"invalid handle unmapped", code.InvalidHandle, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusOf(tt.in); got != tt.want {
				t.Fatalf("StatusOf(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestReasonOf(t *testing.T) {
	if got := ReasonOf(code.FileNotFound); got != "ERROR_FILE_NOT_FOUND" {
		t.Fatalf("ReasonOf(2) = %q", got)
	}
	if got := ReasonOf(15999); got != "WIN32_ERROR" {
		t.Fatalf("ReasonOf(15999) = %q", got)
	}
}

func TestWriter_Write(t *testing.T) {
	rec := httptest.NewRecorder()
	Writer{}.Write(rec, winerr.WithCode(code.FileNotFound))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	reason, domain, metadata := decodeErrorInfo(t, rec.Body.Bytes())
	if reason != "ERROR_FILE_NOT_FOUND" {
		t.Fatalf("reason = %q", reason)
	}
	if domain != DefaultDomain {
		t.Fatalf("domain = %q", domain)
	}
	if metadata["code"] != "2" {
		t.Fatalf("metadata code = %q", metadata["code"])
	}
	if metadata["message"] == "" {
		t.Fatal("metadata message empty")
	}
}

func TestWriter_CustomDomain(t *testing.T) {
	rec := httptest.NewRecorder()
	Writer{Domain: "files.example.com"}.Write(rec, winerr.WithCode(code.AccessDenied))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
	_, domain, _ := decodeErrorInfo(t, rec.Body.Bytes())
	if domain != "files.example.com" {
		t.Fatalf("domain = %q", domain)
	}
}
