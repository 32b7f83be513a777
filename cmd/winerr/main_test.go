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

package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseCode(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		hres    bool
		want    uint32
		wantErr bool
	}{
		{name: "decimal", arg: "5", want: 5},
		{name: "hex", arg: "0x57", want: 87},
		{name: "zero", arg: "0", want: 0},
		{name: "hresult hex", arg: "0x80070005", hres: true, want: 5},
		{name: "hresult negative decimal", arg: "-2147024891", hres: true, want: 5},
		{name: "hresult zero", arg: "0", hres: true, want: 0},
		{name: "garbage", arg: "nope", wantErr: true},
		{name: "too wide", arg: "4294967296", wantErr: true},
		{name: "negative without hresult", arg: "-5", wantErr: true},
		{name: "hresult garbage", arg: "-x", hres: true, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCode(tt.arg, tt.hres)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseCode(%q) expected error, got %d", tt.arg, got.Code())
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCode(%q) unexpected error: %v", tt.arg, err)
			}
			if got.Code() != tt.want {
				t.Fatalf("parseCode(%q) = %d, want %d", tt.arg, got.Code(), tt.want)
			}
		})
	}
}

func TestRootCmd_PrintsOneLinePerCode(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"2", "15999"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "2\tERROR_FILE_NOT_FOUND\t") {
		t.Fatalf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "15999\t-\t") {
		t.Fatalf("line 1 = %q", lines[1])
	}
}

func TestRootCmd_RejectsGarbage(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"nope"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for unparsable argument")
	}
}
