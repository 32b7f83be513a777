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

// Package main demonstrates usage of the winerr package.
package main

import (
	"os"

	"github.com/rs/zerolog"

	"dirpx.dev/winerr"
	"dirpx.dev/winerr/code"
	"dirpx.dev/winerr/hresult"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	// Capture the calling thread's last error and display it.
	last := winerr.Last()
	log.Info().Uint32("code", last.Code()).Msg(last.String())

	// Wrap known codes directly.
	for _, c := range []uint32{code.Success, code.InvalidFunction, code.FileNotFound, code.AccessDenied} {
		e := winerr.WithCode(c)
		name, _ := code.Name(c)
		log.Info().Uint32("code", c).Str("name", name).Msg(e.String())
	}

	// An unregistered code still renders — through the fallback path.
	log.Info().Uint32("code", 15999).Msg(winerr.WithCode(15999).String())

	// Extract the Win32 code embedded in a packed HRESULT.
	hr := hresult.FromWin32(code.AccessDenied)
	e := winerr.FromHRESULT(hr)
	log.Info().
		Int32("hresult", hr).
		Bool("failed", hresult.Failed(hr)).
		Uint32("code", e.Code()).
		Msg(e.String())

	// ErrorCode is an error; it slots into standard chains.
	if err := removeProtectedFile(); err != nil {
		log.Error().Err(err).Msg("remove failed")
	}
}

func removeProtectedFile() error {
	return winerr.WithCode(code.AccessDenied)
}
