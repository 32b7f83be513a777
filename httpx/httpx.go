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
	"net/http"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/protobuf/encoding/protojson"

	"dirpx.dev/winerr"
	"dirpx.dev/winerr/code"
)

// DefaultDomain is reported as the ErrorInfo domain when the Writer has no
// explicit one configured.
const DefaultDomain = "win32"

// Writer is a thin adapter that turns a winerr.ErrorCode into an HTTP error
// response: status resolved via StatusOf, body a google.rpc.ErrorInfo JSON
// payload carrying the numeric code and its rendered message.
type Writer struct {
	// Domain names the error-producing service in the ErrorInfo payload.
	// Empty means DefaultDomain.
	Domain string
}

// Write serializes e to rw. No redaction or filtering is performed: the
// rendered system message is exposed as-is. Higher-level handlers should
// apply policies if needed.
func (w Writer) Write(rw http.ResponseWriter, e winerr.ErrorCode) {
	domain := w.Domain
	if domain == "" {
		domain = DefaultDomain
	}

	info := &errdetails.ErrorInfo{
		Reason: ReasonOf(e.Code()),
		Domain: domain,
		Metadata: map[string]string{
			"code":    strconv.FormatUint(uint64(e.Code()), 10),
			"message": e.String(),
		},
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(StatusOf(e.Code()))

	// IMPORTANT: protobuf JSON through protojson must be used to ensure
	// proper serialization of field names (json_name) and well-known types.
	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false, // use json_name
	}).Marshal(info)
	_, _ = rw.Write(b)
}

// ReasonOf returns the upper-snake reason used in ErrorInfo payloads: the
// winerror.h symbol for named codes, "WIN32_ERROR" otherwise.
func ReasonOf(c uint32) string {
	if n, ok := code.Name(c); ok {
		return n
	}
	return "WIN32_ERROR"
}
