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

package winerr

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// msgBufLen is the capacity, in UTF-16 code units, of the destination buffer
// handed to the host formatter on each lookup. The longest message in the
// known system catalogs needs 419 units; message length is unbounded in
// principle, so analogous buffers elsewhere should be sized generously too.
const msgBufLen = 420

// catalog is the narrow view of the host error-reporting facility that the
// rendering path depends on. Keeping it this small lets tests script both
// the message table and the last-error slot without touching the OS.
type catalog interface {
	// LastError reads the calling thread's last-error slot.
	LastError() uint32

	// FormatMessage renders the message registered for code into buf and
	// returns the number of UTF-16 units written, or zero when the code has
	// no registered message or the lookup failed. A failed lookup leaves its
	// own error code in the last-error slot.
	FormatMessage(code uint32, buf []uint16) uint32
}

// sysCatalog is the live host facility. Tests swap in scripted fakes.
var sysCatalog catalog = hostCatalog{}

// formatText looks up the message registered for code. The reported length
// is never trusted beyond the buffer's declared capacity. Invalid UTF-16
// sequences decode to U+FFFD rather than failing.
func formatText(cat catalog, code uint32) (string, bool) {
	var buf [msgBufLen]uint16
	n := cat.FormatMessage(code, buf[:])
	if n == 0 {
		return "", false
	}
	if n > msgBufLen {
		n = msgBufLen
	}
	return string(utf16.Decode(buf[:n])), true
}

// render produces the display text for code per the String contract: the
// registered message with outer whitespace trimmed, or a fallback built from
// the formatter's own error. The secondary lookup is attempted exactly once,
// so rendering always terminates.
func render(cat catalog, code uint32) string {
	if s, ok := formatText(cat, code); ok {
		return strings.TrimSpace(s)
	}
	// No registered message. The failed lookup recorded its own error in
	// the last-error slot; report that code, with its message when it has
	// one.
	sec := cat.LastError()
	if s, ok := formatText(cat, sec); ok {
		return fmt.Sprintf(
			"Error code %d (could not format due to internal error: %d - %s)",
			code, sec, strings.TrimSpace(s),
		)
	}
	return fmt.Sprintf(
		"Error code %d (could not format due to internal error code: %d)",
		code, sec,
	)
}
