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

// Command winerr prints the system message text for Win32 error codes.
//
//	winerr 5
//	winerr 0x80070005 --hresult
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"dirpx.dev/winerr"
	"dirpx.dev/winerr/code"
)

func newRootCmd() *cobra.Command {
	var hres bool

	cmd := &cobra.Command{
		Use:   "winerr <code>...",
		Short: "Print the Windows message text for numeric error codes",
		Long: `Print the Windows message text for numeric error codes.

Codes are decimal by default; 0x-prefixed arguments are parsed as hex.
With --hresult each argument is treated as a packed HRESULT and the
embedded Win32 code is extracted first.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				e, err := parseCode(arg, hres)
				if err != nil {
					return err
				}
				name := "-"
				if n, ok := code.Name(e.Code()); ok {
					name = n
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", e.Code(), name, e)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&hres, "hresult", false, "treat arguments as packed HRESULT values")
	return cmd
}

// parseCode turns a command-line argument into an ErrorCode. Base-0 parsing
// accepts decimal and 0x-hex; HRESULTs may additionally be written as
// negative decimals, the form they take in many logs.
func parseCode(arg string, hres bool) (winerr.ErrorCode, error) {
	if hres {
		var v uint32
		if strings.HasPrefix(arg, "-") {
			signed, err := strconv.ParseInt(arg, 0, 32)
			if err != nil {
				return winerr.ErrorCode{}, fmt.Errorf("invalid hresult %q: %w", arg, err)
			}
			v = uint32(signed)
		} else {
			unsigned, err := strconv.ParseUint(arg, 0, 32)
			if err != nil {
				return winerr.ErrorCode{}, fmt.Errorf("invalid hresult %q: %w", arg, err)
			}
			v = uint32(unsigned)
		}
		return winerr.FromHRESULT(int32(v)), nil
	}

	v, err := strconv.ParseUint(arg, 0, 32)
	if err != nil {
		return winerr.ErrorCode{}, fmt.Errorf("invalid error code %q: %w", arg, err)
	}
	return winerr.WithCode(uint32(v)), nil
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
