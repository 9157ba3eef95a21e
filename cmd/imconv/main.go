// Copyright 2026 go-convolve Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command imconv applies convolution-based operations to an image file.
//
// Usage:
//
//	imconv -g input.png output.png               # 3x3 gaussian blur
//	imconv -G input.png output.png               # separable 7-tap gaussian
//	imconv -s input.png output.png               # sharpen
//	imconv -d input.png output.png               # downscale by 2
//	imconv -i input.png output.png               # identity
//	imconv --op blur,downscale in.tiff out.icv   # several operations in order
//	imconv ops                                   # list operations and kernels
//
// Input and output formats follow the file extension: .png, .bmp, .tif/.tiff
// and .icv (raw zstd-compressed pixels). Only 8-bit RGB and RGBA images are
// accepted.
//
// Exit codes: 0 success, 1 other failure, 2 usage or unknown operation,
// 3 input unreadable, 4 unsupported format, 5 output unwritable.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"

	"github.com/ajroetker/go-convolve/imageio"
	"github.com/ajroetker/go-convolve/ops"
)

const (
	exitOK = iota
	exitFailure
	exitUsage
	exitInputUnreadable
	exitUnsupportedFormat
	exitOutputUnwritable
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	defer glog.Flush()

	a := &app{}
	cmd := a.newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	code := exitCode(err, a.started)
	if code == exitUsage {
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.Name())
	}
	return code
}

// exitCode maps an error to an exit code. Errors raised before the command
// started running are flag or argument problems.
func exitCode(err error, started bool) int {
	switch {
	case errors.Is(err, ops.ErrUnknownOperation):
		return exitUsage
	case errors.Is(err, imageio.ErrUnsupportedFormat):
		return exitUnsupportedFormat
	case errors.Is(err, imageio.ErrInputUnreadable):
		return exitInputUnreadable
	case errors.Is(err, imageio.ErrOutputUnwritable):
		return exitOutputUnwritable
	case !started:
		return exitUsage
	default:
		return exitFailure
	}
}
