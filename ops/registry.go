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

package ops

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/samber/lo"

	"github.com/ajroetker/go-convolve/raster"
)

// ErrUnknownOperation is returned when an operation name or flag does not
// match any registered operation.
var ErrUnknownOperation = errors.New("unknown operation")

// Operation is a named, registered image operation.
type Operation struct {
	// Name is the long name used by --op.
	Name string
	// Flag is the single-letter command-line shorthand.
	Flag string
	// Description is a one-line summary for usage output.
	Description string

	run func(*Processor, *raster.Image) *raster.Image
}

// Run applies the operation to img using p.
func (op Operation) Run(p *Processor, img *raster.Image) *raster.Image {
	start := time.Now()
	out := op.run(p, img)
	glog.V(1).Infof("%s: %dx%d %s -> %dx%d in %s",
		op.Name, img.Width(), img.Height(), img.ColorType(), out.Width(), out.Height(), time.Since(start))
	return out
}

// Operations lists every registered operation in usage order.
var Operations = []Operation{
	{Name: "identity", Flag: "i", Description: "apply the identity kernel (no change)", run: (*Processor).Identity},
	{Name: "blur", Flag: "g", Description: "3x3 gaussian blur", run: (*Processor).SimpleBlur},
	{Name: "gaussian", Flag: "G", Description: "separable 7-tap gaussian blur (horizontal then vertical)", run: (*Processor).ComplexBlur},
	{Name: "sharpen", Flag: "s", Description: "subtract the laplacian from the image", run: (*Processor).Sharpen},
	{Name: "downscale", Flag: "d", Description: "keep every other row and column", run: (*Processor).Downscale},
}

// Names returns the names of all registered operations.
func Names() []string {
	return lo.Map(Operations, func(op Operation, _ int) string {
		return op.Name
	})
}

// Lookup finds an operation by name (case-insensitive) or by its exact
// single-letter flag.
func Lookup(name string) (Operation, error) {
	op, ok := lo.Find(Operations, func(op Operation) bool {
		return strings.EqualFold(op.Name, name) || op.Flag == name
	})
	if !ok {
		return Operation{}, fmt.Errorf("%w %q (known: %s)", ErrUnknownOperation, name, strings.Join(Names(), ", "))
	}
	return op, nil
}

// Pipeline is an ordered list of operations applied one after another.
type Pipeline []Operation

// ParsePipeline resolves each name with Lookup.
func ParsePipeline(names []string) (Pipeline, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: empty operation list", ErrUnknownOperation)
	}
	pipeline := make(Pipeline, 0, len(names))
	for _, name := range names {
		op, err := Lookup(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		pipeline = append(pipeline, op)
	}
	return pipeline, nil
}

// Run applies every operation in order, feeding each result to the next.
func (pl Pipeline) Run(p *Processor, img *raster.Image) *raster.Image {
	for _, op := range pl {
		img = op.Run(p, img)
	}
	return img
}

// String returns the operation names joined by commas.
func (pl Pipeline) String() string {
	return strings.Join(lo.Map(pl, func(op Operation, _ int) string {
		return op.Name
	}), ",")
}
