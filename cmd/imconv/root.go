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

package main

import (
	goflag "flag"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-convolve/imageio"
	"github.com/ajroetker/go-convolve/kernel"
	"github.com/ajroetker/go-convolve/ops"
	"github.com/ajroetker/go-convolve/workerpool"
)

// app holds the parsed command line.
type app struct {
	selected map[string]*bool
	pipeline []string
	workers  int

	// started is set once flags and arguments are valid and processing begins.
	started bool
}

func (a *app) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "imconv [-i|-g|-G|-s|-d|--op name,...] INPUT OUTPUT",
		Short: "Apply convolution kernels to an image, channel by channel",
		Long: "imconv splits an RGB or RGBA image into channel planes, runs the selected\n" +
			"operation on every plane and writes the recombined image.",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(args[0], args[1])
		},
	}

	flags := cmd.Flags()
	groups := make([]string, 0, len(ops.Operations)+1)
	a.selected = make(map[string]*bool, len(ops.Operations))
	for _, op := range ops.Operations {
		a.selected[op.Name] = flags.BoolP(op.Name, op.Flag, false, op.Description)
		groups = append(groups, op.Name)
	}
	flags.StringSliceVar(&a.pipeline, "op", nil, "comma-separated operations applied in order (see 'imconv ops')")
	flags.IntVarP(&a.workers, "workers", "w", workersFromEnv(),
		"worker goroutines (0 = GOMAXPROCS, 1 = sequential); default from "+workersEnv)
	groups = append(groups, "op")
	cmd.MarkFlagsMutuallyExclusive(groups...)
	cmd.MarkFlagsOneRequired(groups...)

	// glog registers -v, -logtostderr, ... on the standard flag set.
	cmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	cmd.AddCommand(newOpsCmd())
	return cmd
}

// resolvePipeline returns the operations selected on the command line.
func (a *app) resolvePipeline() (ops.Pipeline, error) {
	if len(a.pipeline) > 0 {
		return ops.ParsePipeline(a.pipeline)
	}
	for _, op := range ops.Operations {
		if *a.selected[op.Name] {
			return ops.Pipeline{op}, nil
		}
	}
	return nil, fmt.Errorf("%w: none selected", ops.ErrUnknownOperation)
}

func (a *app) run(input, output string) error {
	pipeline, err := a.resolvePipeline()
	if err != nil {
		return err
	}
	a.started = true

	start := time.Now()
	img, err := imageio.ReadFile(input)
	if err != nil {
		return err
	}

	var pool *workerpool.Pool
	if a.workers != 1 {
		pool = workerpool.New(a.workers)
		defer pool.Close()
	}
	result := pipeline.Run(ops.NewProcessor(pool), img)

	if err := imageio.WriteFile(output, result); err != nil {
		return err
	}
	glog.V(1).Infof("%s -> %s: %s in %s", input, output, pipeline, time.Since(start))
	return nil
}

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List operations and catalog kernels",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "OPERATION\tFLAG\tDESCRIPTION")
			for _, op := range ops.Operations {
				fmt.Fprintf(w, "%s\t-%s\t%s\n", op.Name, op.Flag, op.Description)
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, "KERNEL\tSIZE\tSUM")
			for _, name := range kernel.Names() {
				k, _ := kernel.Lookup(name)
				fmt.Fprintf(w, "%s\t%dx%d\t%g\n", k.Name(), k.Width(), k.Height(), k.Sum())
			}
			w.Flush()
		},
	}
}
