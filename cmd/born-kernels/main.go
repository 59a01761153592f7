// Package main provides born-kernels, a CLI that prints generated WGSL kernels.
//
// Usage:
//
//	born-kernels -shape=2,3,4 -axes=0,2 reverse
//	born-kernels -shape=2,3,4 -axes=0,2 -summary reverse
//	born-kernels version
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/kernels/internal/kernel"
	"github.com/born-ml/kernels/internal/tensor"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const version = "v0.0.1-dev"

var (
	flagShape = flag.String("shape", "", "Comma-separated dimensions of the input tensor, e.g. 2,3,4.")
	flagAxes  = flag.String("axes", "", "Comma-separated axes to reverse, e.g. 0,2. Empty reverses nothing.")
	flagDType = flag.String("dtype", "float32", "Element type: float32, int32 or uint32.")
	flagMaxWG = flag.Int("max_workgroups", kernel.DefaultMaxWorkgroupsPerDimension,
		"Maximum number of workgroups per dispatch dimension; larger grids are folded into y and z.")
	flagSummary = flag.Bool("summary", false, "Print a summary table of the kernel descriptor instead of its WGSL source.")
)

func main() {
	klog.InitFlags(nil)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] reverse|version\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		klog.Errorf("Expected exactly one command (reverse or version). See 'born-kernels -help'.")
		os.Exit(1)
	}

	switch args[0] {
	case "version":
		fmt.Printf("born-kernels %s\n", version)
	case "reverse":
		program, err := buildReverse(*flagShape, *flagAxes, *flagDType, *flagMaxWG)
		if err != nil {
			klog.Errorf("%+v", err)
			os.Exit(1)
		}
		if *flagSummary {
			fmt.Println(summary(program))
		} else {
			fmt.Print(program.UserCode())
		}
	default:
		klog.Errorf("Unknown command %q. See 'born-kernels -help'.", args[0])
		os.Exit(1)
	}
}

// buildReverse parses the flag values and constructs the reverse program.
func buildReverse(shapeText, axesText, dtypeName string, maxWorkgroups int) (*kernel.ReverseProgram, error) {
	shape, err := tensor.ParseShape(shapeText)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse -shape=%q", shapeText)
	}
	axes, err := parseAxes(axesText)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse -axes=%q", axesText)
	}
	dtype, err := tensor.ParseDataType(dtypeName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse -dtype=%q", dtypeName)
	}

	program, err := kernel.NewReverseWithConfig(shape, axes, kernel.Config{
		DType:  dtype,
		Limits: kernel.Limits{MaxWorkgroupsPerDimension: maxWorkgroups},
	})
	if err != nil {
		return nil, errors.WithMessagef(err, "reverse of shape %v along axes %v", shape, axes)
	}
	return program, nil
}

func parseAxes(text string) ([]int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	fields := strings.Split(text, ",")
	axes := make([]int, len(fields))
	for i, field := range fields {
		axis, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, errors.Errorf("invalid axis %q", field)
		}
		axes[i] = axis
	}
	return axes, nil
}
