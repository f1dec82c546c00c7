//go:build !opencl

package main

import "errors"

func newOpenCLDisplacer(base []float32) (displacementBackend, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}
