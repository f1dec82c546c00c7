//go:build opencl

package main

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

// openCLDisplacer evaluates the displacement kernel on an OpenCL device.
// Base positions are uploaded once; each frame only sets time and amplitude.
type openCLDisplacer struct {
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	kernel     *cl.Kernel
	baseBuf    *cl.MemObject
	outBuf     *cl.MemObject
	count      int
	deviceName string
}

// pickOpenCLDevice prefers the first GPU and falls back to the first CPU device.
func pickOpenCLDevice() (*cl.Device, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available; ensure a vendor driver is installed and detected by `clinfo`")
	}
	for _, kind := range []cl.DeviceType{cl.DeviceTypeGPU, cl.DeviceTypeCPU} {
		for _, p := range platforms {
			devices, derr := p.GetDevices(kind)
			if derr != nil && derr != cl.ErrDeviceNotFound {
				continue
			}
			if len(devices) > 0 {
				return devices[0], nil
			}
		}
	}
	return nil, errors.New("no suitable OpenCL devices found")
}

func newOpenCLDisplacer(base []float32) (displacementBackend, error) {
	if len(base) == 0 || len(base)%3 != 0 {
		return nil, fmt.Errorf("invalid base buffer length %d", len(base))
	}
	device, err := pickOpenCLDevice()
	if err != nil {
		return nil, err
	}
	s := &openCLDisplacer{count: len(base) / 3, deviceName: device.Name()}

	s.context, err = cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	s.queue, err = s.context.CreateCommandQueue(device, 0)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	s.program, err = s.context.CreateProgramWithSource([]string{displaceKernelSource()})
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := s.program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		s.Close()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	s.kernel, err = s.program.CreateKernel(displaceKernelName)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}
	byteSize := len(base) * int(unsafe.Sizeof(float32(0)))
	s.baseBuf, err = s.context.CreateEmptyBuffer(cl.MemReadOnly, byteSize)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("allocating base buffer: %w", err)
	}
	s.outBuf, err = s.context.CreateEmptyBuffer(cl.MemWriteOnly, byteSize)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("allocating output buffer: %w", err)
	}
	if _, err := s.queue.EnqueueWriteBufferFloat32(s.baseBuf, true, 0, base, nil); err != nil {
		s.Close()
		return nil, fmt.Errorf("writing base buffer: %w", err)
	}
	return s, nil
}

func (s *openCLDisplacer) Displace(in pipelineSnapshot, base, out []float32) error {
	if len(base) != s.count*3 || len(out) != s.count*3 {
		return fmt.Errorf("unexpected buffer size: base %d, out %d, vertices %d", len(base), len(out), s.count)
	}
	if err := s.kernel.SetArgs(
		int32(s.count),
		in.time,
		in.amplitude,
		s.baseBuf,
		s.outBuf,
	); err != nil {
		return fmt.Errorf("setting kernel arguments: %w", err)
	}
	if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, []int{s.count}, nil, nil); err != nil {
		return fmt.Errorf("enqueueing kernel: %w", err)
	}
	if _, err := s.queue.EnqueueReadBufferFloat32(s.outBuf, true, 0, out, nil); err != nil {
		return fmt.Errorf("reading output buffer: %w", err)
	}
	return nil
}

func (s *openCLDisplacer) Name() string {
	return "opencl (" + s.deviceName + ")"
}

func (s *openCLDisplacer) Close() {
	if s.outBuf != nil {
		s.outBuf.Release()
		s.outBuf = nil
	}
	if s.baseBuf != nil {
		s.baseBuf.Release()
		s.baseBuf = nil
	}
	if s.kernel != nil {
		s.kernel.Release()
		s.kernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
}
