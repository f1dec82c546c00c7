package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/pprof"
)

// profileCPU records a CPU profile to path while fn runs. Startup and
// teardown stay out of the profile. fn's error is returned alongside any
// failure to finish the profile.
func profileCPU(path string, fn func() error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return fmt.Errorf("starting cpu profile: %w", err)
	}

	runErr := fn()
	pprof.StopCPUProfile()

	info, statErr := f.Stat()
	if err := f.Close(); err != nil {
		return errors.Join(runErr, fmt.Errorf("closing cpu profile: %w", err))
	}
	if statErr == nil {
		InfoLogger.Printf("CPU profile written to %s (%d bytes)", path, info.Size())
	}
	return runErr
}
