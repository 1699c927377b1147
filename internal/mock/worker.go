package mock

import (
	"context"
	"io"
	"os"
	"time"
)

// FrameExtractor implements frame extraction for tests. When Err is nil it
// writes Frame (or a dummy byte when Frame is empty) to the output path so
// callers can read the result back.
type FrameExtractor struct {
	Frame []byte
	Err   error

	Called     bool
	InputPath  string
	OutputPath string
}

func (m *FrameExtractor) ExtractFrame(ctx context.Context, inputPath, outputPath string) error {
	m.Called = true
	m.InputPath = inputPath
	m.OutputPath = outputPath
	if m.Err != nil {
		return m.Err
	}
	data := m.Frame
	if len(data) == 0 {
		data = []byte{0x0}
	}
	return os.WriteFile(outputPath, data, 0o600)
}

// AdvisoryLock implements the distributed lock for tests.
type AdvisoryLock struct {
	AcquireOut bool
	AcquireErr error
	ReleaseErr error

	AcquireCalled bool
	ReleaseCalled bool
	Key           string
	TTL           time.Duration
}

func (m *AdvisoryLock) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	m.AcquireCalled = true
	m.Key = key
	m.TTL = ttl
	if m.AcquireErr != nil {
		return false, m.AcquireErr
	}
	return m.AcquireOut, nil
}

func (m *AdvisoryLock) Release(ctx context.Context, key string) error {
	m.ReleaseCalled = true
	return m.ReleaseErr
}

// Optimiser implements file optimisation for tests.
type Optimiser struct {
	CompressOut []byte
	CompressErr error
	PDFErr      error

	CompressCalled bool
	PDFCalled      bool
	PDFInPath      string
	PDFOutPath     string
}

func (m *Optimiser) CompressImage(r io.Reader) ([]byte, error) {
	m.CompressCalled = true
	if m.CompressErr != nil {
		return nil, m.CompressErr
	}
	if m.CompressOut != nil {
		return m.CompressOut, nil
	}
	return []byte("webp"), nil
}

func (m *Optimiser) OptimisePDF(inPath, outPath string) error {
	m.PDFCalled = true
	m.PDFInPath = inPath
	m.PDFOutPath = outPath
	if m.PDFErr != nil {
		return m.PDFErr
	}
	in, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, in, 0o600)
}
