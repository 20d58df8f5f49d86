package video

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// converter is the implementation of the Converter interface.
type converter struct {
	workers int
	pool    worker.DynamicWorkerPool

	taskID int
}

// Converter turns NV12 frames into packed RGBA bytes on the CPU. This is the
// fallback path for targets without a GPU surface; it applies the same affine
// conversion as the fragment shader, with nearest chroma addressing in place
// of the sampler's bilinear upsampling.
type Converter interface {
	// ConvertRGBA converts a frame into dst as packed RGBA, 4 bytes per
	// pixel in row-major order. Rows are processed in parallel bands across
	// the converter's worker pool. Output components are clamped to [0, 255]
	// at the byte-conversion boundary; the affine math itself is unclamped.
	//
	// Parameters:
	//   - f: the NV12 frame to convert
	//   - m: the conversion matrix to apply
	//   - dst: the destination buffer, at least Width*Height*4 bytes
	//
	// Returns:
	//   - error: an error if the frame is invalid or dst is too small
	ConvertRGBA(f *Frame, m ConversionMatrix, dst []byte) error
}

var _ Converter = &converter{}

// NewConverter creates a Converter with the provided options. The worker pool
// is sized to NumCPU-1 by default; workers are reused across frames so there
// is no per-frame goroutine spawn overhead.
//
// Parameters:
//   - options: functional options for converter configuration
//
// Returns:
//   - Converter: the configured converter
func NewConverter(options ...ConverterOption) Converter {
	c := &converter{
		workers: max(runtime.NumCPU()-1, 1),
	}
	for _, opt := range options {
		opt(c)
	}
	c.pool = worker.NewDynamicWorkerPool(c.workers, 256, 1*time.Second)
	return c
}

// ConverterOption is a functional option used to configure a Converter during construction.
type ConverterOption func(*converter)

// WithWorkers sets the number of worker goroutines used for row-band conversion.
// Values below 1 are clamped to 1.
//
// Parameters:
//   - n: the number of conversion workers
//
// Returns:
//   - ConverterOption: option function to apply
func WithWorkers(n int) ConverterOption {
	return func(c *converter) {
		c.workers = max(n, 1)
	}
}

func (c *converter) ConvertRGBA(f *Frame, m ConversionMatrix, dst []byte) error {
	if err := f.Validate(); err != nil {
		return fmt.Errorf("cannot convert frame: %w", err)
	}
	if need := f.Width * f.Height * 4; len(dst) < need {
		return fmt.Errorf("destination holds %d bytes, need %d", len(dst), need)
	}

	// Split the frame into even-height row bands, two rows per band minimum
	// so each band owns whole 2x2 chroma blocks.
	bands := c.workers
	if bands > f.Height/2 {
		bands = f.Height / 2
	}
	rowsPerBand := (f.Height/2 + bands - 1) / bands * 2

	// A WaitGroup provides per-frame barrier sync since pool.Wait() blocks
	// until workers idle-exit which is unsuitable for frame-rate workloads.
	var wg sync.WaitGroup
	for start := 0; start < f.Height; start += rowsPerBand {
		end := min(start+rowsPerBand, f.Height)
		wg.Add(1)
		rowStart, rowEnd := start, end
		c.taskID++
		c.pool.SubmitTask(worker.Task{
			ID: c.taskID,
			Do: func() (any, error) {
				defer wg.Done()
				convertRows(f, m, dst, rowStart, rowEnd)
				return nil, nil
			},
		})
	}
	wg.Wait()

	return nil
}

// convertRows converts luma rows [rowStart, rowEnd) of the frame into dst.
// Chroma is addressed nearest: each 2x2 luma block reads the single UV pair
// covering it.
func convertRows(f *Frame, m ConversionMatrix, dst []byte, rowStart, rowEnd int) {
	const inv255 = float32(1.0 / 255.0)

	for row := rowStart; row < rowEnd; row++ {
		yRow := f.Y[row*f.YStride:]
		uvRow := f.UV[(row/2)*f.UVStride:]
		out := dst[row*f.Width*4:]

		for col := 0; col < f.Width; col++ {
			y := float32(yRow[col]) * inv255
			u := float32(uvRow[(col/2)*2]) * inv255
			v := float32(uvRow[(col/2)*2+1]) * inv255

			r, g, b := m.Convert(y, u, v)

			out[col*4] = clampByte(r)
			out[col*4+1] = clampByte(g)
			out[col*4+2] = clampByte(b)
			out[col*4+3] = 255
		}
	}
}

// clampByte converts a normalized component to an 8-bit value, clamping
// out-of-gamut results at the byte boundary.
func clampByte(v float32) byte {
	scaled := v*255.0 + 0.5
	if scaled <= 0 {
		return 0
	}
	if scaled >= 255 {
		return 255
	}
	return byte(scaled)
}
