package chart

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"gonum.org/v1/plot/vg/vgimg"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// Save writes the chart to path; the extension (.png or .webp) picks the encoder.
func (c *Chart) Save(path string, widthPx, heightPx, dpi int) error {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := encode(bw, c.canvas(widthPx, heightPx, dpi)); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("cannot write %s: %w", path, err)
	}

	c.logger.Info("chart saved", "path", path, "width", widthPx, "height", heightPx)
	return nil
}

type encoder func(w io.Writer, canvas *vgimg.Canvas) error

func encoderFor(path string) (encoder, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return encodePNG, nil
	case ".webp":
		return encodeWebP, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func encodePNG(w io.Writer, canvas *vgimg.Canvas) error {
	_, err := vgimg.PngCanvas{Canvas: canvas}.WriteTo(w)
	return err
}

func encodeWebP(w io.Writer, canvas *vgimg.Canvas) error {
	if err := nativewebp.Encode(w, canvas.Image(), nil); err != nil {
		return fmt.Errorf("WebP encode: %w", err)
	}
	return nil
}
