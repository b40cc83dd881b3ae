package plot

import (
	"bufio"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jbeda/geom"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/matzehuels/chaosgame/pkg/errors"
)

// Format is an output image encoding.
type Format string

// Supported output formats.
const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// jpegQuality keeps single-pixel marks visible through compression.
const jpegQuality = 95

var extFormats = map[string]Format{
	".png":  FormatPNG,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
}

// FormatFromPath infers the output format from the file extension.
// A path without an extension is written as PNG.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return FormatPNG, nil
	}
	if f, ok := extFormats[ext]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"unsupported image extension %q (must be .png, .jpg, .jpeg, .bmp, .tif or .tiff)", ext)
}

// Encode renders points and writes the image to w in the given format.
func (p *Plot) Encode(w io.Writer, format Format, points []geom.Coord) error {
	dc, err := p.Draw(points)
	if err != nil {
		return err
	}
	defer dc.Close()

	switch format {
	case FormatPNG, "":
		err = png.Encode(w, dc.Image())
	case FormatJPEG:
		err = jpeg.Encode(w, dc.Image(), &jpeg.Options{Quality: jpegQuality})
	case FormatBMP:
		err = bmp.Encode(w, dc.Image())
	case FormatTIFF:
		err = tiff.Encode(w, dc.Image(), &tiff.Options{Compression: tiff.Deflate})
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encode %s", format)
	}
	return nil
}

// WriteFile renders points into the file at path, creating or truncating it.
// The format follows the extension (see FormatFromPath). Failures to create,
// encode, flush or close the file are reported as IO_ERROR; a failed write
// may leave an incomplete file behind.
func (p *Plot) WriteFile(path string, points []geom.Coord) (err error) {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeIO, cerr, "close %s", path)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := p.Encode(bw, format, points); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "flush %s", path)
	}
	return nil
}
