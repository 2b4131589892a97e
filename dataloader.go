package softmaxgo

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const Float32ByteLen = 4

// ValueLoader reads a little-endian float32 file as rows of width logits.
type ValueLoader struct {
	width           int
	currentPosition int
	numRows         int
	data            []float32
}

func NewValueLoader(filename string, width int) (*ValueLoader, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	fileInfo, err := file.Stat()
	if err != nil {
		return nil, err
	}
	return newValueLoader(file, width, int(fileInfo.Size()))
}

func newValueLoader(r io.Reader, width, size int) (*ValueLoader, error) {
	if width <= 0 {
		return nil, fmt.Errorf("row width %d: %w", width, ErrInvalidArgument)
	}
	if size%Float32ByteLen != 0 {
		return nil, fmt.Errorf("file size %d is not a multiple of %d bytes: %w", size, Float32ByteLen, ErrInvalidArgument)
	}
	n := size / Float32ByteLen
	if n < width || n%width != 0 {
		return nil, fmt.Errorf("%d values do not fill rows of width %d: %w", n, width, ErrInvalidArgument)
	}
	loader := &ValueLoader{
		width:   width,
		numRows: n / width,
		data:    make([]float32, n),
	}
	if err := binary.Read(r, binary.LittleEndian, loader.data); err != nil {
		return nil, fmt.Errorf("failed to read values: %w", err)
	}
	return loader, nil
}

func (loader *ValueLoader) Width() int { return loader.width }

func (loader *ValueLoader) NumRows() int { return loader.numRows }

// Rows returns every row as one row-major slice.
func (loader *ValueLoader) Rows() []float32 {
	return loader.data
}

func (loader *ValueLoader) Reset() {
	loader.currentPosition = 0
}

// NextRow returns the next row, starting over once every row has been read.
func (loader *ValueLoader) NextRow() []float32 {
	if loader.currentPosition+loader.width > len(loader.data) {
		loader.Reset()
	}
	row := loader.data[loader.currentPosition : loader.currentPosition+loader.width]
	loader.currentPosition += loader.width
	return row
}

// ParseValues parses numbers separated by commas or whitespace, spread over
// any number of arguments.
func ParseValues(args []string) ([]float64, error) {
	var values []float64
	for _, arg := range args {
		fields := strings.FieldsFunc(arg, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("parse value %q: %w", f, ErrInvalidArgument)
			}
			values = append(values, v)
		}
	}
	return values, nil
}
