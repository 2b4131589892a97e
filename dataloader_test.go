package softmaxgo

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeFloat32s(t *testing.T, values []float32) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, values))
	return buf.Bytes()
}

func TestValueLoader_NextRow(t *testing.T) {
	tests := []struct {
		name        string
		contents    []float32
		width       int
		wantNumRows int
		want        [][]float32
	}{
		{
			name:        "single column",
			contents:    []float32{0, 1, 2},
			width:       1,
			wantNumRows: 3,
			want:        [][]float32{{0}, {1}, {2}, {0}},
		},
		{
			name:        "rows wrap around",
			contents:    []float32{1, 2, 3, 4, 5, 6},
			width:       3,
			wantNumRows: 2,
			want:        [][]float32{{1, 2, 3}, {4, 5, 6}, {1, 2, 3}, {4, 5, 6}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := encodeFloat32s(t, tt.contents)
			loader, err := newValueLoader(bytes.NewReader(data), tt.width, len(data))
			require.NoError(t, err)
			assert.Equal(t, tt.wantNumRows, loader.NumRows())
			assert.Equal(t, tt.width, loader.Width())
			assert.Equal(t, tt.contents, loader.Rows())
			for _, want := range tt.want {
				assert.Equal(t, want, loader.NextRow())
			}
			loader.Reset()
			assert.Equal(t, tt.want[0], loader.NextRow())
		})
	}
}

func TestValueLoaderInvalid(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		width int
	}{
		{name: "zero width", data: make([]byte, 8), width: 0},
		{name: "partial float", data: make([]byte, 6), width: 1},
		{name: "partial row", data: make([]byte, 12), width: 2},
		{name: "empty", data: []byte{}, width: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newValueLoader(bytes.NewReader(tt.data), tt.width, len(tt.data))
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestNewValueLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logits.bin")
	require.NoError(t, os.WriteFile(path, encodeFloat32s(t, []float32{1, 2, 3, 1, 1, 1}), 0o644))

	loader, err := NewValueLoader(path, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, loader.NumRows())

	_, err = NewValueLoader(filepath.Join(t.TempDir(), "missing.bin"), 3)
	assert.Error(t, err)
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []float64
		wantErr bool
	}{
		{name: "separate args", args: []string{"1", "2", "3"}, want: []float64{1, 2, 3}},
		{name: "comma separated", args: []string{"1,-2.5,3e2"}, want: []float64{1, -2.5, 300}},
		{name: "mixed", args: []string{"1, 2", "3\t4"}, want: []float64{1, 2, 3, 4}},
		{name: "none", args: nil, want: nil},
		{name: "garbage", args: []string{"1", "two"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValues(tt.args)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
