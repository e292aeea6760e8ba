package session

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDecoder serves images from memory keyed by path.
type fakeDecoder map[string]*image.NRGBA

func (f fakeDecoder) Decode(path string) (*image.NRGBA, error) {
	img, ok := f[path]
	if !ok {
		return nil, errors.New("unsupported format")
	}
	return img, nil
}

func solid(w, h int, c color.Color) *image.NRGBA {
	return imaging.New(w, h, c)
}

func TestSession_StartsEmpty(t *testing.T) {
	s := New(fakeDecoder{})

	assert.IsType(t, Empty{}, s.State())
	_, ok := s.Current()
	assert.False(t, ok)
	assert.Zero(t, s.Log().Len())
	assert.NotEmpty(t, s.ID())
}

func TestSession_Open(t *testing.T) {
	red := solid(2, 2, color.NRGBA{255, 0, 0, 255})
	blue := solid(3, 1, color.NRGBA{0, 0, 255, 255})
	s := New(fakeDecoder{"/a/red.png": red, "/b/blue.jpg": blue})

	t.Run("FirstOpen", func(t *testing.T) {
		li, err := s.Open("/a/red.png")
		require.NoError(t, err)
		assert.Equal(t, "red.png", li.Name())

		st, ok := s.State().(Loaded)
		require.True(t, ok)
		assert.Same(t, red, st.Image.Pixels)
		assert.Equal(t, []string{OpenedMessage}, s.Log().Lines())
	})

	t.Run("SecondOpenReplaces", func(t *testing.T) {
		_, err := s.Open("/b/blue.jpg")
		require.NoError(t, err)

		cur, ok := s.Current()
		require.True(t, ok)
		assert.Equal(t, "/b/blue.jpg", cur.Path)
		assert.Same(t, blue, cur.Pixels)
		assert.Equal(t, []string{OpenedMessage, OpenedMessage}, s.Log().Lines())
	})

	t.Run("FailureKeepsState", func(t *testing.T) {
		_, err := s.Open("/c/broken.png")
		assert.Error(t, err)

		cur, ok := s.Current()
		require.True(t, ok)
		assert.Equal(t, "/b/blue.jpg", cur.Path)
		assert.Equal(t, 2, s.Log().Len())
	})

	t.Run("CancelKeepsState", func(t *testing.T) {
		_, err := s.Open("")
		assert.ErrorIs(t, err, ErrNoPath)
		assert.Equal(t, 2, s.Log().Len())
	})
}

func TestSession_FailedFirstOpenStaysEmpty(t *testing.T) {
	s := New(fakeDecoder{})
	_, err := s.Open("/nowhere.png")
	assert.Error(t, err)
	assert.IsType(t, Empty{}, s.State())
	assert.Zero(t, s.Log().Len())
}

func TestLog(t *testing.T) {
	var l Log
	var seen [][]string
	l.OnAppend(func(lines []string) { seen = append(seen, lines) })

	l.Append("one")
	l.Append()
	l.Append("two", "three")

	assert.Equal(t, []string{"one", "two", "three"}, l.Lines())
	assert.Equal(t, [][]string{{"one"}, {"two", "three"}}, seen)

	// Callers cannot rewrite history through the returned slice.
	lines := l.Lines()
	lines[0] = "changed"
	assert.Equal(t, "one", l.Lines()[0])
}

func TestFileDecoder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "white.png")
	require.NoError(t, imaging.Save(solid(4, 3, color.White), path))

	img, err := FileDecoder{}.Decode(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, img.NRGBAAt(1, 1))

	_, err = FileDecoder{}.Decode(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

func TestToNRGBA(t *testing.T) {
	n := solid(2, 2, color.White)
	assert.Same(t, n, ToNRGBA(n))

	sub := n.SubImage(image.Rect(1, 1, 2, 2))
	out := ToNRGBA(sub)
	assert.Equal(t, image.Rect(0, 0, 1, 1), out.Bounds())

	gray := image.NewGray(image.Rect(0, 0, 1, 1))
	gray.SetGray(0, 0, color.Gray{Y: 9})
	assert.Equal(t, color.NRGBA{9, 9, 9, 255}, ToNRGBA(gray).NRGBAAt(0, 0))
}
