package camera

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func newTestCamera(t *testing.T, width, height int) *Camera {
	t.Helper()
	c, err := New(width, height, DefaultDepthOffset, WithLabel(false))
	if err != nil {
		t.Fatalf("New(%d, %d): %v", width, height, err)
	}
	return c
}

func snapshot(c *Camera) string {
	var b strings.Builder
	for y := 0; y < c.Height(); y++ {
		b.WriteString(c.Row(y))
	}
	return b.String()
}

func countFilled(c *Camera) int {
	n := 0
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.Cell(x, y) != Blank {
				n++
			}
		}
	}
	return n
}

func TestNewInvalidSize(t *testing.T) {
	for _, sz := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		if _, err := New(sz[0], sz[1], 0); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("New(%d, %d) err = %v, want ErrInvalidArgument", sz[0], sz[1], err)
		}
	}
}

func TestAccessorsAndReinit(t *testing.T) {
	c := newTestCamera(t, 40, 30)
	if c.Width() != 40 || c.Height() != 30 || c.DepthOffset() != DefaultDepthOffset {
		t.Fatalf("got %dx%d depth %d", c.Width(), c.Height(), c.DepthOffset())
	}
	c.SetPixelInt(0, 0, '#')
	if err := c.Init(8, 4, 7); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if c.Width() != 8 || c.Height() != 4 || c.DepthOffset() != 7 {
		t.Fatalf("after Init got %dx%d depth %d", c.Width(), c.Height(), c.DepthOffset())
	}
	if countFilled(c) != 0 {
		t.Fatalf("Init kept old content")
	}
}

func TestUninitialized(t *testing.T) {
	var c Camera
	c.SetPixel(0, 0, 'x')
	c.SetText(0, 0, "hello")
	c.Clear()
	if err := c.Flush(&bytes.Buffer{}); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Flush err = %v, want ErrNotInitialized", err)
	}
}

func TestSetPixelCentredYUp(t *testing.T) {
	c := newTestCamera(t, 10, 10)
	c.SetPixelInt(0, 0, 'o')
	c.SetPixelInt(2, 3, 'a')
	c.SetScreenPixel(0, 0, 's')
	if got := c.Cell(5, 5); got != 'o' {
		t.Fatalf("origin cell = %q", got)
	}
	if got := c.Cell(7, 2); got != 'a' {
		t.Fatalf("(2,3) cell = %q", got)
	}
	if got := c.Cell(0, 0); got != 's' {
		t.Fatalf("screen (0,0) cell = %q", got)
	}
}

func TestSetPixelRounding(t *testing.T) {
	tests := []struct {
		x, y   float64
		sx, sy int
	}{
		{0.5, 0.5, 6, 4},
		{-0.5, -0.5, 4, 6},
		{1.4, -1.6, 6, 7},
		{-2.5, 2.49, 2, 3},
	}
	for _, tc := range tests {
		c := newTestCamera(t, 10, 10)
		c.SetPixel(tc.x, tc.y, '*')
		if got := c.Cell(tc.sx, tc.sy); got != '*' {
			t.Errorf("SetPixel(%v, %v) missing at screen (%d, %d)", tc.x, tc.y, tc.sx, tc.sy)
		}
		if n := countFilled(c); n != 1 {
			t.Errorf("SetPixel(%v, %v) wrote %d cells", tc.x, tc.y, n)
		}
	}
}

func TestSetPixelOutOfBounds(t *testing.T) {
	c := newTestCamera(t, 10, 6)
	c.SetText(0, 0, "0123456789abcdefghij")
	before := snapshot(c)

	for _, p := range [][2]int{{5, 0}, {-6, 0}, {0, 4}, {0, -3}, {100, 100}, {-100, -100}} {
		c.SetPixelInt(p[0], p[1], '!')
	}
	c.SetPixel(5.2, 0, '!')
	c.SetPixel(-5.6, 0, '!')
	for _, p := range [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 6}, {10, 6}} {
		c.SetScreenPixel(p[0], p[1], '!')
	}

	if after := snapshot(c); after != before {
		t.Fatalf("out-of-bounds write changed the frame:\n%q\n%q", before, after)
	}
	// width/2 - 5 is the leftmost column, still inside
	c.SetPixelInt(-5, 0, '!')
	if c.Cell(0, 3) != '!' {
		t.Fatalf("left edge write missing")
	}
}

func TestClear(t *testing.T) {
	c := newTestCamera(t, 12, 7)
	for y := 0; y < 7; y++ {
		c.SetText(0, y, strings.Repeat("#", 12))
	}
	c.Clear()
	for y := 0; y < 7; y++ {
		for x := 0; x < 12; x++ {
			if c.Cell(x, y) != Blank {
				t.Fatalf("cell (%d, %d) = %q after Clear", x, y, c.Cell(x, y))
			}
		}
	}
}

func TestSetTextWrapsAndClips(t *testing.T) {
	c := newTestCamera(t, 4, 2)
	c.SetText(2, 0, "abcdefgh")
	if got := c.Row(0); got != "  ab" {
		t.Fatalf("row 0 = %q", got)
	}
	if got := c.Row(1); got != "cdef" {
		t.Fatalf("row 1 = %q", got)
	}
	c.SetText(0, 1, "面")
	if got := c.Cell(0, 1); got != '面' {
		t.Fatalf("rune cell = %q", got)
	}
}

func TestFlushFormat(t *testing.T) {
	c := newTestCamera(t, 3, 2)
	c.SetScreenPixel(0, 0, 'a')
	c.SetScreenPixel(2, 1, 'b')

	var buf bytes.Buffer
	if err := c.Flush(&buf); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got, want := buf.String(), "a  \n  b\n"; got != want {
		t.Fatalf("Flush = %q, want %q", got, want)
	}
}

func TestSetAxes(t *testing.T) {
	c := newTestCamera(t, 10, 10)
	c.SetAxes()
	checks := []struct {
		x, y int
		want rune
	}{
		{5, 5, '+'},
		{0, 5, '-'},
		{5, 9, '|'},
		{9, 5, '>'},
		{9, 6, 'X'},
		{5, 1, '^'},
		{4, 1, 'Y'},
	}
	for _, ck := range checks {
		if got := c.Cell(ck.x, ck.y); got != ck.want {
			t.Errorf("cell (%d, %d) = %q, want %q", ck.x, ck.y, got, ck.want)
		}
	}
}
