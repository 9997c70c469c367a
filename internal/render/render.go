// Package render rasterizes a field snapshot into an image.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Ko-stant/spider-field/internal/protocol"
)

var (
	Background   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ClaimedFill  = color.RGBA{0x9e, 0xa7, 0xb3, 0xff}
	BorderStroke = color.RGBA{0x1f, 0x23, 0x28, 0xff}
	TrailStroke  = color.RGBA{0x24, 0x63, 0xeb, 0xff}
	SpiderFill   = color.RGBA{0x1d, 0x4e, 0xd8, 0xff}
	SnakeFill    = color.RGBA{0x16, 0xa3, 0x4a, 0xff}
)

// captionHeight is the band added below the field for the caption line.
const captionHeight = 18

// Options control the output size. Each lattice unit becomes Scale pixels
// and Margin pixels of background surround the field. Caption adds a line
// of status text below the field.
type Options struct {
	Scale   int
	Margin  int
	Caption bool
}

func DefaultOptions() Options {
	return Options{Scale: 12, Margin: 8, Caption: true}
}

var printer = message.NewPrinter(language.English)

// Caption summarizes the snapshot in one line.
func Caption(snap protocol.Snapshot) string {
	return printer.Sprintf("%s  tick %d  claimed %.1f%% of %d cells (target %.0f%%)",
		snap.Status, snap.Tick, snap.ClaimedPercent,
		int64(snap.FieldWidth)*int64(snap.FieldHeight), snap.ClaimTarget)
}

type canvas struct {
	dst  *image.RGBA
	r    *vector.Rasterizer
	opts Options
}

// Field draws snap. Claimed pieces are filled, the free region is
// outlined, and the spider, its trail and the snake are drawn on top.
func Field(snap protocol.Snapshot, opts Options) (*image.RGBA, error) {
	if opts.Scale <= 0 || opts.Margin < 0 {
		return nil, fmt.Errorf("render: invalid options %+v", opts)
	}
	if snap.FieldWidth <= 0 || snap.FieldHeight <= 0 {
		return nil, fmt.Errorf("render: empty field %dx%d", snap.FieldWidth, snap.FieldHeight)
	}

	w := int(snap.FieldWidth)*opts.Scale + 2*opts.Margin
	fieldH := int(snap.FieldHeight)*opts.Scale + 2*opts.Margin
	h := fieldH
	if opts.Caption {
		h += captionHeight
	}
	c := &canvas{
		dst:  image.NewRGBA(image.Rect(0, 0, w, h)),
		r:    vector.NewRasterizer(w, h),
		opts: opts,
	}
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	for _, p := range snap.Claimed {
		c.fillPolygon(p.Vertices, ClaimedFill)
	}

	lineWidth := max(float32(opts.Scale)/6, 1)
	c.strokeCycle(snap.Free.Vertices, lineWidth, BorderStroke)
	c.strokePath(snap.Spider.Trail, lineWidth, TrailStroke)

	c.fillDot(snap.Snake.Position, float32(opts.Scale)*0.6, SnakeFill)
	c.fillDot(snap.Spider.Position, float32(opts.Scale)*0.5, SpiderFill)

	if opts.Caption {
		d := font.Drawer{
			Dst:  c.dst,
			Src:  image.NewUniform(BorderStroke),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(opts.Margin, fieldH+captionHeight-5),
		}
		d.DrawString(Caption(snap))
	}
	return c.dst, nil
}

// EncodePNG renders snap and writes it to w as a PNG.
func EncodePNG(w io.Writer, snap protocol.Snapshot, opts Options) error {
	img, err := Field(snap, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func (c *canvas) project(p protocol.PointLite) (float32, float32) {
	s := float32(c.opts.Scale)
	m := float32(c.opts.Margin)
	return m + float32(p.X)*s, m + float32(p.Y)*s
}

func (c *canvas) paint(col color.Color) {
	c.r.Draw(c.dst, c.dst.Bounds(), image.NewUniform(col), image.Point{})
	b := c.dst.Bounds()
	c.r.Reset(b.Dx(), b.Dy())
}

func (c *canvas) fillPolygon(vertices []protocol.PointLite, col color.Color) {
	if len(vertices) < 3 {
		return
	}
	x, y := c.project(vertices[0])
	c.r.MoveTo(x, y)
	for _, v := range vertices[1:] {
		x, y = c.project(v)
		c.r.LineTo(x, y)
	}
	c.r.ClosePath()
	c.paint(col)
}

// rect adds an axis-aligned rectangle covering the segment a-b widened by
// half on every side.
func (c *canvas) rect(a, b protocol.PointLite, half float32) {
	x0, y0 := c.project(a)
	x1, y1 := c.project(b)
	x0, x1 = min(x0, x1)-half, max(x0, x1)+half
	y0, y1 = min(y0, y1)-half, max(y0, y1)+half
	c.r.MoveTo(x0, y0)
	c.r.LineTo(x1, y0)
	c.r.LineTo(x1, y1)
	c.r.LineTo(x0, y1)
	c.r.ClosePath()
}

func (c *canvas) strokePath(points []protocol.PointLite, width float32, col color.Color) {
	if len(points) < 2 {
		return
	}
	for i := 1; i < len(points); i++ {
		c.rect(points[i-1], points[i], width/2)
	}
	c.paint(col)
}

func (c *canvas) strokeCycle(points []protocol.PointLite, width float32, col color.Color) {
	if len(points) < 2 {
		return
	}
	c.strokePath(append(points[:len(points):len(points)], points[0]), width, col)
}

func (c *canvas) fillDot(p protocol.PointLite, size float32, col color.Color) {
	c.rect(p, p, size/2)
	c.paint(col)
}
