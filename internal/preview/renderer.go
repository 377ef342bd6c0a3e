package preview

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"photriage/internal/domain"
)

const defaultWidth = 48

// Renderer draws a small rendition of an image to Writer using half-block
// cells, two image rows per terminal line.
type Renderer struct {
	Writer io.Writer
	Width  int // columns, defaults to 48
}

func (r Renderer) Render(ctx context.Context, path string, format domain.PreviewFormat) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	img, err := decode(path, format)
	if err != nil {
		return err
	}
	r.draw(img)
	return nil
}

func decode(path string, format domain.PreviewFormat) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	switch format {
	case domain.FormatPNG:
		return png.Decode(file)
	case domain.FormatJPEG:
		return jpeg.Decode(file)
	case domain.FormatUnsupported:
		return nil, errors.New("unsupported preview format")
	default:
		return nil, fmt.Errorf("unknown preview format %d", format)
	}
}

// draw samples the image down to the target width. A terminal cell is about
// twice as tall as wide; packing two rows per line with "▀" cancels that out.
func (r Renderer) draw(img image.Image) {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}

	width := r.Width
	if width <= 0 {
		width = defaultWidth
	}
	if width > bounds.Dx() {
		width = bounds.Dx()
	}
	height := bounds.Dy() * width / bounds.Dx()
	if height < 2 {
		height = 2
	}

	for y := 0; y+1 < height; y += 2 {
		for x := 0; x < width; x++ {
			top := sample(img, bounds, x, y, width, height)
			bottom := sample(img, bounds, x, y+1, width, height)
			cell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(top))).
				Background(lipgloss.Color(hexColor(bottom))).
				Render("▀")
			fmt.Fprint(r.Writer, cell)
		}
		fmt.Fprintln(r.Writer)
	}
}

func sample(img image.Image, bounds image.Rectangle, x, y, width, height int) color.Color {
	sx := bounds.Min.X + x*bounds.Dx()/width
	sy := bounds.Min.Y + y*bounds.Dy()/height
	return img.At(sx, sy)
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
