// Package render is the default badge artifact generator: it draws a PNG
// card for an identity, fetching and embedding the photo when one is set.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"net/http"
	"time"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	// Registered so photo bytes in these formats decode via image.Decode.
	_ "image/gif"
	_ "image/jpeg"

	"badgeforge/internal/badge"
)

const (
	canvasW = 640
	canvasH = 320

	photoSize = 112
	photoX    = 40
	photoY    = 104

	accentW = 10
)

var (
	bgColor     = color.RGBA{R: 30, G: 41, B: 59, A: 255}
	accentColor = color.RGBA{R: 56, G: 189, B: 248, A: 255}
	nameColor   = color.RGBA{R: 248, G: 250, B: 252, A: 255}
	emailColor  = color.RGBA{R: 148, G: 163, B: 184, A: 255}
	frameColor  = color.RGBA{R: 71, G: 85, B: 105, A: 255}
)

// Renderer draws badge cards. Safe for concurrent use.
type Renderer struct {
	logger *slog.Logger
	client *http.Client
}

// New builds a Renderer. The photo fetch uses its own bounded client so a
// slow photo host cannot hold a render forever.
func New(logger *slog.Logger) *Renderer {
	return &Renderer{
		logger: logger,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Generate renders the badge PNG for id.
func (r *Renderer) Generate(ctx context.Context, id badge.Identity) ([]byte, error) {
	canvas := image.NewRGBA(image.Rect(0, 0, canvasW, canvasH))

	fill(canvas, canvas.Bounds(), bgColor)
	fill(canvas, image.Rect(0, 0, accentW, canvasH), accentColor)

	if id.PhotoURL != nil {
		photo, err := r.fetchPhoto(ctx, *id.PhotoURL)
		if err != nil {
			return nil, fmt.Errorf("photo %q: %w", *id.PhotoURL, err)
		}
		drawPhoto(canvas, photo)
	} else {
		// Placeholder frame keeps the layout stable without a photo.
		drawFrame(canvas, image.Rect(photoX, photoY, photoX+photoSize, photoY+photoSize))
	}

	drawText(canvas, id.Name, nameColor, photoX+photoSize+40, 150)
	drawText(canvas, id.Email, emailColor, photoX+photoSize+40, 180)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encode badge: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) fetchPhoto(ctx context.Context, photoURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, photoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	img, format, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode photo: %w", err)
	}
	r.logger.Debug("photo fetched", "format", format, "bounds", img.Bounds().String())
	return img, nil
}

func fill(dst *image.RGBA, rect image.Rectangle, c color.RGBA) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			dst.SetRGBA(x, y, c)
		}
	}
}

func drawFrame(dst *image.RGBA, rect image.Rectangle) {
	for x := rect.Min.X; x < rect.Max.X; x++ {
		dst.SetRGBA(x, rect.Min.Y, frameColor)
		dst.SetRGBA(x, rect.Max.Y-1, frameColor)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		dst.SetRGBA(rect.Min.X, y, frameColor)
		dst.SetRGBA(rect.Max.X-1, y, frameColor)
	}
}

func drawPhoto(dst *image.RGBA, photo image.Image) {
	target := image.Rect(photoX, photoY, photoX+photoSize, photoY+photoSize)
	xdraw.ApproxBiLinear.Scale(dst, target, photo, photo.Bounds(), xdraw.Over, nil)
}

func drawText(dst *image.RGBA, text string, c color.RGBA, x, y int) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
