package imagepkg

import (
	"context"
	"errors"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/youruser/ygodeck/internal/deck"
)

const (
	canvasW  = 2150
	margin   = 48
	cardW    = 215
	cardH    = 300
	gap      = 8
	columns  = 9
	qrSize   = 400
	bandH    = 16
	sectionY = margin + qrSize + margin
)

var (
	background  = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	placeholder = color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}

	bandColors = map[deck.Category]color.NRGBA{
		deck.Monster: {R: 0xc8, G: 0x7f, B: 0x3a, A: 0xff},
		deck.Spell:   {R: 0x1d, G: 0x9e, B: 0x74, A: 0xff},
		deck.Trap:    {R: 0xbc, G: 0x5a, B: 0x84, A: 0xff},
		deck.Extra:   {R: 0x6b, G: 0x4c, B: 0x9a, A: 0xff},
	}
)

// Row is one category of the deck image with one tile per card copy. A nil
// tile is drawn as a placeholder.
type Row struct {
	Category deck.Category
	Tiles    []image.Image
}

// ComposeDeckImage lays the rows out under a header holding the QR code.
func ComposeDeckImage(rows []Row, qr image.Image) image.Image {
	canvas := imaging.New(canvasW, canvasHeight(rows), background)

	if qr != nil {
		q := imaging.Resize(qr, qrSize, qrSize, imaging.Lanczos)
		canvas = imaging.Paste(canvas, q, image.Pt(canvasW-margin-qrSize, margin))
	}

	y := sectionY
	for _, r := range rows {
		if len(r.Tiles) == 0 {
			continue
		}
		band := imaging.New(canvasW-2*margin, bandH, bandColors[r.Category])
		canvas = imaging.Paste(canvas, band, image.Pt(margin, y))
		y += bandH + gap

		for i, t := range r.Tiles {
			if i > 0 && i%columns == 0 {
				y += cardH + gap
			}
			x := margin + (i%columns)*(cardW+gap)
			var tile image.Image
			if t != nil {
				tile = imaging.Fill(t, cardW, cardH, imaging.Center, imaging.Lanczos)
			} else {
				tile = imaging.New(cardW, cardH, placeholder)
			}
			canvas = imaging.Paste(canvas, tile, image.Pt(x, y))
		}
		y += cardH + margin
	}
	return canvas
}

func canvasHeight(rows []Row) int {
	h := sectionY
	for _, r := range rows {
		if len(r.Tiles) == 0 {
			continue
		}
		lines := (len(r.Tiles) + columns - 1) / columns
		h += bandH + gap + lines*cardH + (lines-1)*gap + margin
	}
	return h
}

// Renderer draws a deck as a single image.
type Renderer struct {
	fetcher *Fetcher
}

func NewRenderer(f *Fetcher) *Renderer {
	return &Renderer{fetcher: f}
}

// Render downloads the card images of sections and composes them with a QR
// code of qrText. An empty qrText, or one too long to encode, leaves the QR
// out.
func (r *Renderer) Render(ctx context.Context, sections []deck.Section, qrText string) (image.Image, error) {
	var urls []string
	for _, s := range sections {
		for _, e := range s.Entries {
			urls = append(urls, e.ImageURL)
		}
	}
	imgs := r.fetcher.DownloadAll(ctx, urls)

	rows := make([]Row, 0, len(sections))
	for _, s := range sections {
		row := Row{Category: s.Category}
		for _, e := range s.Entries {
			for i := 0; i < e.Quantity; i++ {
				row.Tiles = append(row.Tiles, imgs[e.ImageURL])
			}
		}
		rows = append(rows, row)
	}

	var qr image.Image
	if qrText != "" {
		q, err := GenerateQRImage(qrText, qrSize)
		switch {
		case errors.Is(err, ErrQRTooLong):
			r.fetcher.logger.Warn("deck image without QR code", zap.Int("bytes", len(qrText)))
		case err != nil:
			return nil, err
		default:
			qr = q
		}
	}
	return ComposeDeckImage(rows, qr), nil
}
