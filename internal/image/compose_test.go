package imagepkg

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/ygodeck/internal/deck"
)

func TestComposeDeckImageSize(t *testing.T) {
	tiles := make([]image.Image, 10)
	rows := []Row{
		{Category: deck.Monster, Tiles: tiles},
		{Category: deck.Spell},
		{Category: deck.Trap, Tiles: []image.Image{nil}},
	}
	img := ComposeDeckImage(rows, nil)

	// two lines of monsters, one of traps, the empty spell row is skipped
	want := sectionY +
		(bandH + gap + 2*cardH + gap + margin) +
		(bandH + gap + cardH + margin)
	assert.Equal(t, canvasW, img.Bounds().Dx())
	assert.Equal(t, want, img.Bounds().Dy())
}

func TestComposeDeckImageEmptyDeck(t *testing.T) {
	img := ComposeDeckImage(nil, nil)
	assert.Equal(t, sectionY, img.Bounds().Dy())
}

func pngServer(t *testing.T) (*httptest.Server, *int32) {
	t.Helper()
	var buf bytes.Buffer
	red := imaging.New(20, 30, color.NRGBA{R: 0xff, A: 0xff})
	require.NoError(t, png.Encode(&buf, red))

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(buf.Bytes())
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestDownloadAll(t *testing.T) {
	srv, hits := pngServer(t)
	f := NewFetcher(0, 1, nil)

	got := f.DownloadAll(context.Background(), []string{
		srv.URL + "/a.png", srv.URL + "/a.png", "", srv.URL + "/missing.png",
	})
	assert.Len(t, got, 1)
	assert.Contains(t, got, srv.URL+"/a.png")
	assert.Equal(t, int32(2), atomic.LoadInt32(hits))
}

func TestRender(t *testing.T) {
	srv, _ := pngServer(t)
	r := NewRenderer(NewFetcher(0, 2, nil))

	sections := []deck.Section{
		{Category: deck.Monster, Entries: []deck.Entry{{Name: "Kuriboh", Quantity: 3, ImageURL: srv.URL + "/k.png"}}},
		{Category: deck.Spell, Entries: []deck.Entry{{Name: "Token", Quantity: 1}}},
	}
	img, err := r.Render(context.Background(), sections, "1x Kuriboh")
	require.NoError(t, err)
	want := sectionY + 2*(bandH+gap+cardH+margin)
	assert.Equal(t, want, img.Bounds().Dy())
}

func TestGenerateQR(t *testing.T) {
	b, err := GenerateQRPNG("deck:example", 256)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())

	q, err := GenerateQRImage("deck:example", 128)
	require.NoError(t, err)
	assert.Equal(t, 128, q.Bounds().Dx())
}

func TestGenerateQRFallsBackToLowRecovery(t *testing.T) {
	// fits at Low but not at Medium
	b, err := GenerateQRPNG(strings.Repeat("x", 2500), 256)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(b))
	assert.NoError(t, err)

	_, err = GenerateQRPNG(strings.Repeat("x", 3500), 256)
	assert.ErrorIs(t, err, ErrQRTooLong)
	_, err = GenerateQRImage(strings.Repeat("x", 3500), 256)
	assert.ErrorIs(t, err, ErrQRTooLong)
}

func TestRenderOmitsQRWhenTextTooLong(t *testing.T) {
	r := NewRenderer(NewFetcher(0, 2, nil))
	sections := []deck.Section{
		{Category: deck.Trap, Entries: []deck.Entry{{Name: "Mirror Force", Quantity: 1}}},
	}
	img, err := r.Render(context.Background(), sections, strings.Repeat("x", 3500))
	require.NoError(t, err)
	assert.Equal(t, sectionY+bandH+gap+cardH+margin, img.Bounds().Dy())

	// the QR corner keeps the background colour
	c := color.NRGBAModel.Convert(img.At(canvasW-margin-qrSize/2, margin+qrSize/2)).(color.NRGBA)
	assert.Equal(t, background, c)
}
