package upload

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pngDataURL(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestStore_DataURLBecomesJPEG(t *testing.T) {
	dir := t.TempDir()
	service := NewService(dir, "http://localhost:8080")

	url, err := service.Store(pngDataURL(t))

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/static/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	entries, _ := os.ReadDir(dir)
	assert.Len(t, entries, 1)
}

func TestStore_BareBase64Accepted(t *testing.T) {
	service := NewService(t.TempDir(), "http://localhost:8080")

	dataURL := pngDataURL(t)
	bare := strings.TrimPrefix(dataURL, "data:image/png;base64,")

	_, err := service.Store(bare)

	assert.NoError(t, err)
}

func TestStore_RejectsNonImageMediaType(t *testing.T) {
	service := NewService(t.TempDir(), "http://localhost:8080")

	payload := "data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte("hello"))

	_, err := service.Store(payload)

	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestStore_RejectsGarbageBase64(t *testing.T) {
	service := NewService(t.TempDir(), "http://localhost:8080")

	_, err := service.Store("data:image/png;base64,@@@not-base64@@@")

	assert.ErrorIs(t, err, ErrBadPayload)
}

func TestStore_RejectsNonImageBytes(t *testing.T) {
	service := NewService(t.TempDir(), "http://localhost:8080")

	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("definitely not a png"))

	_, err := service.Store(payload)

	assert.ErrorIs(t, err, ErrNotAnImage)
}
