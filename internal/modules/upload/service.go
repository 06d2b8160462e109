package upload

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// maxImageBytes caps the decoded image payload at 10MB.
const maxImageBytes = 10 << 20

// Service stores base64 data-URL images on disk and hands back public
// URLs. Drafts and submissions only ever carry the URL, never raw bytes.
type Service struct {
	uploadDir     string
	publicBaseURL string
}

func NewService(uploadDir, publicBaseURL string) *Service {
	return &Service{uploadDir: uploadDir, publicBaseURL: publicBaseURL}
}

// Store decodes a data-URL (or bare base64) image, re-encodes it as JPEG
// and returns the public URL. Re-encoding normalizes formats and strips
// whatever metadata the client sent.
func (s *Service) Store(dataURL string) (string, error) {
	payload := dataURL
	if strings.HasPrefix(dataURL, "data:") {
		mediaType, rest, ok := strings.Cut(strings.TrimPrefix(dataURL, "data:"), ",")
		if !ok {
			return "", ErrBadPayload
		}
		if !strings.HasPrefix(mediaType, "image/") {
			return "", ErrNotAnImage
		}
		payload = rest
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if len(raw) > maxImageBytes {
		return "", ErrTooLarge
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", err
	}

	fileName := uuid.NewString() + ".jpg"
	if err := imaging.Save(img, filepath.Join(s.uploadDir, fileName)); err != nil {
		return "", err
	}

	return s.publicBaseURL + "/static/uploads/" + fileName, nil
}
