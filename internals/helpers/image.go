// file: internals/helpers/image.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"regexp"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	maxPhotoWidth = 1200
	webpQuality   = 80
	maxPhotoBytes = 5 << 20 // 5MB upload ceiling
)

// ConvertPhotoToWebP decodes an uploaded photo (jpeg/png/webp), caps its width
// and re-encodes to lossy webp. Returns the webp bytes.
func ConvertPhotoToWebP(fileHeader *multipart.FileHeader) ([]byte, error) {
	if fileHeader.Size > maxPhotoBytes {
		return nil, fmt.Errorf("photo larger than %dMB", maxPhotoBytes>>20)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open photo: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		// retry as webp; image.Decode only knows jpeg/png here
		if _, seekErr := src.Seek(0, 0); seekErr == nil {
			img, err = webp.Decode(src)
		}
		if err != nil {
			return nil, fmt.Errorf("decode photo: %w", err)
		}
	}

	if img.Bounds().Dx() > maxPhotoWidth {
		img = imaging.Resize(img, maxPhotoWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeFilenameChars.ReplaceAllString(filename, "_")
}

// GenerateUniqueFilename builds folder/date-uuid-name keys for stored photos.
func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}
