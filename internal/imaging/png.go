package imaging

import (
	"fmt"
	"image"
	"image/png"
	"os"

	perrors "github.com/anwit-paul/encryption-conversion/internal/errors"
)

// WritePNG persists an image losslessly. PNG is mandatory: any format
// that resamples channels would corrupt the carrier bytes.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", perrors.ErrArtifactWriteFailed, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", perrors.ErrArtifactWriteFailed, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", perrors.ErrArtifactWriteFailed, err)
	}

	return nil
}

// ReadPNG loads a user-supplied carrier image. Parse failures are IO
// errors, not cryptographic ones: the file never reached the cipher.
func ReadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", perrors.ErrImageUnreadable, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", perrors.ErrImageUnreadable, err)
	}

	return img, nil
}
