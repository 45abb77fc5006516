package fingerprint

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/corona10/goimagehash"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Error describes a file that could not be turned into a fingerprint.
type Error struct {
	Path string
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// FromImage computes the 64-bit average hash of img: the image is scaled down to 8x8,
// converted to grayscale and every pixel brighter than the mean sets its bit.
func FromImage(img image.Image) (*goimagehash.ImageHash, error) {
	hash, err := goimagehash.AverageHash(img)
	if err != nil {
		return nil, fmt.Errorf("calculating average hash: %w", err)
	}
	return hash, nil
}

// FromFile decodes the image stored at path and fingerprints it.
func FromFile(path string) (*goimagehash.ImageHash, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &Error{Path: path, Op: "open", Err: err}
	}
	//goland:noinspection GoUnhandledErrorResult
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, &Error{Path: path, Op: "decode", Err: err}
	}

	return FromImage(img)
}

// Distance returns the number of differing bits between two fingerprints.
func Distance(a, b *goimagehash.ImageHash) (int, error) {
	dist, err := a.Distance(b)
	if err != nil {
		return 0, fmt.Errorf("calculating distance: %w", err)
	}
	return dist, nil
}

// Hex formats the fingerprint bits as 16 hex digits.
func Hex(hash *goimagehash.ImageHash) string {
	return fmt.Sprintf("%016x", hash.GetHash())
}
