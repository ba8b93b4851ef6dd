package render

import (
	"fmt"
	"image"

	"github.com/spf13/afero"
	"golang.org/x/image/bmp"
)

// LoadBitmap 讀入 BMP 圖片
func LoadBitmap(fs afero.Fs, file string) (image.Image, error) {
	f, err := fs.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decode %s: empty image", file)
	}
	return img, nil
}
