package imgutil

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
)

// CompressToJPEG は画像データ（PNG, GIF, JPEG等）をJPEG形式に圧縮します。
// image.Decodeがサポートするフォーマットに対応しています。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CompressIfLarge は data が threshold バイトを超える場合のみ JPEG へ再圧縮します。
// 再圧縮した場合は changed が true になります。圧縮後の方が大きくなった場合は
// 原本をそのまま返します。
func CompressIfLarge(data []byte, threshold int, quality int) (out []byte, changed bool, err error) {
	if len(data) <= threshold {
		return data, false, nil
	}
	compressed, err := CompressToJPEG(data, quality)
	if err != nil {
		return nil, false, err
	}
	if len(compressed) >= len(data) {
		return data, false, nil
	}
	return compressed, true, nil
}
