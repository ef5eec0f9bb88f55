package gemini

import "encoding/base64"

// バイナリ表現と Base64 表現の変換をここに閉じ込めます。
// 変換器・解釈器はバイト列の表現方法を意識しません。

func encodeImageData(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func decodeImageData(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}
