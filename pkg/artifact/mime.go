// Package artifact は生成画像の命名・保存と、入力画像の読み込みを担当します。
package artifact

import "strings"

// MIME タイプと拡張子の固定対応表です。未知の値はどちらも PNG に倒します。

// ExtensionForMime は MIME タイプから出力ファイルの拡張子を導出します。
func ExtensionForMime(mimeType string) string {
	switch strings.ToLower(mimeType) {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}

// MimeForExtension は拡張子から入力画像の MIME タイプを導出します。
// 照合は大文字小文字を区別しません。
func MimeForExtension(ext string) string {
	switch strings.ToLower(ext) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/png"
	}
}
