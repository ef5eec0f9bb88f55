package domain

// Model は画像生成に使用できる Gemini モデルの閉じた集合です。
type Model string

const (
	// ModelFlashImage は既定の画像生成モデルです。
	ModelFlashImage Model = "gemini-2.5-flash-image-preview"
	// ModelProImage は高品質版の画像生成モデルです。
	ModelProImage Model = "gemini-3-pro-image"
)

// DefaultModel はモデル未指定時に適用されるモデルです。
const DefaultModel = ModelFlashImage

// Models は有効なモデル識別子の一覧を返します。
func Models() []Model {
	return []Model{ModelFlashImage, ModelProImage}
}

// ValidModel は s が有効なモデル識別子かどうかを判定します。
func ValidModel(s string) bool {
	for _, m := range Models() {
		if string(m) == s {
			return true
		}
	}
	return false
}

// AspectRatio は生成画像の縦横比の閉じた集合です。
type AspectRatio string

// AspectRatios は有効な縦横比の一覧を返します。
func AspectRatios() []AspectRatio {
	return []AspectRatio{
		"1:1", "2:3", "3:2", "3:4", "4:3",
		"4:5", "5:4", "9:16", "16:9", "21:9",
	}
}

// ValidAspectRatio は s が有効な縦横比かどうかを判定します。
func ValidAspectRatio(s string) bool {
	for _, r := range AspectRatios() {
		if string(r) == s {
			return true
		}
	}
	return false
}

// ImageSize は生成画像の解像度ティアの閉じた集合です。
type ImageSize string

// ImageSizes は有効な解像度ティアの一覧を返します。
func ImageSizes() []ImageSize {
	return []ImageSize{"1K", "2K", "4K"}
}

// ValidImageSize は s が有効な解像度ティアかどうかを判定します。
func ValidImageSize(s string) bool {
	for _, v := range ImageSizes() {
		if string(v) == s {
			return true
		}
	}
	return false
}

// 生成枚数の上下限です。
const (
	MinImageCount = 1
	MaxImageCount = 4
)

// ImageBlob は画像のバイナリデータと MIME タイプの組です。
type ImageBlob struct {
	Data     []byte
	MimeType string
}

// GenerationRequest は 1 回の画像生成呼び出しの入力です。
// 検証済みオプションから一度だけ構築され、以後変更されません。
type GenerationRequest struct {
	Prompt      string
	Credential  string
	Model       Model
	AspectRatio AspectRatio // 空なら未指定
	Size        ImageSize   // 空なら未指定
	Count       int
	InputImage  *ImageBlob // image-to-image モードのときのみ非 nil
}
