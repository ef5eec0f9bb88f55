package domain

// GenerationResult は Gemini API 応答の解釈結果です。
// Err が空なら成功（Images を 1 枚以上保持）、非空なら失敗です。
// Text はテキストのみ返却された失敗時にも保持されます。
type GenerationResult struct {
	Images []ImageBlob // 応答に現れた順序を維持
	Text   string
	Err    string
}

// Failed は結果が失敗かどうかを返します。
func (r GenerationResult) Failed() bool {
	return r.Err != ""
}

// Failure は失敗結果を生成します。
func Failure(msg string) GenerationResult {
	return GenerationResult{Err: msg}
}

// FailureWithText は付随テキストを保持したまま失敗結果を生成します。
// 「テキストのみ返却」のケースで説明文を失わないために使います。
func FailureWithText(msg, text string) GenerationResult {
	return GenerationResult{Err: msg, Text: text}
}

// Success は成功結果を生成します。
func Success(images []ImageBlob, text string) GenerationResult {
	return GenerationResult{Images: images, Text: text}
}
