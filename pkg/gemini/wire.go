// Package gemini は Gemini generateContent REST API との通信層です。
// ドメイン型とベンダー JSON スキーマの相互変換、および HTTP 呼び出しを担当します。
package gemini

// --- リクエスト側のワイヤ型 ---

// generateRequest は generateContent リクエストボディです。
type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

// part はテキストまたはインライン画像のいずれか一方を保持します。
type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // Base64 エンコード済み
}

// generationConfig は応答モダリティと画像設定を保持します。
// ImageConfig はポインタのまま省略可能にします。一部のモデルエンドポイントは
// 未知フィールドや null を拒否するため、未指定時はサブブロックごと省きます。
type generationConfig struct {
	ResponseModalities []string     `json:"responseModalities"`
	CandidateCount     int          `json:"candidateCount,omitempty"`
	ImageConfig        *imageConfig `json:"imageConfig,omitempty"`
}

type imageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
	ImageSize   string `json:"imageSize,omitempty"`
}

// --- レスポンス側のワイヤ型 ---

type generateResponse struct {
	Candidates     []candidate     `json:"candidates"`
	PromptFeedback *promptFeedback `json:"promptFeedback,omitempty"`
	Error          *apiError       `json:"error,omitempty"`
}

type candidate struct {
	Content      candidateContent `json:"content"`
	FinishReason string           `json:"finishReason,omitempty"`
}

type candidateContent struct {
	Parts []part `json:"parts"`
}

type promptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

type apiError struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Status  string `json:"status,omitempty"`
}
