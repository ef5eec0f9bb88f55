package gemini

import (
	"fmt"

	"github.com/obaid/banana-cli/pkg/domain"
)

// DefaultBaseURL は Gemini API の既定のベース URL です。
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// buildRequestBody は検証済みの GenerationRequest をベンダーのリクエストボディに変換します。
// パーツの順序は必ずテキストが先、入力画像があれば後続 1 件です。
// マルチモーダル解釈の都合上、この順序には意味があります。
func buildRequestBody(req domain.GenerationRequest) generateRequest {
	parts := []part{{Text: req.Prompt}}

	if req.InputImage != nil {
		parts = append(parts, part{
			InlineData: &inlineData{
				MimeType: req.InputImage.MimeType,
				Data:     encodeImageData(req.InputImage.Data),
			},
		})
	}

	cfg := &generationConfig{
		// テキストのみの応答も受理するため、常に両モダリティを要求します。
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}
	if req.Count > 1 {
		cfg.CandidateCount = req.Count
	}

	// 縦横比・解像度のどちらかが指定された場合のみサブブロックを付与します。
	if req.AspectRatio != "" || req.Size != "" {
		cfg.ImageConfig = &imageConfig{
			AspectRatio: string(req.AspectRatio),
			ImageSize:   string(req.Size),
		}
	}

	return generateRequest{
		Contents:         []content{{Parts: parts}},
		GenerationConfig: cfg,
	}
}

// endpointURL はモデル識別子から generateContent のエンドポイント URL を導出します。
func endpointURL(baseURL string, model domain.Model) string {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent", baseURL, model)
}
