package gemini

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/obaid/banana-cli/pkg/domain"
)

// interpretResponse は HTTP ステータスと応答ボディを GenerationResult に解釈します。
// 判定は先勝ちで、次の順に行います:
//  1. 非 2xx ステータス → ベンダーのエラーメッセージ、無ければ "HTTP <status>: <statusText>"
//  2. promptFeedback.blockReason → "Content blocked: <reason>"
//  3. candidates が空または欠落 → "No candidates returned from API"
//  4. 全候補のパーツを順に走査して画像を収集（テキストは最後の 1 件が勝つ）
//  5. 画像ゼロ → テキストを保持したまま失敗
func interpretResponse(statusCode int, body []byte) domain.GenerationResult {
	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		// ボディが JSON として壊れていても、エラーステータスなら合成メッセージで報告できます。
		if statusCode < 200 || statusCode >= 300 {
			return domain.Failure(httpStatusMessage(statusCode))
		}
		return domain.Failure(fmt.Sprintf("Request failed: %v", err))
	}

	if statusCode < 200 || statusCode >= 300 {
		if resp.Error != nil && resp.Error.Message != "" {
			return domain.Failure(resp.Error.Message)
		}
		return domain.Failure(httpStatusMessage(statusCode))
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return domain.Failure("Content blocked: " + resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 {
		return domain.Failure("No candidates returned from API")
	}

	var images []domain.ImageBlob
	var text string
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil {
				data, err := decodeImageData(p.InlineData.Data)
				if err != nil {
					slog.Warn("インライン画像のデコードに失敗したため読み飛ばします", "error", err)
					continue
				}
				images = append(images, domain.ImageBlob{
					Data:     data,
					MimeType: p.InlineData.MimeType,
				})
				continue
			}
			if p.Text != "" {
				// 後勝ち。連結はしません。
				text = p.Text
			}
		}
	}

	if len(images) == 0 {
		return domain.FailureWithText("No images generated. The API returned only text.", text)
	}

	return domain.Success(images, text)
}

func httpStatusMessage(statusCode int) string {
	return fmt.Sprintf("HTTP %d: %s", statusCode, http.StatusText(statusCode))
}
