// Package generator は検証・変換・通信・保存を束ねる生成オーケストレーション層です。
package generator

import (
	"fmt"
	"strings"

	"github.com/obaid/banana-cli/pkg/domain"
)

// Options は CLI / MCP から渡される 1 回分の生成オプションです。
// Prompt 以外は任意で、未指定の項目には上流で既定値が適用されます。
type Options struct {
	Prompt      string
	Credential  string // 空なら CredentialSource にフォールバック
	Model       string
	AspectRatio string
	Size        string
	Count       int    // 0 なら既定値 1
	InputPath   string // ローカルパス・URL・gs:// URI
	OutputPath  string
}

// Validate はオプションを列挙集合と照合します。副作用はありません。
// 検査は記載順に行い、最初の違反で打ち切ります。妥当なら nil を返します。
func Validate(opts Options) error {
	if strings.TrimSpace(opts.Prompt) == "" {
		return fmt.Errorf("Prompt is required")
	}

	if opts.Model != "" && !domain.ValidModel(opts.Model) {
		return fmt.Errorf("Invalid model: %q (valid models: %s)", opts.Model, joinModels())
	}

	if opts.AspectRatio != "" && !domain.ValidAspectRatio(opts.AspectRatio) {
		return fmt.Errorf("Invalid aspect ratio: %q (valid ratios: %s)", opts.AspectRatio, joinRatios())
	}

	if opts.Size != "" && !domain.ValidImageSize(opts.Size) {
		return fmt.Errorf("Invalid size: %q (valid sizes: %s)", opts.Size, joinSizes())
	}

	if opts.Count != 0 && (opts.Count < domain.MinImageCount || opts.Count > domain.MaxImageCount) {
		return fmt.Errorf("Count must be a number between %d and %d", domain.MinImageCount, domain.MaxImageCount)
	}

	return nil
}

func joinModels() string {
	names := make([]string, 0, len(domain.Models()))
	for _, m := range domain.Models() {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}

func joinRatios() string {
	names := make([]string, 0, len(domain.AspectRatios()))
	for _, r := range domain.AspectRatios() {
		names = append(names, string(r))
	}
	return strings.Join(names, ", ")
}

func joinSizes() string {
	names := make([]string, 0, len(domain.ImageSizes()))
	for _, s := range domain.ImageSizes() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
