package generator

import (
	"strings"
	"testing"

	"github.com/obaid/banana-cli/pkg/domain"
)

func TestValidate(t *testing.T) {
	valid := Options{Prompt: "A red circle"}

	t.Run("プロンプトだけでも妥当であること", func(t *testing.T) {
		if err := Validate(valid); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("空白のみのプロンプトは拒否されること", func(t *testing.T) {
		for _, p := range []string{"", "   ", "\t\n"} {
			err := Validate(Options{Prompt: p})
			if err == nil || !strings.Contains(err.Error(), "Prompt is required") {
				t.Errorf("Validate(prompt=%q) = %v, want Prompt is required", p, err)
			}
		}
	})

	t.Run("モデル集合の全要素が受理されること", func(t *testing.T) {
		for _, m := range domain.Models() {
			opts := valid
			opts.Model = string(m)
			if err := Validate(opts); err != nil {
				t.Errorf("Validate(model=%q) = %v, want nil", m, err)
			}
		}
	})

	t.Run("集合外のモデルは Invalid model で拒否されること", func(t *testing.T) {
		for _, m := range []string{"dall-e-3", "gemini-1.0-pro", "imagen-3"} {
			opts := valid
			opts.Model = m
			err := Validate(opts)
			if err == nil || !strings.Contains(err.Error(), "Invalid model") {
				t.Errorf("Validate(model=%q) = %v, want Invalid model", m, err)
			}
			// エラーメッセージは有効な集合を列挙すること
			if err != nil && !strings.Contains(err.Error(), string(domain.ModelFlashImage)) {
				t.Errorf("error should list valid models, got %v", err)
			}
		}
	})

	t.Run("縦横比集合の全要素が受理され、集合外は拒否されること", func(t *testing.T) {
		for _, r := range domain.AspectRatios() {
			opts := valid
			opts.AspectRatio = string(r)
			if err := Validate(opts); err != nil {
				t.Errorf("Validate(ratio=%q) = %v, want nil", r, err)
			}
		}

		opts := valid
		opts.AspectRatio = "16x9"
		err := Validate(opts)
		if err == nil || !strings.Contains(err.Error(), "Invalid aspect ratio") {
			t.Errorf("got %v, want Invalid aspect ratio", err)
		}
	})

	t.Run("解像度ティアの検証", func(t *testing.T) {
		for _, s := range domain.ImageSizes() {
			opts := valid
			opts.Size = string(s)
			if err := Validate(opts); err != nil {
				t.Errorf("Validate(size=%q) = %v, want nil", s, err)
			}
		}

		opts := valid
		opts.Size = "8K"
		err := Validate(opts)
		if err == nil || !strings.Contains(err.Error(), "Invalid size") {
			t.Errorf("got %v, want Invalid size", err)
		}
	})

	t.Run("枚数は 1-4 のみ受理されること", func(t *testing.T) {
		for count := 1; count <= 4; count++ {
			opts := valid
			opts.Count = count
			if err := Validate(opts); err != nil {
				t.Errorf("Validate(count=%d) = %v, want nil", count, err)
			}
		}
		for _, count := range []int{-1, 5, 100} {
			opts := valid
			opts.Count = count
			err := Validate(opts)
			if err == nil || !strings.Contains(err.Error(), "between 1 and 4") {
				t.Errorf("Validate(count=%d) = %v, want range error", count, err)
			}
		}
	})

	t.Run("検査は記載順で最初の違反を報告すること", func(t *testing.T) {
		// プロンプト欠落とモデル不正が同居する場合、プロンプトのエラーが勝つ
		err := Validate(Options{Model: "bogus"})
		if err == nil || !strings.Contains(err.Error(), "Prompt is required") {
			t.Errorf("got %v, want Prompt is required", err)
		}
	})
}
