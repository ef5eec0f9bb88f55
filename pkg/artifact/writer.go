package artifact

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteImage は画像バイナリを path に書き込みます。
// 親ディレクトリは再帰的に作成します。既存ファイルの上書き確認は行いません。
func WriteImage(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("出力ディレクトリの作成に失敗しました: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("画像の書き込みに失敗しました: %w", err)
	}
	return nil
}
