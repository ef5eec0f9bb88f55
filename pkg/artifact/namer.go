package artifact

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Namer は出力ファイルパスを決定論的に計算します。
// タイムスタンプは 1 回の呼び出しにつき一度だけ採取するため、
// 複数画像のバッチでも同じベース名を共有します。
type Namer struct {
	userPath string
	stamp    int64
}

// NewNamer は Namer を初期化します。userPath は空でも構いません。
// now はベース名のタイムスタンプ成分に使われます。
func NewNamer(userPath string, now time.Time) *Namer {
	return &Namer{
		userPath: userPath,
		stamp:    now.UnixMilli(),
	}
}

// Path は index 番目（0 始まり）の画像の最終的な絶対パスを返します。
//   - 拡張子: ユーザー指定パスに拡張子があればそれが勝ち、無ければ MIME から導出
//   - ベース名: ユーザー指定パスの stem、無ければ generated_<ミリ秒タイムスタンプ>
//   - index 0 はサフィックス無し、index >= 1 は拡張子の前に _<index+1> を挿入
func (n *Namer) Path(index int, mimeType string) (string, error) {
	ext := ExtensionForMime(mimeType)
	dir := "."
	base := fmt.Sprintf("generated_%d", n.stamp)

	if n.userPath != "" {
		if userExt := filepath.Ext(n.userPath); userExt != "" {
			ext = userExt
		}
		dir = filepath.Dir(n.userPath)
		name := filepath.Base(n.userPath)
		base = strings.TrimSuffix(name, filepath.Ext(name))
	}

	if index >= 1 {
		base = fmt.Sprintf("%s_%d", base, index+1)
	}

	abs, err := filepath.Abs(filepath.Join(dir, base+ext))
	if err != nil {
		return "", fmt.Errorf("出力パスの解決に失敗しました: %w", err)
	}
	return abs, nil
}
