package artifact

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"

	"github.com/obaid/banana-cli/pkg/domain"
	"github.com/obaid/banana-cli/pkg/imgutil"
)

const (
	// 入力画像がこのサイズを超える場合のみ JPEG 再圧縮を試みます。
	compressThresholdBytes = 4 << 20
	compressQuality        = 85
)

// Loader は入力画像をローカルパス・URL・gs:// URI から読み込みます。
type Loader struct {
	httpClient httpkit.ClientInterface // nil の場合 http(s) ソースは利用不可
	reader     remoteio.InputReader    // nil の場合 gs:// ソースは利用不可
	compress   bool
}

// NewLoader は Loader を初期化します。httpClient と reader は nil を許容します
// （その場合、対応するリモートソースが無効になるだけです）。
func NewLoader(httpClient httpkit.ClientInterface, reader remoteio.InputReader, compress bool) *Loader {
	return &Loader{
		httpClient: httpClient,
		reader:     reader,
		compress:   compress,
	}
}

// Load は source から入力画像を読み込み、MIME タイプと対にして返します。
//   - gs://  : RemoteReader 経由で取得
//   - http(s): SSRF 検証のうえ HTTPClient 経由で取得
//   - それ以外: ローカルファイルパスとして読み込み
//
// ローカルパスの場合、読み込み前に存在確認を行います。
func (l *Loader) Load(ctx context.Context, source string) (*domain.ImageBlob, error) {
	switch {
	case strings.HasPrefix(source, "gs://"):
		return l.loadRemote(ctx, source)
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return l.loadURL(ctx, source)
	default:
		return l.loadLocal(source)
	}
}

func (l *Loader) loadLocal(path string) (*domain.ImageBlob, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("Input image not found: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("入力画像の読み込みに失敗しました: %w", err)
	}
	return l.finish(data, MimeForExtension(filepath.Ext(path)))
}

func (l *Loader) loadURL(ctx context.Context, rawURL string) (*domain.ImageBlob, error) {
	if l.httpClient == nil {
		return nil, fmt.Errorf("URL からの入力画像取得は利用できません")
	}
	if safe, err := IsSafeURL(rawURL); err != nil || !safe {
		return nil, fmt.Errorf("安全ではないURLが指定されました: %w", err)
	}
	data, err := l.httpClient.FetchBytes(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("入力画像のダウンロードに失敗しました: %w", err)
	}
	return l.finishFetched(data)
}

func (l *Loader) loadRemote(ctx context.Context, uri string) (*domain.ImageBlob, error) {
	if l.reader == nil {
		return nil, fmt.Errorf("gs:// からの入力画像取得は利用できません")
	}
	rc, err := l.reader.Open(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("リモート入力画像のオープンに失敗しました: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("リモート入力画像の読み込みに失敗しました: %w", err)
	}
	return l.finishFetched(data)
}

// finishFetched はリモート取得データの MIME を内容から推定して仕上げます。
func (l *Loader) finishFetched(data []byte) (*domain.ImageBlob, error) {
	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("取得したデータが画像ではありません (MIME: %s)", mimeType)
	}
	return l.finish(data, mimeType)
}

func (l *Loader) finish(data []byte, mimeType string) (*domain.ImageBlob, error) {
	if l.compress {
		compressed, changed, err := imgutil.CompressIfLarge(data, compressThresholdBytes, compressQuality)
		if err != nil {
			slog.Warn("入力画像の再圧縮に失敗したため原本のまま送信します", "error", err)
		} else if changed {
			slog.Debug("入力画像を再圧縮しました",
				"before_bytes", len(data), "after_bytes", len(compressed))
			data = compressed
			mimeType = "image/jpeg"
		}
	}
	return &domain.ImageBlob{Data: data, MimeType: mimeType}, nil
}
