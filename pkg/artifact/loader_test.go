package artifact

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// PNGの最小構成バイナリ（シグネチャ含む）
var validPng = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00\x90w\x53\xde")

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("ローカルファイルは拡張子から MIME を決めること", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "input.jpg")
		require.NoError(t, os.WriteFile(path, []byte("jpeg-bytes"), 0o644))

		loader := NewLoader(nil, nil, false)
		blob, err := loader.Load(ctx, path)

		require.NoError(t, err)
		assert.Equal(t, "image/jpeg", blob.MimeType)
		assert.Equal(t, []byte("jpeg-bytes"), blob.Data)
	})

	t.Run("存在しないローカルファイルは Input image not found を返すこと", func(t *testing.T) {
		loader := NewLoader(nil, nil, false)

		_, err := loader.Load(ctx, filepath.Join(t.TempDir(), "missing.png"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Input image not found:")
	})

	t.Run("URL からの取得は内容から MIME を推定すること", func(t *testing.T) {
		httpMock := &mockHTTPClient{data: validPng}
		loader := NewLoader(httpMock, nil, false)

		// パブリック IP リテラルを使い、テストを名前解決に依存させません。
		blob, err := loader.Load(ctx, "https://8.8.8.8/favicon.png")

		require.NoError(t, err)
		assert.Equal(t, "image/png", blob.MimeType)
		require.Len(t, httpMock.fetched, 1)
	})

	t.Run("ループバック URL は SSRF 対策でブロックされること", func(t *testing.T) {
		httpMock := &mockHTTPClient{data: validPng}
		loader := NewLoader(httpMock, nil, false)

		_, err := loader.Load(ctx, "http://127.0.0.1/img.png")

		require.Error(t, err)
		assert.Empty(t, httpMock.fetched, "blocked URL must not be fetched")
	})

	t.Run("HTTP クライアント未設定のとき URL 入力はエラーになること", func(t *testing.T) {
		loader := NewLoader(nil, nil, false)

		_, err := loader.Load(ctx, "https://example.com/img.png")

		require.Error(t, err)
	})

	t.Run("画像ではないデータを取得した場合はエラーになること", func(t *testing.T) {
		httpMock := &mockHTTPClient{data: []byte("<html>not an image</html>")}
		loader := NewLoader(httpMock, nil, false)

		_, err := loader.Load(ctx, "https://8.8.8.8/page.html")

		require.Error(t, err)
	})

	t.Run("gs:// URI はリモートリーダー経由で読むこと", func(t *testing.T) {
		reader := &mockReader{data: validPng}
		loader := NewLoader(nil, reader, false)

		blob, err := loader.Load(ctx, "gs://bucket/input.png")

		require.NoError(t, err)
		assert.Equal(t, "image/png", blob.MimeType)
	})

	t.Run("リモートリーダー未設定のとき gs:// 入力はエラーになること", func(t *testing.T) {
		loader := NewLoader(nil, nil, false)

		_, err := loader.Load(ctx, "gs://bucket/input.png")

		require.Error(t, err)
	})
}

func TestWriteImage(t *testing.T) {
	t.Run("親ディレクトリを作成して書き込むこと", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "deep", "out.png")

		require.NoError(t, WriteImage(path, []byte("payload")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), data)
	})

	t.Run("既存ファイルは黙って置き換えること", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.png")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

		require.NoError(t, WriteImage(path, []byte("new")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("new"), data)
	})
}
