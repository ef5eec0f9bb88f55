// banana は Gemini 画像生成 API のコマンドライン／MCP サーバーフロントエンドです。
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shouni/go-http-kit/pkg/httpkit"

	"github.com/obaid/banana-cli/pkg/artifact"
	"github.com/obaid/banana-cli/pkg/gemini"
	"github.com/obaid/banana-cli/pkg/generator"
	"github.com/obaid/banana-cli/pkg/mcpserver"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// .env があれば読み込みます（無くてもエラーにしません）。
	_ = godotenv.Load()

	if len(args) > 0 {
		switch args[0] {
		case "mcp":
			return runMCP()
		case "version", "--version", "-v":
			fmt.Println("banana " + version)
			return 0
		case "help", "--help", "-h":
			printUsage()
			return 0
		}
	}

	return runGenerate(args)
}

func runGenerate(args []string) int {
	fs := flag.NewFlagSet("banana", flag.ContinueOnError)

	var (
		prompt        = fs.String("prompt", "", "生成プロンプト（フラグ未指定時は残りの引数を使用）")
		key           = fs.String("key", "", "API キー（未指定時は "+generator.DefaultCredentialEnv+" を参照）")
		output        = fs.String("output", "", "出力ファイルパス")
		model         = fs.String("model", "", "モデル識別子")
		aspectRatio   = fs.String("aspect-ratio", "", "縦横比 (例: 16:9)")
		size          = fs.String("size", "", "解像度ティア (1K, 2K, 4K)")
		count         = fs.Int("count", 0, "生成枚数 (1-4)")
		input         = fs.String("input", "", "入力画像のパス（image-to-image モード）")
		compressInput = fs.Bool("compress-input", false, "大きな入力画像を JPEG に再圧縮して送信する")
		baseURL       = fs.String("base-url", "", "API ベース URL の上書き")
		timeout       = fs.Duration("timeout", gemini.DefaultTimeout, "HTTP タイムアウト")
		verbose       = fs.Bool("verbose", false, "デバッグログを有効にする")
	)

	if err := fs.Parse(args); err != nil {
		return 1
	}

	setupLogging(*verbose)

	if *prompt == "" {
		*prompt = strings.Join(fs.Args(), " ")
	}

	var clientOpts []gemini.ClientOption
	if *baseURL != "" {
		clientOpts = append(clientOpts, gemini.WithBaseURL(*baseURL))
	}
	clientOpts = append(clientOpts, gemini.WithTimeout(*timeout))

	orch, err := generator.NewOrchestrator(
		gemini.NewClient(clientOpts...),
		newInputLoader(*timeout, *compressInput),
		generator.EnvCredentialSource{},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	summary, err := orch.Generate(context.Background(), generator.Options{
		Prompt:      *prompt,
		Credential:  *key,
		Model:       *model,
		AspectRatio: *aspectRatio,
		Size:        *size,
		Count:       *count,
		InputPath:   *input,
		OutputPath:  *output,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if summary != nil && summary.Text != "" {
			fmt.Fprintln(os.Stderr, summary.Text)
		}
		return 1
	}

	for _, path := range summary.Paths {
		fmt.Println("Saved:", path)
	}
	if summary.Text != "" {
		fmt.Println(summary.Text)
	}
	fmt.Printf("Done: %d image(s) written\n", len(summary.Paths))
	return 0
}

func runMCP() int {
	// stdout はプロトコル専用のため、ログは stderr に限定します。
	setupLogging(false)

	orch, err := generator.NewOrchestrator(
		gemini.NewClient(),
		newInputLoader(gemini.DefaultTimeout, false),
		generator.EnvCredentialSource{},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	server, err := mcpserver.NewServer("banana", version, orch, os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	if err := server.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// newInputLoader は入力画像ローダーを組み立てます。http(s) 入力は httpkit 経由で
// 取得します。gs:// の読み込みは GCS クライアントと認証情報の初期化が前提となるため、
// CLI 起動時には構築せず無効のままにします。
func newInputLoader(timeout time.Duration, compress bool) *artifact.Loader {
	return artifact.NewLoader(httpkit.New(timeout), nil, compress)
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func printUsage() {
	fmt.Println(`banana - Gemini image generation CLI / MCP server

Usage:
  banana [flags] <prompt>
  banana mcp        MCP stdio サーバーとして起動
  banana version    バージョン表示

Flags:
  -prompt          生成プロンプト
  -key             API キー (既定: 環境変数 ` + generator.DefaultCredentialEnv + `)
  -output          出力ファイルパス
  -model           モデル識別子
  -aspect-ratio    縦横比 (例: 16:9)
  -size            解像度ティア (1K, 2K, 4K)
  -count           生成枚数 (1-4)
  -input           入力画像パス (image-to-image)
  -compress-input  大きな入力画像を JPEG 再圧縮
  -timeout         HTTP タイムアウト
  -verbose         デバッグログ`)
}
