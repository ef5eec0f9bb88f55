package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/obaid/banana-cli/pkg/artifact"
	"github.com/obaid/banana-cli/pkg/domain"
)

// VendorClient は画像生成 API への通信を抽象化します。本番実装は gemini.Client です。
type VendorClient interface {
	Generate(ctx context.Context, req domain.GenerationRequest) domain.GenerationResult
}

// InputLoader は入力画像の読み込みを抽象化します。本番実装は artifact.Loader です。
type InputLoader interface {
	Load(ctx context.Context, source string) (*domain.ImageBlob, error)
}

// Summary は 1 回の生成で書き込まれたファイルと付随テキストです。
type Summary struct {
	Paths []string
	Text  string
}

// Orchestrator は 1 回のエンドツーエンド生成を駆動します。
// ネットワークとファイルシステムに触れるのはこの層だけです。
// 再試行は行わず、あらゆる失敗はその呼び出しにとって終端です。
type Orchestrator struct {
	client VendorClient
	loader InputLoader
	creds  CredentialSource
	now    func() time.Time
}

// NewOrchestrator は依存関係を注入して Orchestrator を初期化します。
func NewOrchestrator(client VendorClient, loader InputLoader, creds CredentialSource) (*Orchestrator, error) {
	if client == nil {
		return nil, fmt.Errorf("client is required")
	}
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if creds == nil {
		return nil, fmt.Errorf("creds is required")
	}

	return &Orchestrator{
		client: client,
		loader: loader,
		creds:  creds,
		now:    time.Now,
	}, nil
}

// Generate は検証 → 入力画像読み込み → 通信 → 解釈 → 保存 を順に実行します。
// 失敗時でも、API が返した説明テキストがあれば Summary.Text に保持して返します。
func (o *Orchestrator) Generate(ctx context.Context, opts Options) (*Summary, error) {
	credential, err := o.resolveCredential(opts)
	if err != nil {
		return nil, err
	}

	if err := Validate(opts); err != nil {
		return nil, err
	}

	req := domain.GenerationRequest{
		Prompt:     opts.Prompt,
		Credential: credential,
		Model:      domain.DefaultModel,
		Count:      1,
	}
	if opts.Model != "" {
		req.Model = domain.Model(opts.Model)
	}
	if opts.AspectRatio != "" {
		req.AspectRatio = domain.AspectRatio(opts.AspectRatio)
	}
	if opts.Size != "" {
		req.Size = domain.ImageSize(opts.Size)
	}
	if opts.Count != 0 {
		req.Count = opts.Count
	}

	if opts.InputPath != "" {
		blob, err := o.loader.Load(ctx, opts.InputPath)
		if err != nil {
			return nil, err
		}
		req.InputImage = blob
	}

	result := o.client.Generate(ctx, req)
	if result.Failed() {
		return &Summary{Text: result.Text}, errors.New(result.Err)
	}

	// 成功結果は必ず 1 枚以上の画像を含みます。
	if len(result.Images) == 0 {
		return &Summary{Text: result.Text}, errors.New("No images were generated")
	}

	namer := artifact.NewNamer(opts.OutputPath, o.now())

	paths := make([]string, 0, len(result.Images))
	for i, img := range result.Images {
		path, err := namer.Path(i, img.MimeType)
		if err != nil {
			return &Summary{Paths: paths, Text: result.Text}, err
		}
		if err := artifact.WriteImage(path, img.Data); err != nil {
			// 1 枚でも書き込みに失敗したら、残りの処理は中断します。
			return &Summary{Paths: paths, Text: result.Text}, err
		}
		slog.Info("画像を保存しました", "path", path, "bytes", len(img.Data))
		paths = append(paths, path)
	}

	return &Summary{Paths: paths, Text: result.Text}, nil
}

func (o *Orchestrator) resolveCredential(opts Options) (string, error) {
	credential := opts.Credential
	if credential == "" {
		if v, ok := o.creds.Credential(); ok {
			credential = v
		}
	}
	if credential == "" {
		return "", fmt.Errorf("API key is required. Provide it explicitly or set %s", DefaultCredentialEnv)
	}
	if len(credential) < minCredentialLength {
		return "", fmt.Errorf("API key appears to be invalid (too short)")
	}
	return credential, nil
}
