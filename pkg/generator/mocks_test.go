package generator

import (
	"context"
	"fmt"

	"github.com/obaid/banana-cli/pkg/domain"
)

// --- Mocks ---

// mockVendorClient は VendorClient を実装し、呼び出し回数と最後のリクエストを記録します。
type mockVendorClient struct {
	result  domain.GenerationResult
	calls   int
	lastReq domain.GenerationRequest
}

func (m *mockVendorClient) Generate(ctx context.Context, req domain.GenerationRequest) domain.GenerationResult {
	m.calls++
	m.lastReq = req
	return m.result
}

// mockLoader は InputLoader を実装します。
type mockLoader struct {
	blob  *domain.ImageBlob
	err   error
	calls int
}

func (m *mockLoader) Load(ctx context.Context, source string) (*domain.ImageBlob, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if m.blob == nil {
		return nil, fmt.Errorf("Input image not found: %s", source)
	}
	return m.blob, nil
}

// emptyCredentialSource は常に未設定を返す CredentialSource です。
type emptyCredentialSource struct{}

func (emptyCredentialSource) Credential() (string, bool) { return "", false }

func successResult(mimeTypes ...string) domain.GenerationResult {
	images := make([]domain.ImageBlob, 0, len(mimeTypes))
	for i, mt := range mimeTypes {
		images = append(images, domain.ImageBlob{
			Data:     []byte(fmt.Sprintf("image-%d", i)),
			MimeType: mt,
		})
	}
	return domain.Success(images, "")
}
