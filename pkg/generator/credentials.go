package generator

import "os"

// DefaultCredentialEnv は API キーのフォールバック先となる環境変数名です。
const DefaultCredentialEnv = "GEMINI_API_KEY"

// これより短い API キーは設定ミスとみなします。
const minCredentialLength = 10

// CredentialSource は API キーの取得元を抽象化します。
// 環境変数への暗黙依存をオーケストレーターから切り離し、
// プロセス環境を汚さずにテストできるようにするための注入点です。
type CredentialSource interface {
	Credential() (string, bool)
}

// EnvCredentialSource は環境変数から API キーを解決する CredentialSource です。
type EnvCredentialSource struct {
	Var string // 空なら DefaultCredentialEnv
}

// Credential は環境変数の値を返します。未設定・空のときは false を返します。
func (s EnvCredentialSource) Credential() (string, bool) {
	name := s.Var
	if name == "" {
		name = DefaultCredentialEnv
	}
	v := os.Getenv(name)
	return v, v != ""
}

// StaticCredentialSource は固定値を返す CredentialSource です。テスト向けです。
type StaticCredentialSource string

// Credential は保持している固定値を返します。
func (s StaticCredentialSource) Credential() (string, bool) {
	return string(s), s != ""
}
