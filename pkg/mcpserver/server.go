// Package mcpserver は MCP (Model Context Protocol) の stdio サーバーです。
// メッセージは 1 行 1 JSON の JSON-RPC 2.0 でフレーミングします。
// stdout はプロトコル専用チャネルのため、ログは必ず stderr に出します。
package mcpserver

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/obaid/banana-cli/pkg/generator"
)

// ProtocolVersion はこのサーバーが応答する MCP プロトコルバージョンです。
const ProtocolVersion = "2024-11-05"

// 1 メッセージの最大長。ツール引数にパスや URL しか含まれないため十分な余裕があります。
const maxLineBytes = 4 << 20

// orchestrator は tools/call が駆動する生成処理です。本番実装は generator.Orchestrator です。
type orchestrator interface {
	Generate(ctx context.Context, opts generator.Options) (*generator.Summary, error)
}

// Server は stdin/stdout 上で MCP リクエストを処理します。
type Server struct {
	name    string
	version string
	orch    orchestrator
	in      io.Reader
	out     io.Writer
	tools   []toolDef

	mu sync.Mutex // out への書き込みを直列化
}

// NewServer は依存関係を注入して Server を初期化します。
func NewServer(name, version string, orch orchestrator, in io.Reader, out io.Writer) (*Server, error) {
	if orch == nil {
		return nil, fmt.Errorf("orch is required")
	}
	if in == nil || out == nil {
		return nil, fmt.Errorf("in/out streams are required")
	}

	s := &Server{
		name:    name,
		version: version,
		orch:    orch,
		in:      in,
		out:     out,
	}
	s.tools = s.buildTools()
	return s, nil
}

// Run は入力ストリームが閉じるか ctx が取り消されるまでリクエストを処理し続けます。
func (s *Server) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req rpcRequest
		if err := json.Unmarshal(line, &req); err != nil {
			// パースエラーではリクエスト ID を特定できないため、明示的に null を返します。
			s.writeError(json.RawMessage("null"), codeParseError, "parse error: "+err.Error())
			continue
		}

		s.dispatch(ctx, req)
	}
	return scanner.Err()
}

func (s *Server) dispatch(ctx context.Context, req rpcRequest) {
	switch req.Method {
	case "initialize":
		s.writeResult(req.ID, initializeResult{
			ProtocolVersion: ProtocolVersion,
			Capabilities:    serverCapabilities{},
			ServerInfo:      serverInfo{Name: s.name, Version: s.version},
		})
	case "notifications/initialized":
		// 通知には応答しません。
	case "ping":
		s.writeResult(req.ID, struct{}{})
	case "tools/list":
		infos := make([]toolInfo, 0, len(s.tools))
		for _, t := range s.tools {
			infos = append(infos, t.info)
		}
		s.writeResult(req.ID, toolListResult{Tools: infos})
	case "tools/call":
		s.handleToolCall(ctx, req)
	default:
		if req.ID != nil {
			s.writeError(req.ID, codeMethodNotFound, "method not found: "+req.Method)
		}
	}
}

func (s *Server) handleToolCall(ctx context.Context, req rpcRequest) {
	var params callToolParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		s.writeError(req.ID, codeInvalidParams, "invalid params: "+err.Error())
		return
	}

	for _, t := range s.tools {
		if t.info.Name != params.Name {
			continue
		}

		if err := validateArguments(t.info.InputSchema, params.Arguments); err != nil {
			s.writeToolResult(req.ID, toolResultPayload{Error: err.Error()})
			return
		}

		slog.Info("ツール呼び出しを実行します", "tool", params.Name)
		s.writeToolResult(req.ID, t.handler(ctx, params.Arguments))
		return
	}

	s.writeError(req.ID, codeInvalidParams, "unknown tool: "+params.Name)
}

// writeToolResult はツール結果ペイロードを JSON 文字列のテキストコンテンツとして返します。
// 失敗は isError フラグで伝えます。
func (s *Server) writeToolResult(id json.RawMessage, payload toolResultPayload) {
	isError := payload.Error != ""
	if isError {
		payload.Success = false
	}

	text, err := json.Marshal(payload)
	if err != nil {
		s.writeError(id, codeInternalError, err.Error())
		return
	}

	s.writeResult(id, callToolResult{
		Content: []toolContent{{Type: "text", Text: string(text)}},
		IsError: isError,
	})
}

func (s *Server) writeResult(id json.RawMessage, result any) {
	s.write(rpcResponse{JSONRPC: "2.0", ID: id, Result: result})
}

func (s *Server) writeError(id json.RawMessage, code int, message string) {
	s.write(rpcResponse{JSONRPC: "2.0", ID: id, Error: &rpcError{Code: code, Message: message}})
}

func (s *Server) write(resp rpcResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		slog.Error("応答のシリアライズに失敗しました", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.out.Write(append(data, '\n')); err != nil {
		slog.Error("応答の書き込みに失敗しました", "error", err)
	}
}
