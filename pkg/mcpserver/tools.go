package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/obaid/banana-cli/pkg/generator"
)

// toolResultPayload はツール結果テキストとして返す JSON 文字列の中身です。
type toolResultPayload struct {
	Success     bool   `json:"success"`
	Path        string `json:"path,omitempty"`
	Message     string `json:"message,omitempty"`
	Description string `json:"description,omitempty"`
	Error       string `json:"error,omitempty"`
}

type toolDef struct {
	info    toolInfo
	handler func(ctx context.Context, args json.RawMessage) toolResultPayload
}

var generateImageSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "prompt":      {"type": "string", "description": "Text prompt describing the image to generate"},
    "output":      {"type": "string", "description": "Output file path for the generated image"},
    "model":       {"type": "string", "description": "Model identifier"},
    "aspectRatio": {"type": "string", "description": "Aspect ratio such as 16:9"},
    "size":        {"type": "string", "description": "Resolution tier: 1K, 2K or 4K"}
  },
  "required": ["prompt"]
}`)

var modifyImageSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "prompt":     {"type": "string", "description": "Instruction describing how to modify the image"},
    "inputImage": {"type": "string", "description": "Path or URL of the image to modify"},
    "output":     {"type": "string", "description": "Output file path for the modified image"},
    "model":      {"type": "string", "description": "Model identifier"}
  },
  "required": ["prompt", "inputImage"]
}`)

// buildTools は公開する 2 つのツールを組み立てます。
func (s *Server) buildTools() []toolDef {
	return []toolDef{
		{
			info: toolInfo{
				Name:        "generate_image",
				Description: "Generate an image from a text prompt using the Gemini image API",
				InputSchema: generateImageSchema,
			},
			handler: s.handleGenerateImage,
		},
		{
			info: toolInfo{
				Name:        "modify_image",
				Description: "Modify an existing image according to a text instruction (image-to-image)",
				InputSchema: modifyImageSchema,
			},
			handler: s.handleModifyImage,
		},
	}
}

type generateImageArgs struct {
	Prompt      string `json:"prompt"`
	Output      string `json:"output"`
	Model       string `json:"model"`
	AspectRatio string `json:"aspectRatio"`
	Size        string `json:"size"`
}

func (s *Server) handleGenerateImage(ctx context.Context, args json.RawMessage) toolResultPayload {
	var a generateImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return toolResultPayload{Error: err.Error()}
	}

	return s.runGeneration(ctx, generator.Options{
		Prompt:      a.Prompt,
		Model:       a.Model,
		AspectRatio: a.AspectRatio,
		Size:        a.Size,
		OutputPath:  a.Output,
	}, "Image generated successfully")
}

type modifyImageArgs struct {
	Prompt     string `json:"prompt"`
	InputImage string `json:"inputImage"`
	Output     string `json:"output"`
	Model      string `json:"model"`
}

func (s *Server) handleModifyImage(ctx context.Context, args json.RawMessage) toolResultPayload {
	var a modifyImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return toolResultPayload{Error: err.Error()}
	}

	return s.runGeneration(ctx, generator.Options{
		Prompt:     a.Prompt,
		Model:      a.Model,
		InputPath:  a.InputImage,
		OutputPath: a.Output,
	}, "Image modified successfully")
}

func (s *Server) runGeneration(ctx context.Context, opts generator.Options, message string) toolResultPayload {
	summary, err := s.orch.Generate(ctx, opts)
	if err != nil {
		return toolResultPayload{Error: err.Error()}
	}

	payload := toolResultPayload{
		Success: true,
		Message: message,
	}
	if len(summary.Paths) > 0 {
		payload.Path = summary.Paths[0]
	}
	payload.Description = summary.Text
	return payload
}
