package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"odyssey_backend/internal/config"
	"odyssey_backend/internal/model"
	"odyssey_backend/internal/util"
	"odyssey_backend/pkg/logger"
	"odyssey_backend/pkg/monitoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// taskArraySchema 任务矩阵的结构化输出模式，保证上游按固定形状返回
const taskArraySchema = `{
  "type": "ARRAY",
  "items": {
    "type": "OBJECT",
    "properties": {
      "id": {"type": "STRING"},
      "title": {"type": "STRING"},
      "category": {"type": "STRING"},
      "difficulty": {"type": "STRING"},
      "description": {"type": "STRING"}
    },
    "required": ["id", "title", "category", "difficulty", "description"]
  }
}`

const mentorSystemInstruction = `You are the Lead Architect Mentor.
The student is on a high-stakes journey to full-stack mastery.
Response Style:
1. Use technical precision mixed with inspiring metaphors.
2. Provide production-grade code snippets.
3. Challenge the student's assumptions.
4. Always explain the architectural "Why".`

// GenerationService Gemini 兼容端点的生成门面。四个操作都可能失败，
// 失败统一包装为 util.GenerationError，调用方不得因失败改动会话
type GenerationService struct {
	mu     sync.RWMutex
	config config.AIConfig
	client *http.Client
}

func NewGenerationService(cfg config.AIConfig) *GenerationService {
	return &GenerationService{
		config: cfg,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
}

// Reload 配置热更新（模型名/密钥换挡），由配置监听器调用
func (s *GenerationService) Reload(cfg config.AIConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
	s.client = &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second}
	logger.Log.Info("生成服务配置已热更新",
		zap.String("chat_model", cfg.ChatModel),
		zap.String("image_model", cfg.ImageModel))
}

func (s *GenerationService) snapshot() (config.AIConfig, *http.Client) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config, s.client
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiSpeechConfig struct {
	VoiceConfig struct {
		PrebuiltVoiceConfig struct {
			VoiceName string `json:"voiceName"`
		} `json:"prebuiltVoiceConfig"`
	} `json:"voiceConfig"`
}

type geminiGenerationConfig struct {
	ResponseMimeType   string              `json:"responseMimeType,omitempty"`
	ResponseSchema     json.RawMessage     `json:"responseSchema,omitempty"`
	ResponseModalities []string            `json:"responseModalities,omitempty"`
	SpeechConfig       *geminiSpeechConfig `json:"speechConfig,omitempty"`
}

type geminiRequest struct {
	Contents          []geminiContent         `json:"contents"`
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

func (s *GenerationService) generate(ctx context.Context, modelName string, reqBody geminiRequest) (*geminiResponse, error) {
	cfg, client := s.snapshot()

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", strings.TrimSuffix(cfg.BaseURL, "/"), modelName)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", cfg.APIKey)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream status %d: %s", resp.StatusCode, string(body))
	}

	var result geminiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}
	if result.Error != nil {
		return nil, fmt.Errorf("upstream error %s: %s", result.Error.Status, result.Error.Message)
	}
	if len(result.Candidates) == 0 {
		return nil, fmt.Errorf("upstream returned no candidates")
	}
	return &result, nil
}

// GenerateTasks 按构想生成任务矩阵。结构化输出，整体成功或整体失败
func (s *GenerationService) GenerateTasks(ctx context.Context, idea string) ([]model.ProjectTask, error) {
	start := time.Now()
	tasks, err := s.generateTasks(ctx, idea)
	monitoring.ObserveGeneration("tasks", start, err)
	if err != nil {
		return nil, util.NewGenerationError("tasks", err)
	}
	return tasks, nil
}

func (s *GenerationService) generateTasks(ctx context.Context, idea string) ([]model.ProjectTask, error) {
	cfg, _ := s.snapshot()
	prompt := fmt.Sprintf("Project: %q. Suggest 5 fundamental engineering tasks.", idea)

	result, err := s.generate(ctx, cfg.ChatModel, geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: &geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   json.RawMessage(taskArraySchema),
		},
	})
	if err != nil {
		return nil, err
	}

	text := firstText(result)
	if text == "" {
		return nil, fmt.Errorf("upstream returned no text part")
	}
	var tasks []model.ProjectTask
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &tasks); err != nil {
		return nil, fmt.Errorf("malformed task payload: %w", err)
	}
	if len(tasks) == 0 {
		return nil, fmt.Errorf("upstream returned empty task list")
	}
	for i := range tasks {
		if tasks[i].ID == "" {
			tasks[i].ID = uuid.NewString()
		}
		tasks[i].Completed = false
	}
	return tasks, nil
}

// GenerateBlueprint 生成项目概念蓝图，返回PNG字节
func (s *GenerationService) GenerateBlueprint(ctx context.Context, idea string, style model.BlueprintStyle) ([]byte, error) {
	start := time.Now()
	image, err := s.generateBlueprint(ctx, idea, style)
	monitoring.ObserveGeneration("blueprint", start, err)
	if err != nil {
		return nil, util.NewGenerationError("blueprint", err)
	}
	return image, nil
}

func (s *GenerationService) generateBlueprint(ctx context.Context, idea string, style model.BlueprintStyle) ([]byte, error) {
	cfg, _ := s.snapshot()
	prompt := fmt.Sprintf("A high-fidelity, cinematic UI/UX concept blueprint for a web application. "+
		"Topic: %s. Style: %s, dark mode, architectural, blueprint lines, sophisticated data visualization, "+
		"ultra-modern developer aesthetic, 8k resolution, clean typography.", idea, style)

	result, err := s.generate(ctx, cfg.ImageModel, geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return nil, err
	}

	for _, part := range result.Candidates[0].Content.Parts {
		if part.InlineData != nil {
			data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("malformed image payload: %w", err)
			}
			return data, nil
		}
	}
	return nil, fmt.Errorf("upstream returned no image part")
}

// MentorStream 导师流式回答。返回增量文本通道与错误通道，
// 调用方通过 ctx 取消
func (s *GenerationService) MentorStream(ctx context.Context, persona string, history []model.ChatMessage, prompt string) (<-chan string, <-chan error) {
	out := make(chan string)
	errChan := make(chan error, 1)

	cfg, client := s.snapshot()

	instruction := mentorSystemInstruction
	if persona != "" {
		instruction = fmt.Sprintf("%s\nActive mentor persona: %s.", mentorSystemInstruction, persona)
	}

	contents := make([]geminiContent, 0, len(history)+1)
	for _, msg := range history {
		if msg.Failed || msg.Text == "" {
			continue
		}
		contents = append(contents, geminiContent{
			Role:  string(msg.Role),
			Parts: []geminiPart{{Text: msg.Text}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  string(model.RoleUser),
		Parts: []geminiPart{{Text: prompt}},
	})

	reqBody := geminiRequest{
		Contents: contents,
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: instruction}},
		},
	}
	jsonData, _ := json.Marshal(reqBody)

	go func() {
		defer close(out)
		defer close(errChan)

		start := time.Now()
		url := fmt.Sprintf("%s/v1beta/models/%s:streamGenerateContent?alt=sse",
			strings.TrimSuffix(cfg.BaseURL, "/"), cfg.ChatModel)
		req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
		if err != nil {
			monitoring.ObserveGeneration("mentor", start, err)
			errChan <- util.NewGenerationError("mentor", err)
			return
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-goog-api-key", cfg.APIKey)

		resp, err := client.Do(req)
		if err != nil {
			monitoring.ObserveGeneration("mentor", start, err)
			errChan <- util.NewGenerationError("mentor", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			err := fmt.Errorf("upstream status %d: %s", resp.StatusCode, string(body))
			monitoring.ObserveGeneration("mentor", start, err)
			errChan <- util.NewGenerationError("mentor", err)
			return
		}

		reader := bufio.NewReader(resp.Body)
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				if err != io.EOF {
					monitoring.ObserveGeneration("mentor", start, err)
					errChan <- util.NewGenerationError("mentor", err)
					return
				}
				break
			}

			line = strings.TrimSpace(line)
			if line == "" || !strings.HasPrefix(line, "data: ") {
				continue
			}

			var chunk geminiResponse
			if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &chunk); err != nil {
				continue
			}
			if len(chunk.Candidates) == 0 {
				continue
			}
			if text := firstText(&chunk); text != "" {
				select {
				case out <- text:
				case <-ctx.Done():
					monitoring.ObserveGeneration("mentor", start, ctx.Err())
					errChan <- ctx.Err()
					return
				}
			}
		}
		monitoring.ObserveGeneration("mentor", start, nil)
	}()

	return out, errChan
}

// SynthesizeBriefing 语音简报合成，返回 24kHz 16bit 单声道 PCM
func (s *GenerationService) SynthesizeBriefing(ctx context.Context, text string) ([]byte, error) {
	start := time.Now()
	pcm, err := s.synthesizeBriefing(ctx, text)
	monitoring.ObserveGeneration("briefing", start, err)
	if err != nil {
		return nil, util.NewGenerationError("briefing", err)
	}
	return pcm, nil
}

func (s *GenerationService) synthesizeBriefing(ctx context.Context, text string) ([]byte, error) {
	cfg, _ := s.snapshot()
	prompt := fmt.Sprintf("Explain this tech lesson concisely and professionally like a senior engineer: %s", text)

	speech := &geminiSpeechConfig{}
	speech.VoiceConfig.PrebuiltVoiceConfig.VoiceName = "Kore"

	result, err := s.generate(ctx, cfg.TTSModel, geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: &geminiGenerationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig:       speech,
		},
	})
	if err != nil {
		return nil, err
	}

	for _, part := range result.Candidates[0].Content.Parts {
		if part.InlineData != nil {
			data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("malformed audio payload: %w", err)
			}
			return data, nil
		}
	}
	return nil, fmt.Errorf("upstream returned no audio part")
}

func firstText(resp *geminiResponse) string {
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			return part.Text
		}
	}
	return ""
}
