package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"odyssey_backend/internal/model"
	"odyssey_backend/internal/util"
	"odyssey_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const mentorWelcome = "Welcome to the Inner Circle. I am your Senior Architect. " +
	"We aren't just here to learn; we're here to engineer a career. What's on your mind?"

const mentorFailureText = "SYSTEM ERROR: Transmission failed. Re-establishing link..."

// MentorPersonas 可选导师人格
var MentorPersonas = []string{"The Architect", "Elite Hacker", "The Zen Master"}

// MentorModel 导师流式问答的上游抽象，由 GenerationService 实现
type MentorModel interface {
	MentorStream(ctx context.Context, persona string, history []model.ChatMessage, prompt string) (<-chan string, <-chan error)
}

// MentorService 导师对话。历史只存内存，进程生命周期内有效。
// 流式回复期间占位消息的 Text 按"完整前缀替换"推进，绝不原地追加
type MentorService struct {
	mu      sync.Mutex
	history []model.ChatMessage
	model   MentorModel
	persona string
}

func NewMentorService(mentorModel MentorModel) *MentorService {
	return &MentorService{
		model:   mentorModel,
		persona: MentorPersonas[0],
		history: []model.ChatMessage{{
			ID:        uuid.NewString(),
			Role:      model.RoleModel,
			Text:      mentorWelcome,
			Timestamp: time.Now(),
		}},
	}
}

// History 对话历史快照
func (s *MentorService) History() []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ChatMessage(nil), s.history...)
}

// Persona 当前人格
func (s *MentorService) Persona() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persona
}

// SetPersona 切换导师人格
func (s *MentorService) SetPersona(name string) error {
	for _, p := range MentorPersonas {
		if p == name {
			s.mu.Lock()
			s.persona = name
			s.mu.Unlock()
			return nil
		}
	}
	return util.ValidationError("unknown persona %q", name)
}

// Ask 发问。立即返回增量通道：每个元素都是截至当时的完整回复前缀。
// 通道关闭即流结束；失败时占位消息被替换为失败文案并标记 failed
func (s *MentorService) Ask(ctx context.Context, prompt string) (<-chan string, string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, "", util.ValidationError("prompt must not be empty")
	}

	s.mu.Lock()
	prior := append([]model.ChatMessage(nil), s.history...)
	persona := s.persona
	s.history = append(s.history, model.ChatMessage{
		ID:        uuid.NewString(),
		Role:      model.RoleUser,
		Text:      prompt,
		Timestamp: time.Now(),
	})
	placeholder := model.ChatMessage{
		ID:        uuid.NewString(),
		Role:      model.RoleModel,
		Timestamp: time.Now(),
		Streaming: true,
	}
	s.history = append(s.history, placeholder)
	s.mu.Unlock()

	chunks, errChan := s.model.MentorStream(ctx, persona, prior, prompt)

	out := make(chan string)
	go func() {
		defer close(out)

		var fullText string
		for chunk := range chunks {
			fullText += chunk
			s.replaceMessage(placeholder.ID, func(m *model.ChatMessage) {
				m.Text = fullText
			})
			select {
			case out <- fullText:
			case <-ctx.Done():
			}
		}

		if err := <-errChan; err != nil {
			logger.Log.Warn("导师链路中断", zap.String("message", placeholder.ID), zap.Error(err))
			s.replaceMessage(placeholder.ID, func(m *model.ChatMessage) {
				m.Text = mentorFailureText
				m.Streaming = false
				m.Failed = true
			})
			return
		}
		s.replaceMessage(placeholder.ID, func(m *model.ChatMessage) {
			m.Streaming = false
		})
	}()

	return out, placeholder.ID, nil
}

// Message 按ID取一条历史消息
func (s *MentorService) Message(id string) (model.ChatMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.history {
		if s.history[i].ID == id {
			return s.history[i], true
		}
	}
	return model.ChatMessage{}, false
}

// replaceMessage 以拷贝-修改-回写的方式替换一条历史消息
func (s *MentorService) replaceMessage(id string, mutate func(*model.ChatMessage)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.history {
		if s.history[i].ID == id {
			msg := s.history[i]
			mutate(&msg)
			s.history[i] = msg
			return
		}
	}
}

// Reset 清空对话，重新注入欢迎语
func (s *MentorService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = []model.ChatMessage{{
		ID:        uuid.NewString(),
		Role:      model.RoleModel,
		Text:      mentorWelcome,
		Timestamp: time.Now(),
	}}
}
