package service

import (
	"bytes"
	"context"
	"fmt"

	"odyssey_backend/internal/util"
	"odyssey_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Synthesizer 语音合成上游，由 GenerationService 实现
type Synthesizer interface {
	SynthesizeBriefing(ctx context.Context, text string) ([]byte, error)
}

// BriefingResult 已生成语音简报的引用
type BriefingResult struct {
	ObjectKey string `json:"objectKey"`
	URL       string `json:"url"`
	Format    string `json:"format"`
}

// BriefingService 每日简报语音化：上游返回裸 PCM，优先转码 MP3，
// ffmpeg 不可用时回退 WAV 封装
type BriefingService struct {
	synth   Synthesizer
	storage *StorageService
	session *SessionService
}

func NewBriefingService(synth Synthesizer, storage *StorageService, session *SessionService) *BriefingService {
	return &BriefingService{synth: synth, storage: storage, session: session}
}

// BriefDay 合成某模块某天的语音简报
func (s *BriefingService) BriefDay(ctx context.Context, moduleID string, day int) (BriefingResult, error) {
	snap := s.session.Snapshot()
	module := snap.FindModule(moduleID)
	if module == nil {
		return BriefingResult{}, fmt.Errorf("module %s: %w", moduleID, util.ErrNotFound)
	}
	task := module.FindDay(day)
	if task == nil {
		return BriefingResult{}, fmt.Errorf("day %d in module %s: %w", day, moduleID, util.ErrNotFound)
	}
	text := fmt.Sprintf("%s. Objective: %s. %s", task.Title, task.Objective, task.ConceptualWhy)
	return s.Synthesize(ctx, text)
}

// Synthesize 合成任意文本的语音简报并存储
func (s *BriefingService) Synthesize(ctx context.Context, text string) (BriefingResult, error) {
	if text == "" {
		return BriefingResult{}, util.ValidationError("briefing text must not be empty")
	}

	pcm, err := s.synth.SynthesizeBriefing(ctx, text)
	if err != nil {
		return BriefingResult{}, err
	}

	audio, format := encodeAudio(pcm)
	key := fmt.Sprintf("briefings/%s.%s", uuid.NewString(), format)
	contentType := "audio/mpeg"
	if format == "wav" {
		contentType = "audio/wav"
	}

	url, err := s.storage.Upload(ctx, key, bytes.NewReader(audio), int64(len(audio)), contentType)
	if err != nil {
		return BriefingResult{}, fmt.Errorf("store briefing: %w", err)
	}
	return BriefingResult{ObjectKey: key, URL: url, Format: format}, nil
}

func encodeAudio(pcm []byte) ([]byte, string) {
	mp3, err := util.TranscodePCMToMP3(pcm, util.BriefingSampleRate)
	if err == nil {
		return mp3, "mp3"
	}
	logger.Log.Warn("MP3转码失败，回退WAV封装", zap.Error(err))
	return util.WrapPCMToWAV(pcm, util.BriefingSampleRate), "wav"
}
