package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"odyssey_backend/internal/config"
	"odyssey_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSynth struct {
	pcm []byte
	err error
}

func (f *fakeSynth) SynthesizeBriefing(ctx context.Context, text string) ([]byte, error) {
	return f.pcm, f.err
}

func newTestBriefing(t *testing.T) (*BriefingService, *fakeSynth, string) {
	t.Helper()
	dir := t.TempDir()
	storage := NewStorageService(&config.Config{
		Storage: config.StorageConfig{Type: "local", LocalPath: dir},
	})
	session := NewSessionService(newMemSlotStore(), defaultFakeGenerator(), storage)
	session.Hydrate()
	synth := &fakeSynth{pcm: []byte{0, 1, 0, 1, 0, 1, 0, 1}}
	return NewBriefingService(synth, storage, session), synth, dir
}

// TestBriefDay verifies a briefing is synthesized from the day's lesson text
// and the resulting audio object lands in storage.
func TestBriefDay(t *testing.T) {
	svc, _, dir := newTestBriefing(t)

	result, err := svc.BriefDay(context.Background(), "m0", 1)
	require.NoError(t, err)

	assert.Contains(t, result.ObjectKey, "briefings/")
	assert.Contains(t, []string{"mp3", "wav"}, result.Format)
	assert.NotEmpty(t, result.URL)

	data, err := os.ReadFile(filepath.Join(dir, result.ObjectKey))
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	if result.Format == "wav" {
		assert.Equal(t, "RIFF", string(data[:4]))
	}
}

func TestBriefDayAddressing(t *testing.T) {
	svc, _, _ := newTestBriefing(t)

	_, err := svc.BriefDay(context.Background(), "m99", 1)
	assert.ErrorIs(t, err, util.ErrNotFound)

	_, err = svc.BriefDay(context.Background(), "m0", 999)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestSynthesizeUpstreamFailure(t *testing.T) {
	svc, synth, _ := newTestBriefing(t)
	synth.err = util.NewGenerationError("briefing", errors.New("tts down"))

	_, err := svc.Synthesize(context.Background(), "text")
	require.Error(t, err)
	assert.True(t, util.IsGenerationError(err))
}

func TestSynthesizeEmptyText(t *testing.T) {
	svc, _, _ := newTestBriefing(t)

	_, err := svc.Synthesize(context.Background(), "")
	assert.ErrorIs(t, err, util.ErrValidation)
}
