package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"odyssey_backend/internal/model"
	"odyssey_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMentorModel 以预先排好的增量回放一次流式回答
type fakeMentorModel struct {
	chunks      []string
	err         error
	gotPersona  string
	gotHistory  []model.ChatMessage
	gotPrompt   string
}

func (f *fakeMentorModel) MentorStream(ctx context.Context, persona string, history []model.ChatMessage, prompt string) (<-chan string, <-chan error) {
	f.gotPersona = persona
	f.gotHistory = history
	f.gotPrompt = prompt

	out := make(chan string)
	errChan := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errChan)
		for _, chunk := range f.chunks {
			out <- chunk
		}
		if f.err != nil {
			errChan <- f.err
		}
	}()
	return out, errChan
}

func collect(t *testing.T, out <-chan string) []string {
	t.Helper()
	var got []string
	timeout := time.After(2 * time.Second)
	for {
		select {
		case chunk, ok := <-out:
			if !ok {
				return got
			}
			got = append(got, chunk)
		case <-timeout:
			t.Fatal("stream did not close")
		}
	}
}

func TestMentorServiceSeedsWelcome(t *testing.T) {
	svc := NewMentorService(&fakeMentorModel{})

	history := svc.History()
	require.Len(t, history, 1)
	assert.Equal(t, model.RoleModel, history[0].Role)
	assert.Equal(t, mentorWelcome, history[0].Text)
	assert.Equal(t, "The Architect", svc.Persona())
}

// TestMentorAskPrefixSemantics verifies every emitted element is the full
// reply prefix so far, and the placeholder ends up holding the final text.
func TestMentorAskPrefixSemantics(t *testing.T) {
	fake := &fakeMentorModel{chunks: []string{"Scale ", "is a ", "ladder."}}
	svc := NewMentorService(fake)

	out, msgID, err := svc.Ask(context.Background(), "How do I scale?")
	require.NoError(t, err)

	got := collect(t, out)
	assert.Equal(t, []string{"Scale ", "Scale is a ", "Scale is a ladder."}, got)

	msg, ok := svc.Message(msgID)
	require.True(t, ok)
	assert.Equal(t, "Scale is a ladder.", msg.Text)
	assert.False(t, msg.Streaming)
	assert.False(t, msg.Failed)

	// 历史按 欢迎语/提问/回答 排列
	history := svc.History()
	require.Len(t, history, 3)
	assert.Equal(t, model.RoleUser, history[1].Role)
	assert.Equal(t, "How do I scale?", history[1].Text)

	// 上游只看到提问之前的历史
	require.Len(t, fake.gotHistory, 1)
	assert.Equal(t, "The Architect", fake.gotPersona)
	assert.Equal(t, "How do I scale?", fake.gotPrompt)
}

// TestMentorAskFailure verifies a broken stream swaps the placeholder for the
// failure text and marks it failed.
func TestMentorAskFailure(t *testing.T) {
	fake := &fakeMentorModel{
		chunks: []string{"partial "},
		err:    errors.New("upstream gone"),
	}
	svc := NewMentorService(fake)

	out, msgID, err := svc.Ask(context.Background(), "hello?")
	require.NoError(t, err)
	collect(t, out)

	msg, ok := svc.Message(msgID)
	require.True(t, ok)
	assert.True(t, msg.Failed)
	assert.False(t, msg.Streaming)
	assert.Equal(t, mentorFailureText, msg.Text)
}

func TestMentorAskEmptyPrompt(t *testing.T) {
	svc := NewMentorService(&fakeMentorModel{})

	_, _, err := svc.Ask(context.Background(), "   ")
	assert.ErrorIs(t, err, util.ErrValidation)
}

func TestMentorPersona(t *testing.T) {
	svc := NewMentorService(&fakeMentorModel{})

	require.NoError(t, svc.SetPersona("The Zen Master"))
	assert.Equal(t, "The Zen Master", svc.Persona())

	err := svc.SetPersona("The Intern")
	assert.ErrorIs(t, err, util.ErrValidation)
	assert.Equal(t, "The Zen Master", svc.Persona(), "invalid persona leaves the current one")
}

func TestMentorReset(t *testing.T) {
	fake := &fakeMentorModel{chunks: []string{"answer"}}
	svc := NewMentorService(fake)

	out, _, err := svc.Ask(context.Background(), "q")
	require.NoError(t, err)
	collect(t, out)
	require.Len(t, svc.History(), 3)

	svc.Reset()
	history := svc.History()
	require.Len(t, history, 1)
	assert.Equal(t, mentorWelcome, history[0].Text)
}
