package service

import (
	"context"
	"testing"

	"odyssey_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStatsSnapshotFreshSession verifies the derived view over the seed state.
// Redis is absent; the service computes directly from the session.
func TestStatsSnapshotFreshSession(t *testing.T) {
	svc, _, _ := newTestSession(t)
	stats := NewStatsService(svc, nil)

	snap, err := stats.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, model.SeedXP, snap.ExperiencePoints)
	assert.Equal(t, 5, snap.Rank)
	assert.Equal(t, 50000, snap.NextRankXP)
	assert.Equal(t, 12, snap.ModulesTotal)
	assert.Equal(t, 1, snap.ModulesCompleted, "seed m0 is completed")
	assert.Equal(t, 8, snap.OverallProgress)
	assert.Equal(t, 1, snap.CompletedDays)
	assert.Equal(t, "m1", snap.CurrentModuleID)
	assert.Equal(t, 0, snap.ProjectSync)
	require.Len(t, snap.Modules, 12)
	assert.Equal(t, "m0", snap.Modules[0].ID)
	assert.False(t, snap.GeneratedAt.IsZero())
}

// TestStatsSnapshotTracksMutations verifies the snapshot reflects session
// mutations committed since the last read.
func TestStatsSnapshotTracksMutations(t *testing.T) {
	svc, _, _ := newTestSession(t)
	stats := NewStatsService(svc, nil)

	_, _, err := svc.AwardExperience(5000)
	require.NoError(t, err)
	_, err = svc.SubmitQuizAnswer("m0", 2, 3)
	require.NoError(t, err)

	snap, err := stats.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, model.SeedXP+5000+QuizRewardXP, snap.ExperiencePoints)
	assert.Equal(t, 6, snap.Rank)
	assert.Equal(t, 2, snap.CompletedDays)
}
