package ident

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Labels())
}

func TestTracker_Track_Success(t *testing.T) {
	tracker := NewTracker()

	err := tracker.Track("wheat-grain", 0x1234567890abcdef)
	require.NoError(t, err)
	require.Equal(t, 1, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Equal(t, []string{"wheat-grain"}, tracker.Labels())

	err = tracker.Track("barley-grain", 0xfedcba0987654321)
	require.NoError(t, err)
	require.Equal(t, 2, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Equal(t, []string{"wheat-grain", "barley-grain"}, tracker.Labels())
}

func TestTracker_Track_EmptyLabel(t *testing.T) {
	tracker := NewTracker()

	err := tracker.Track("", 0x1234567890abcdef)
	require.ErrorIs(t, err, ErrEmptyLabel)
	require.Equal(t, 0, tracker.Count())
}

func TestTracker_Track_DuplicateLabel(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("wheat-grain", 0x1234))
	err := tracker.Track("wheat-grain", 0x1234)
	require.ErrorIs(t, err, ErrDuplicateLabel)
	require.Equal(t, 1, tracker.Count())
}

func TestTracker_Track_Collision(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("wheat-grain", 0x1234))
	require.False(t, tracker.HasCollision())

	// Distinct labels, same hash: recorded, not an error.
	require.NoError(t, tracker.Track("barley-grain", 0x1234))
	require.True(t, tracker.HasCollision())
	require.Equal(t, 2, tracker.Count())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("wheat-grain", 0x1234))
	require.NoError(t, tracker.Track("barley-grain", 0x1234))
	require.True(t, tracker.HasCollision())

	tracker.Reset()
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Labels())

	require.NoError(t, tracker.Track("wheat-grain", 0x1234))
	require.Equal(t, 1, tracker.Count())
	require.False(t, tracker.HasCollision())
}
