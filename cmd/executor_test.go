package cmd

import (
	"context"
	"errors"
	"testing"

	"flauncher/internal/config"
	"flauncher/internal/desktop"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingStore remembers every Record call.
type recordingStore struct {
	records []string
	counts  map[string]uint64
	err     error
}

func newRecordingStore() *recordingStore {
	return &recordingStore{counts: make(map[string]uint64)}
}

func (s *recordingStore) Lookup(name string) (uint64, error) {
	return s.counts[name], nil
}

func (s *recordingStore) Record(name string, count uint64) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, name)
	s.counts[name] = count
	return nil
}

func quietConfig() config.AppConfig {
	conf := config.Default()
	conf.NoLaunchedInheritStdio = true
	return conf
}

func TestLaunchRecordsOnce(t *testing.T) {
	store := newRecordingStore()
	entry := desktop.Entry{Name: "True", Command: "true", LaunchCount: 4}

	require.NoError(t, launch(context.Background(), quietConfig(), store, entry))

	assert.Equal(t, []string{"True"}, store.records)
	assert.Equal(t, uint64(5), store.counts["True"])
}

func TestLaunchNotStartedIsNotRecorded(t *testing.T) {
	tests := []struct {
		name    string
		command string
	}{
		{"unterminated quote", `echo "unterminated`},
		{"empty", "   "},
		{"missing binary", "flauncher-test-no-such-binary"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newRecordingStore()
			entry := desktop.Entry{Name: "Broken", Command: tt.command, LaunchCount: 4}

			err := launch(context.Background(), quietConfig(), store, entry)
			assert.Error(t, err)
			assert.NotErrorIs(t, err, errHistory)
			assert.Empty(t, store.records)
		})
	}
}

func TestLaunchRecordFailure(t *testing.T) {
	store := newRecordingStore()
	store.err = errors.New("read-only database")

	err := launch(context.Background(), quietConfig(), store, desktop.Entry{Name: "True", Command: "true"})
	assert.ErrorIs(t, err, errHistory)
	assert.ErrorIs(t, err, store.err)
}
