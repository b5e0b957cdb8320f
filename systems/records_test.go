package systems

import (
	"errors"
	"testing"

	"github.com/automoto/playdead/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	clears []records.Clear
	err    error
}

func (f *fakeRecorder) RecordClear(level string, frames, deaths int) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.clears = append(f.clears, records.Clear{Level: level, Frames: frames, Deaths: deaths})
	return int64(len(f.clears)), nil
}

func (f *fakeRecorder) Best(level string) (records.Clear, bool, error) {
	var best records.Clear
	found := false
	for _, c := range f.clears {
		if c.Level == level && (!found || c.Frames < best.Frames) {
			best, found = c, true
		}
	}
	return best, found, f.err
}

func useRecorder(t *testing.T, r clearRecorder) {
	t.Helper()
	prev := recorder
	recorder = r
	t.Cleanup(func() { recorder = prev })
}

func TestRecordLevelClear(t *testing.T) {
	fake := &fakeRecorder{}
	useRecorder(t, fake)
	e, _, _ := newTestScene(t, nil)

	data := levelData(e)
	GetOrCreateProgress(e).Deaths = 5
	data.DeathsAtEntry = 2
	data.Frames = 900

	RecordLevelClear(e, data)
	require.Len(t, fake.clears, 1)
	assert.Equal(t, records.Clear{Level: "sewer", Frames: 900, Deaths: 3}, fake.clears[0])
	assert.Equal(t, 900, data.BestFrames)

	data.Frames = 1200
	RecordLevelClear(e, data)
	assert.Equal(t, 900, data.BestFrames, "a slower run keeps the best")

	data.Frames = 600
	RecordLevelClear(e, data)
	assert.Equal(t, 600, data.BestFrames)

	data.BestFrames = 0
	LoadBestClear(data)
	assert.Equal(t, 600, data.BestFrames)
}

func TestRecordLevelClearFailureKeepsBest(t *testing.T) {
	useRecorder(t, &fakeRecorder{err: errors.New("disk full")})
	e, _, _ := newTestScene(t, nil)

	data := levelData(e)
	data.Frames = 300
	RecordLevelClear(e, data)
	assert.Zero(t, data.BestFrames)

	LoadBestClear(data)
	assert.Zero(t, data.BestFrames)
}

func TestRecordsWithoutStore(t *testing.T) {
	useRecorder(t, nil)
	e, _, _ := newTestScene(t, nil)

	data := levelData(e)
	data.BestFrames = 42
	assert.NotPanics(t, func() { RecordLevelClear(e, data) })
	LoadBestClear(data)
	assert.Zero(t, data.BestFrames)
}
