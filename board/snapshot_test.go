package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	b := NewBoard(3, 3)
	b.Set(Coord{1, 1}, Num(2))
	b.Set(Coord{0, 2}, Flag(1))

	snapshot := TakeSnapshot(b, 8, 3)
	out := snapshot.Serialize()

	loaded, err := LoadSnapshot(out)
	require.NoError(t, err)
	assert.Equal(t, 8, loaded.Mines)
	assert.Equal(t, 3, loaded.PerCell)

	restored, err := loaded.RestoreBoard()
	require.NoError(t, err)
	assert.True(t, b.Equal(restored))
}

func TestLoadSnapshotBadYAML(t *testing.T) {
	_, err := LoadSnapshot(":\nnot yaml: [")
	assert.Error(t, err)
}

func TestSnapshotRestoreBadBoard(t *testing.T) {
	snapshot := &Snapshot{SerializedBoard: "# ? #", Mines: 1, PerCell: 1}
	_, err := snapshot.RestoreBoard()
	assert.Error(t, err)
}
