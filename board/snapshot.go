package board

import (
	"gopkg.in/yaml.v2"
)

// Snapshot is a serializable record of an editing session: the board
// text plus the probability settings it was edited under.
type Snapshot struct {
	SerializedBoard string `yaml:"board,flow"`
	Mines           int    `yaml:"mines"`
	PerCell         int    `yaml:"per_cell"`
}

// TakeSnapshot captures the board and settings into a snapshot.
func TakeSnapshot(board *Board, mines, perCell int) *Snapshot {
	return &Snapshot{
		SerializedBoard: board.String(),
		Mines:           mines,
		PerCell:         perCell,
	}
}

func (snapshot *Snapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// RestoreBoard parses the snapshot's board text.
func (snapshot *Snapshot) RestoreBoard() (*Board, error) {
	return ParseBoard(snapshot.SerializedBoard)
}

func LoadSnapshot(in string) (*Snapshot, error) {
	var snapshot Snapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
