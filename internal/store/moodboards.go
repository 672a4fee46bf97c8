package store

import (
	"encoding/json"
	"errors"
	"time"

	"tresnow/internal/model"
)

// moodBoardsKey mirrors the localStorage entry the SPA used.
const moodBoardsKey = "tres-mood-boards"

// ErrBoardNotFound is returned by Get when no board has the requested ID.
var ErrBoardNotFound = errors.New("mood board not found")

// MoodBoards persists user-assembled boards. Boards are identified by their
// creation timestamp in unix milliseconds and are never merged.
type MoodBoards struct {
	kv  KV
	now func() time.Time
}

func NewMoodBoards(kv KV, now func() time.Time) *MoodBoards {
	if now == nil {
		now = time.Now
	}
	return &MoodBoards{kv: kv, now: now}
}

func (m *MoodBoards) List() ([]model.MoodBoard, error) {
	raw, err := m.kv.Get(moodBoardsKey)
	if errors.Is(err, ErrKeyNotFound) {
		return []model.MoodBoard{}, nil
	}
	if err != nil {
		return nil, err
	}

	var boards []model.MoodBoard
	if err := json.Unmarshal(raw, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

// Save assigns the board an ID and creation time and appends it. IDs are
// bumped past any collision so they stay unique within the set.
func (m *MoodBoards) Save(board model.MoodBoard) (model.MoodBoard, error) {
	boards, err := m.List()
	if err != nil {
		return model.MoodBoard{}, err
	}

	createdAt := m.now()
	board.CreatedAt = createdAt
	board.ID = createdAt.UnixMilli()
	for m.exists(boards, board.ID) {
		board.ID++
	}

	if err := m.write(append(boards, board)); err != nil {
		return model.MoodBoard{}, err
	}
	return board, nil
}

func (m *MoodBoards) Get(id int64) (model.MoodBoard, error) {
	boards, err := m.List()
	if err != nil {
		return model.MoodBoard{}, err
	}
	for _, b := range boards {
		if b.ID == id {
			return b, nil
		}
	}
	return model.MoodBoard{}, ErrBoardNotFound
}

// Delete removes the board with the given ID. Deleting an absent ID is a
// no-op.
func (m *MoodBoards) Delete(id int64) error {
	boards, err := m.List()
	if err != nil {
		return err
	}

	kept := boards[:0]
	for _, b := range boards {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(boards) {
		return nil
	}
	return m.write(kept)
}

func (m *MoodBoards) exists(boards []model.MoodBoard, id int64) bool {
	for _, b := range boards {
		if b.ID == id {
			return true
		}
	}
	return false
}

func (m *MoodBoards) write(boards []model.MoodBoard) error {
	data, err := json.Marshal(boards)
	if err != nil {
		return err
	}
	return m.kv.Set(moodBoardsKey, data)
}
