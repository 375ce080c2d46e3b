// Package workout models a workout made of blocks of timed sub-blocks and
// the position algebra used to walk through it during playback
package workout

import (
	"slices"

	"github.com/ayoisaiah/interval/internal/models"
)

const (
	MinSets     = 1
	MaxSets     = 99
	MinDuration = 1    // seconds
	MaxDuration = 3600 // seconds

	DefaultSets             = 1
	DefaultSubBlockDuration = 10
	DefaultSubBlockLabel    = "New Block"
)

// SubBlock is one timed step of a block.
type SubBlock struct {
	Label    string
	Color    string
	ID       int64
	duration int
}

// Duration returns the length of the step in seconds.
func (s *SubBlock) Duration() int {
	return s.duration
}

// SetDuration updates the length of the step, clamped to
// [MinDuration, MaxDuration].
func (s *SubBlock) SetDuration(seconds int) {
	s.duration = max(MinDuration, min(MaxDuration, seconds))
}

// Block is a group of sub-blocks that is repeated for a number of sets.
type Block struct {
	SubBlocks []*SubBlock
	ID        int64
	sets      int
}

// Sets returns how many times the block is repeated.
func (b *Block) Sets() int {
	return b.sets
}

// SetSets updates the repeat count, clamped to [MinSets, MaxSets].
func (b *Block) SetSets(n int) {
	b.sets = max(MinSets, min(MaxSets, n))
}

// Playable reports whether the block has at least one sub-block. Empty blocks
// are skipped during playback.
func (b *Block) Playable() bool {
	return len(b.SubBlocks) > 0
}

// DurationPerSet is the time taken by a single pass through the sub-blocks.
func (b *Block) DurationPerSet() int {
	var total int

	for _, s := range b.SubBlocks {
		total += s.duration
	}

	return total
}

// TotalDuration is the time taken by all the sets of the block.
func (b *Block) TotalDuration() int {
	return b.sets * b.DurationPerSet()
}

// SubBlock returns the sub-block with the given id or nil.
func (b *Block) SubBlock(id int64) *SubBlock {
	i := slices.IndexFunc(b.SubBlocks, func(s *SubBlock) bool {
		return s.ID == id
	})
	if i < 0 {
		return nil
	}

	return b.SubBlocks[i]
}

// MoveSubBlock moves the sub-block at index from to index to.
func (b *Block) MoveSubBlock(from, to int) {
	b.SubBlocks = move(b.SubBlocks, from, to)
}

// Workout is an ordered list of blocks.
type Workout struct {
	Name   string
	Blocks []*Block
	ID     int64
}

// New returns an empty workout with a fresh id.
func New(name string) *Workout {
	return &Workout{
		ID:   NewID(),
		Name: name,
	}
}

// TotalDuration is the length of the whole workout in seconds. It is derived
// from the blocks on every call.
func (w *Workout) TotalDuration() int {
	var total int

	for _, b := range w.Blocks {
		total += b.TotalDuration()
	}

	return total
}

// Block returns the block with the given id or nil.
func (w *Workout) Block(id int64) *Block {
	i := w.blockIndex(id)
	if i < 0 {
		return nil
	}

	return w.Blocks[i]
}

func (w *Workout) blockIndex(id int64) int {
	return slices.IndexFunc(w.Blocks, func(b *Block) bool {
		return b.ID == id
	})
}

// CreateBlock appends an empty block repeated for sets and returns its id.
func (w *Workout) CreateBlock(sets int) int64 {
	b := &Block{
		ID: NewID(),
	}

	b.SetSets(sets)

	w.Blocks = append(w.Blocks, b)

	return b.ID
}

// CreateSubBlock appends a step with a generated colour to the block
// identified by blockID and returns the id of the step. It returns 0 if the
// block does not exist.
func (w *Workout) CreateSubBlock(blockID int64, label string, duration int) int64 {
	b := w.Block(blockID)
	if b == nil {
		return 0
	}

	s := &SubBlock{
		ID:    NewID(),
		Label: label,
		Color: newColor(),
	}

	s.SetDuration(duration)

	b.SubBlocks = append(b.SubBlocks, s)

	return s.ID
}

// DeleteBlock removes the block with the given id, if any.
func (w *Workout) DeleteBlock(id int64) {
	w.Blocks = slices.DeleteFunc(w.Blocks, func(b *Block) bool {
		return b.ID == id
	})
}

// DeleteSubBlock removes a step from the block identified by blockID, if
// both exist.
func (w *Workout) DeleteSubBlock(blockID, subBlockID int64) {
	b := w.Block(blockID)
	if b == nil {
		return
	}

	b.SubBlocks = slices.DeleteFunc(b.SubBlocks, func(s *SubBlock) bool {
		return s.ID == subBlockID
	})
}

// MoveBlock moves the block at index from to index to.
func (w *Workout) MoveBlock(from, to int) {
	w.Blocks = move(w.Blocks, from, to)
}

// Clone returns a deep copy of the workout that shares no blocks or
// sub-blocks with the original.
func (w *Workout) Clone() *Workout {
	return FromModel(w.ToModel())
}

// ToModel converts the workout to its storage record.
func (w *Workout) ToModel() *models.Workout {
	m := &models.Workout{
		ID:     w.ID,
		Name:   w.Name,
		Blocks: make([]models.Block, len(w.Blocks)),
	}

	for i, b := range w.Blocks {
		block := models.Block{
			ID:        b.ID,
			Sets:      b.sets,
			SubBlocks: make([]models.SubBlock, len(b.SubBlocks)),
		}

		for j, s := range b.SubBlocks {
			block.SubBlocks[j] = models.SubBlock{
				ID:       s.ID,
				Label:    s.Label,
				Duration: s.duration,
				Color:    s.Color,
			}
		}

		m.Blocks[i] = block
	}

	return m
}

// FromModel builds a workout from its storage record. Sets and durations are
// clamped to their valid ranges. A block or sub-block whose id is missing or
// already used elsewhere in the record gets a fresh one.
func FromModel(m *models.Workout) *Workout {
	w := &Workout{
		ID:     m.ID,
		Name:   m.Name,
		Blocks: make([]*Block, len(m.Blocks)),
	}

	observeID(m.ID)

	// every stored id is observed first so fresh ones cannot collide with
	// an id that appears later in the record
	for i := range m.Blocks {
		observeID(m.Blocks[i].ID)

		for _, ms := range m.Blocks[i].SubBlocks {
			observeID(ms.ID)
		}
	}

	seen := make(map[int64]bool)

	uniqueID := func(id int64) int64 {
		if id == 0 || seen[id] {
			id = NewID()
		}

		seen[id] = true

		return id
	}

	for i := range m.Blocks {
		mb := m.Blocks[i]

		b := &Block{
			ID:        uniqueID(mb.ID),
			SubBlocks: make([]*SubBlock, len(mb.SubBlocks)),
		}

		b.SetSets(mb.Sets)

		for j, ms := range mb.SubBlocks {
			s := &SubBlock{
				ID:    uniqueID(ms.ID),
				Label: ms.Label,
				Color: ms.Color,
			}

			s.SetDuration(ms.Duration)

			b.SubBlocks[j] = s
		}

		w.Blocks[i] = b
	}

	return w
}

// move relocates s[from] to index to. Out of range indices leave s unchanged.
func move[T any](s []T, from, to int) []T {
	if from == to || from < 0 || to < 0 || from >= len(s) || to >= len(s) {
		return s
	}

	item := s[from]
	s = slices.Delete(s, from, from+1)

	return slices.Insert(s, to, item)
}
