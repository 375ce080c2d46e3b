package workout

import (
	"fmt"
	"iter"
)

// Position points at one occurrence of a sub-block during playback. Set is
// 1-based, BlockIndex and SubBlockIndex are 0-based.
type Position struct {
	BlockIndex    int `json:"blockIndex"`
	SubBlockIndex int `json:"subBlockIndex"`
	Set           int `json:"set"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.BlockIndex, p.SubBlockIndex, p.Set)
}

// Valid reports whether p points at an existing sub-block of a playable
// block within the set range of that block.
func (w *Workout) Valid(p Position) bool {
	if p.BlockIndex < 0 || p.BlockIndex >= len(w.Blocks) {
		return false
	}

	b := w.Blocks[p.BlockIndex]

	return p.SubBlockIndex >= 0 && p.SubBlockIndex < len(b.SubBlocks) &&
		p.Set >= 1 && p.Set <= b.sets
}

// SubBlockAt returns the sub-block referenced by p, or nil if p is invalid.
func (w *Workout) SubBlockAt(p Position) *SubBlock {
	if !w.Valid(p) {
		return nil
	}

	return w.Blocks[p.BlockIndex].SubBlocks[p.SubBlockIndex]
}

// FirstPosition returns the first playable position of the workout. It
// returns false when no block has any sub-blocks.
func (w *Workout) FirstPosition() (Position, bool) {
	return w.firstPlayableFrom(0)
}

// NextPosition returns the position that follows p: the next sub-block of the
// same set, else the first sub-block of the next set, else the first sub-block
// of the next playable block. It returns false once the workout is exhausted.
func (w *Workout) NextPosition(p Position) (Position, bool) {
	if !w.Valid(p) {
		return Position{}, false
	}

	b := w.Blocks[p.BlockIndex]

	if p.SubBlockIndex+1 < len(b.SubBlocks) {
		return Position{
			BlockIndex:    p.BlockIndex,
			SubBlockIndex: p.SubBlockIndex + 1,
			Set:           p.Set,
		}, true
	}

	if p.Set+1 <= b.sets {
		return Position{
			BlockIndex:    p.BlockIndex,
			SubBlockIndex: 0,
			Set:           p.Set + 1,
		}, true
	}

	return w.firstPlayableFrom(p.BlockIndex + 1)
}

// PrevPosition is the inverse of NextPosition.
func (w *Workout) PrevPosition(p Position) (Position, bool) {
	if !w.Valid(p) {
		return Position{}, false
	}

	b := w.Blocks[p.BlockIndex]

	if p.SubBlockIndex > 0 {
		return Position{
			BlockIndex:    p.BlockIndex,
			SubBlockIndex: p.SubBlockIndex - 1,
			Set:           p.Set,
		}, true
	}

	if p.Set > 1 {
		return Position{
			BlockIndex:    p.BlockIndex,
			SubBlockIndex: len(b.SubBlocks) - 1,
			Set:           p.Set - 1,
		}, true
	}

	return w.lastPlayableBefore(p.BlockIndex - 1)
}

// DurationBefore returns the workout time, in seconds, that has elapsed when
// playback reaches the start of p: every block before p, the sets of p's block
// completed before p.Set, and the sub-blocks of the current set before
// p.SubBlockIndex.
func (w *Workout) DurationBefore(p Position) int {
	if p.BlockIndex >= len(w.Blocks) {
		return w.TotalDuration()
	}

	var total int

	for _, b := range w.Blocks[:max(0, p.BlockIndex)] {
		total += b.TotalDuration()
	}

	if p.BlockIndex < 0 {
		return total
	}

	b := w.Blocks[p.BlockIndex]

	total += max(0, p.Set-1) * b.DurationPerSet()

	for _, s := range b.SubBlocks[:max(0, min(p.SubBlockIndex, len(b.SubBlocks)))] {
		total += s.duration
	}

	return total
}

// Positions iterates over every playable position in playback order.
func (w *Workout) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		p, ok := w.FirstPosition()
		for ok {
			if !yield(p) {
				return
			}

			p, ok = w.NextPosition(p)
		}
	}
}

func (w *Workout) firstPlayableFrom(start int) (Position, bool) {
	for i := max(0, start); i < len(w.Blocks); i++ {
		if w.Blocks[i].Playable() {
			return Position{BlockIndex: i, SubBlockIndex: 0, Set: 1}, true
		}
	}

	return Position{}, false
}

func (w *Workout) lastPlayableBefore(start int) (Position, bool) {
	for i := min(start, len(w.Blocks)-1); i >= 0; i-- {
		b := w.Blocks[i]
		if b.Playable() {
			return Position{
				BlockIndex:    i,
				SubBlockIndex: len(b.SubBlocks) - 1,
				Set:           b.sets,
			}, true
		}
	}

	return Position{}, false
}
