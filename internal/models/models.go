// Package models defines the records that are persisted to the data store
package models

// SubBlock is the stored form of a single timed step.
type SubBlock struct {
	ID       int64  `json:"id"`
	Label    string `json:"label"`
	Duration int    `json:"duration"`
	Color    string `json:"color"`
}

// Block is the stored form of a group of steps repeated for a number of sets.
type Block struct {
	ID        int64      `json:"id"`
	Sets      int        `json:"sets"`
	SubBlocks []SubBlock `json:"subBlocks"`
}

// Workout is the stored form of a workout. The data store persists the whole
// collection as an ordered list of these records.
type Workout struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Blocks []Block `json:"blocks"`
}
