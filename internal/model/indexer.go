package model

import "github.com/gdmatos/timetabling/internal/csp"

// Indexer packs a (timeslot, room) pair into a single engine value and back.
type Indexer interface {
	// Index returns the packed value of a (timeslot, room) pair.
	Index(slot, room int) csp.Value
	// Attributes unpacks a value into its (timeslot, room) pair.
	Attributes(value csp.Value) (slot int, room int)
}

func NewIndexer(timeslots, rooms int) Indexer {
	return &sortedIndexer{
		timeslots: timeslots,
		rooms:     rooms,
	}
}
