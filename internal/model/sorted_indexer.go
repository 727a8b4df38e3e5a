package model

import "github.com/gdmatos/timetabling/internal/csp"

type sortedIndexer struct {
	timeslots int
	rooms     int
}

func (indexer *sortedIndexer) Index(slot, room int) csp.Value {
	return csp.Value((slot - 1) + indexer.timeslots*room)
}

func (indexer *sortedIndexer) Attributes(value csp.Value) (slot int, room int) {
	slot = int(value)%indexer.timeslots + 1
	room = int(value) / indexer.timeslots
	return slot, room
}
