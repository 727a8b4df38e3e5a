package model

import (
	"math/rand"
	"testing"

	"github.com/gdmatos/timetabling/internal/csp"
	"github.com/stretchr/testify/assert"
)

func TestIndexAndAttributesRoundTrip(t *testing.T) {
	for range 10 {
		// Arrange
		timeslots := rand.Intn(30) + 1
		rooms := rand.Intn(10) + 1

		// Act
		indexer := NewIndexer(timeslots, rooms)

		// Assert
		for slot := 1; slot <= timeslots; slot++ {
			for room := range rooms {
				value := indexer.Index(slot, room)
				gotSlot, gotRoom := indexer.Attributes(value)
				assert.Equal(t, slot, gotSlot)
				assert.Equal(t, room, gotRoom)
			}
		}
	}
}

func TestIndexIsDenseAndSorted(t *testing.T) {
	// Arrange
	scenarios := [][]int{
		{20, 5},
		{15, 7},
		{10, 1},
		{1, 4},
	}

	for _, scenario := range scenarios {
		timeslots, rooms := scenario[0], scenario[1]
		indexer := NewIndexer(timeslots, rooms)

		// Act
		values := make([]csp.Value, 0, timeslots*rooms)
		for room := range rooms {
			for slot := 1; slot <= timeslots; slot++ {
				values = append(values, indexer.Index(slot, room))
			}
		}

		// Assert
		for i, value := range values {
			assert.Equal(t, csp.Value(i), value)
		}
	}
}
