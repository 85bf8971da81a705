package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	// plain intersection
	assert.True(t, Overlaps(at(0), at(2), at(1), at(3)))
	assert.True(t, Overlaps(at(1), at(3), at(0), at(2)))

	// containment
	assert.True(t, Overlaps(at(0), at(4), at(1), at(2)))

	// back-to-back events share only the boundary instant
	assert.False(t, Overlaps(at(0), at(1), at(1), at(2)))
	assert.False(t, Overlaps(at(1), at(2), at(0), at(1)))

	// disjoint
	assert.False(t, Overlaps(at(0), at(1), at(2), at(3)))
}
