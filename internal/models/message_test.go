package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStampOrdering(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	earlier := Stamp{CreatedAt: base, ID: 10}
	later := Stamp{CreatedAt: base.Add(time.Second), ID: 5}

	// CreatedAt wins even when the later message has a smaller ID.
	assert.True(t, later.After(earlier))
	assert.False(t, earlier.After(later))
}

func TestStampTieBrokenByID(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	a := Stamp{CreatedAt: at, ID: 7}
	b := Stamp{CreatedAt: at, ID: 8}

	assert.True(t, b.After(a))
	assert.False(t, a.After(b))

	// A stamp never sorts after itself.
	assert.False(t, a.After(a))
}

func TestMessageStamp(t *testing.T) {
	at := time.Now()
	m := Message{ID: 42, CreatedAt: at}

	assert.Equal(t, Stamp{CreatedAt: at, ID: 42}, m.Stamp())
}
