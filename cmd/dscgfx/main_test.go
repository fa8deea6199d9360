package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMetatile(t *testing.T) {
	tables := []struct {
		in   string
		w, h int
		ok   bool
	}{
		{"1x1", 1, 1, true},
		{"2X4", 2, 4, true},
		{" 3 x 2 ", 3, 2, true},
		{"2", 0, 0, false},
		{"ax2", 0, 0, false},
		{"2x", 0, 0, false},
	}

	for _, table := range tables {
		w, h, err := parseMetatile(table.in)
		if !table.ok {
			assert.ErrorIs(t, err, errBadMetatile, table.in)
			continue
		}
		assert.NoError(t, err, table.in)
		assert.Equal(t, table.w, w, table.in)
		assert.Equal(t, table.h, h, table.in)
	}
}
