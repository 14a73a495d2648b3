package texscale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionCoversAllRows(t *testing.T) {
	for h := 1; h <= 64; h++ {
		for w := 1; w <= h; w++ {
			ranges := Partition(h, w)
			if len(ranges) != w {
				t.Fatalf("Partition(%d, %d): %d ranges", h, w, len(ranges))
			}

			next := 0
			for i, r := range ranges {
				if r.Start != next {
					t.Fatalf("Partition(%d, %d): range %d starts at %d, want %d", h, w, i, r.Start, next)
				}
				if r.Len() <= 0 {
					t.Fatalf("Partition(%d, %d): range %d is empty", h, w, i)
				}
				next = r.End
			}
			if next != h {
				t.Fatalf("Partition(%d, %d): ranges end at %d", h, w, next)
			}
		}
	}
}

func TestPartitionLastTakesRemainder(t *testing.T) {
	got := Partition(10, 3)
	want := []RowRange{{0, 3}, {3, 6}, {6, 10}}
	assert.Equal(t, want, got)
}

func TestPartitionClampsWorkers(t *testing.T) {
	assert.Equal(t, []RowRange{{0, 5}}, Partition(5, 0))
	assert.Equal(t, []RowRange{{0, 5}}, Partition(5, -2))
	assert.Len(t, Partition(3, 10), 3)
	assert.Nil(t, Partition(0, 4))
}

func TestPartitionDeterministic(t *testing.T) {
	assert.Equal(t, Partition(97, 7), Partition(97, 7))
}
