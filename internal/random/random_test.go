package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Deterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestSeeded_ProducesDistinctReproducibleSources(t *testing.T) {
	f1, f2 := Seeded(7), Seeded(7)

	s1a, s1b := f1(), f1()
	s2a := f2()

	assert.Equal(t, s1a.IntN(1<<30), s2a.IntN(1<<30))
	assert.NotEqual(t, New(7).IntN(1<<30), s1b.IntN(1<<30))
}

func TestIntRange(t *testing.T) {
	src := New(1)
	for i := 0; i < 500; i++ {
		v := IntRange(src, 3, 6)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 6)
	}
	assert.Equal(t, 5, IntRange(src, 5, 5))
	assert.Equal(t, 9, IntRange(src, 9, 2))
}

func TestUniform_Bounds(t *testing.T) {
	src := New(2)
	for i := 0; i < 500; i++ {
		v := Uniform(src, 0.8, 1.2)
		assert.GreaterOrEqual(t, v, 0.8)
		assert.Less(t, v, 1.2)
	}
}

func TestChance(t *testing.T) {
	assert.True(t, Chance(&Scripted{Ints: []int{9}}, 10))   // roll 10
	assert.False(t, Chance(&Scripted{Ints: []int{10}}, 10)) // roll 11
	assert.False(t, Chance(New(3), 0))
	assert.True(t, Chance(New(3), 100))
}

func TestWeighted(t *testing.T) {
	tests := []struct {
		name    string
		weights []int
		roll    int
		want    int
	}{
		{"first bucket", []int{30, 70}, 0, 0},
		{"last of first bucket", []int{30, 70}, 29, 0},
		{"second bucket", []int{30, 70}, 30, 1},
		{"skips zero weights", []int{0, 5, 0, 5}, 5, 3},
		{"all zero", []int{0, 0}, 0, -1},
		{"empty", nil, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Weighted(&Scripted{Ints: []int{tt.roll}}, tt.weights)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 5.5, Round1(5.46))
	assert.Equal(t, 0.0, Round1(0.04))
}
