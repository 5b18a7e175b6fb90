package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcat2(t *testing.T) {
	assert := assert.New(t)

	a := slices.All([]string{"a", "b"})
	b := slices.All([]string{"c"})

	var keys []int
	var values []string
	for k, v := range Concat2(a, b) {
		keys = append(keys, k)
		values = append(values, v)
	}
	assert.Equal([]int{0, 1, 0}, keys)
	assert.Equal([]string{"a", "b", "c"}, values)

	// Stops when the consumer does.
	count := 0
	for range Concat2(a, b) {
		count++
		break
	}
	assert.Equal(1, count)
}

func TestSorted2(t *testing.T) {
	assert := assert.New(t)

	var keys []string
	for k, v := range Sorted2(maps.All(map[string]int{"x5": 5, "a0": 10, "ra": 1})) {
		keys = append(keys, k)
		assert.NotZero(v)
	}
	assert.Equal([]string{"a0", "ra", "x5"}, keys)
}
