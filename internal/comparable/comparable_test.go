package comparable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type intBox int

func (b intBox) CompareTo(other interface{}) int {
	o, ok := other.(intBox)
	if !ok {
		return 0
	}
	switch {
	case b < o:
		return -1
	case b > o:
		return 1
	default:
		return 0
	}
}

func TestHoldsComparable(t *testing.T) {
	assert.True(t, Is(intBox(1)).LessThan(intBox(2)))
	assert.False(t, Is(intBox(2)).LessThan(intBox(1)))
	assert.True(t, Is(intBox(5)).EqualTo(intBox(5)))
	assert.False(t, Is(intBox(5)).EqualTo(intBox(6)))
}
