package dbg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameIsStablePerPointer(t *testing.T) {
	a, b := new(int), new(int)
	nameA := Name(a)
	assert.Equal(t, nameA, Name(a))
	assert.NotEmpty(t, Name(b))
	assert.Equal(t, strings.ToUpper(nameA[:1]), nameA[:1])
}

func TestNameOfNil(t *testing.T) {
	var p *int
	assert.Equal(t, "Ø", Name(p))
	assert.Equal(t, "Ø", Name(nil))
}

func TestLabel(t *testing.T) {
	label := Label()
	assert.Len(t, strings.Split(label, "-"), 2)
}
