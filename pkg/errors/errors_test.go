package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	e1 := New("root cause")
	e2 := New("intermediate").Wrap(e1)
	e := New("top").Wrap(e2)
	assert.True(t, Is(e, e1))
	assert.True(t, Is(e, e2))
	assert.True(t, e.Unwrap() == e2)
	assert.Equal(t, "top", e.Error())

	var target *Error
	assert.True(t, As(e, &target))
}
