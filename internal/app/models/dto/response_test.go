package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAPIResponse(t *testing.T) {
	resp := NewAPIResponse(map[string]string{"name": "김서연"})

	assert.Equal(t, map[string]string{"name": "김서연"}, resp.Data)
	assert.Nil(t, resp.Error)
	assert.False(t, resp.Timestamp.IsZero())
}
