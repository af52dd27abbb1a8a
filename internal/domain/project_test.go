package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProject(t *testing.T) {
	p, err := NewProject("0123456789abcdef", " Security Hardening ", "  ", testNow)
	require.NoError(t, err)
	assert.Equal(t, "Security Hardening", p.Name)
	assert.Nil(t, p.Description)
	assert.False(t, p.Archived)
	assert.Equal(t, "01234567", p.DisplayID())
}

func TestNewProject_BlankName(t *testing.T) {
	_, err := NewProject("p-1", "\t", "desc", testNow)
	assert.ErrorIs(t, err, ErrValidation)
}
