package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDash(t *testing.T) {
	assert.Equal(t, []string{"branch"}, withDash([]string{"branch"}, -1))
	assert.Equal(t, []string{"--", "a.txt"}, withDash([]string{"a.txt"}, 0))
	assert.Equal(t, []string{"abc123", "--", "a.txt"}, withDash([]string{"abc123", "a.txt"}, 1))
}

func TestOperands(t *testing.T) {
	check := operands(1, 2)

	assert.Equal(t, errOperands, check(rootCmd, nil))
	assert.NoError(t, check(rootCmd, []string{"a"}))
	assert.NoError(t, check(rootCmd, []string{"a", "b"}))
	assert.Equal(t, errOperands, check(rootCmd, []string{"a", "b", "c"}))
}
