package util

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("boom")
	err := WrapErrorf(orig, ErrNotFound, "node %d", 7)

	assert.Equal(t, "node 7", err.Error())
	assert.ErrorIs(t, err, orig)

	var uerr *Error
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, ErrNotFound, uerr.Code())
}

func TestReverseG(t *testing.T) {
	in := []int{1, 2, 3, 4}
	assert.Equal(t, []int{4, 3, 2, 1}, ReverseG(in))
	assert.Equal(t, []int{1, 2, 3, 4}, in)
	assert.Equal(t, []int{}, ReverseG([]int{}))
}

func TestStopConcurrentOperation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	assert.False(t, StopConcurrentOperation(ctx))
	cancel()
	assert.True(t, StopConcurrentOperation(ctx))
}

func TestReadLine(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("0 31\r\n5 90\n7 8"))

	lines := []string{}
	for {
		line, err := ReadLine(br)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		lines = append(lines, line)
	}
	assert.Equal(t, []string{"0 31", "5 90", "7 8"}, lines)
	assert.Equal(t, []string{"7", "8"}, Fields(" 7\t8 "))
}
