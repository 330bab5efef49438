package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_ReadLine(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrompter(strings.NewReader("  us \r\n\n"), out)

	line, err := p.ReadLine(context.Background(), "Country:")
	require.NoError(t, err)
	assert.Equal(t, "us", line)

	line, err = p.ReadLine(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, line)

	_, err = p.ReadLine(context.Background(), "More:")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "Country:\nMore:\n", out.String())
}

func TestPrompter_ReadInt(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrompter(strings.NewReader("abc\n\n42\n"), out)

	n, err := p.ReadInt(context.Background(), "Number:")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	assert.Equal(t, "Number:\nPlease enter a number.\n"+
		"Number:\nPlease enter a number.\n"+
		"Number:\n", out.String())

	_, err = p.ReadInt(context.Background(), "Number:")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompter_Canceled(t *testing.T) {
	rd, wr := io.Pipe()
	defer wr.Close()

	p := NewPrompter(rd, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.ReadLine(ctx, "Waiting:")
	assert.ErrorIs(t, err, context.Canceled)
}
