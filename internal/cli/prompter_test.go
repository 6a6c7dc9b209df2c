package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNonBlockingReader_ReadLine(t *testing.T) {
	reader := NewNonBlockingReader(strings.NewReader("hello world\n"))

	line, err := reader.ReadLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello world", line)
}

func TestNonBlockingReader_CancelledContext(t *testing.T) {
	// A reader that never produces a delimiter blocks until the
	// context gives up.
	block := make(chan struct{})
	t.Cleanup(func() { close(block) })

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	reader := NewNonBlockingReader(blockingReader{unblock: block})
	_, err := reader.ReadLine(ctx)
	assert.ErrorIs(t, err, ErrInputCancelled)
}

type blockingReader struct {
	unblock chan struct{}
}

func (r blockingReader) Read([]byte) (int, error) {
	<-r.unblock
	return 0, nil
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{name: "explicit yes", input: "y\n", want: true},
		{name: "explicit yes word", input: "yes\n", want: true},
		{name: "explicit no", input: "n\n", defaultYes: true, want: false},
		{name: "empty takes default no", input: "\n", want: false},
		{name: "empty takes default yes", input: "\n", defaultYes: true, want: true},
		{name: "garbage is no", input: "sure\n", defaultYes: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := &Prompter{
				reader: NewNonBlockingReader(strings.NewReader(tt.input)),
				writer: &out,
			}

			got, err := p.Confirm(context.Background(), "delete it?", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "delete it?")
		})
	}
}

func TestLine_RendersPrompt(t *testing.T) {
	var out bytes.Buffer
	p := &Prompter{
		reader: NewNonBlockingReader(strings.NewReader("a@b.c\n")),
		writer: &out,
	}

	got, err := p.Line(context.Background(), "email")
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", got)
	assert.Contains(t, out.String(), "email")
}
