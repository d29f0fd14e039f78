package input

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

// oneByteReader delivers one byte per Read call, exercising short reads.
type oneByteReader struct {
	data []byte
}

func (r *oneByteReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	p[0] = r.data[0]
	r.data = r.data[1:]
	return 1, nil
}

// dataThenErrReader returns its data and an error in the same call.
type dataThenErrReader struct {
	data []byte
	err  error
	done bool
}

func (r *dataThenErrReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, r.err
	}
	r.done = true
	n := copy(p, r.data)
	return n, r.err
}

// noProgressReader returns (0, nil) forever.
type noProgressReader struct{}

func (noProgressReader) Read(p []byte) (int, error) {
	return 0, nil
}

func drain(t *testing.T, b *Buffer) []byte {
	t.Helper()
	var got []byte
	for {
		c, err := b.Next()
		if err == io.EOF {
			return got
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		got = append(got, c)
	}
}

func TestBuffer_ReadsAllBytes(t *testing.T) {
	input := "hello, buffered world"
	b := NewBuffer(strings.NewReader(input), 4)

	if got := drain(t, b); string(got) != input {
		t.Errorf("drained %q, want %q", got, input)
	}
}

func TestBuffer_EOFIsSticky(t *testing.T) {
	b := NewBuffer(strings.NewReader("x"), 0)
	_ = drain(t, b)

	for i := 0; i < 3; i++ {
		if _, err := b.Next(); err != io.EOF {
			t.Fatalf("Next after EOF = %v, want io.EOF", err)
		}
	}
}

func TestBuffer_EmptySource(t *testing.T) {
	b := NewBuffer(strings.NewReader(""), 0)
	if _, err := b.Next(); err != io.EOF {
		t.Errorf("Next on empty source = %v, want io.EOF", err)
	}
}

func TestBuffer_ShortReads(t *testing.T) {
	input := []byte("short reads are valid and not retried to fill")
	b := NewBuffer(&oneByteReader{data: input}, 8)

	if got := drain(t, b); !bytes.Equal(got, input) {
		t.Errorf("drained %q, want %q", got, input)
	}
}

func TestBuffer_StableOffsets(t *testing.T) {
	input := "0123456789abcdef"
	b := NewBuffer(strings.NewReader(input), 3)
	_ = drain(t, b)

	if b.Len() != len(input) {
		t.Fatalf("Len = %d, want %d", b.Len(), len(input))
	}
	if got := string(b.Window(0, b.Len())); got != input {
		t.Errorf("Window(0, Len) = %q, want %q", got, input)
	}
	if got := string(b.Window(4, 10)); got != "456789" {
		t.Errorf("Window(4, 10) = %q, want %q", got, "456789")
	}
}

func TestBuffer_Backtrack(t *testing.T) {
	b := NewBuffer(strings.NewReader("abcdef"), 2)

	for i := 0; i < 5; i++ {
		if _, err := b.Next(); err != nil {
			t.Fatal(err)
		}
	}
	if b.Pos() != 5 {
		t.Fatalf("Pos = %d, want 5", b.Pos())
	}

	b.SetPos(2)
	c, err := b.Next()
	if err != nil {
		t.Fatal(err)
	}
	if c != 'c' {
		t.Errorf("after SetPos(2), Next = %q, want 'c'", c)
	}
}

func TestBuffer_ReadErrorPropagates(t *testing.T) {
	wantErr := errors.New("transport down")
	b := NewBuffer(&dataThenErrReader{err: wantErr, done: true}, 0)

	_, err := b.Next()
	if !errors.Is(err, wantErr) {
		t.Errorf("Next err = %v, want wrapped %v", err, wantErr)
	}
}

func TestBuffer_DataBeforeError(t *testing.T) {
	wantErr := errors.New("transport down")
	b := NewBuffer(&dataThenErrReader{data: []byte("ab"), err: wantErr}, 8)

	for _, want := range []byte("ab") {
		c, err := b.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if c != want {
			t.Fatalf("Next = %q, want %q", c, want)
		}
	}
	if _, err := b.Next(); !errors.Is(err, wantErr) {
		t.Errorf("Next after data = %v, want wrapped %v", err, wantErr)
	}
}

func TestBuffer_DataWithEOFInSameRead(t *testing.T) {
	b := NewBuffer(&dataThenErrReader{data: []byte("xy"), err: io.EOF}, 8)

	if got := drain(t, b); string(got) != "xy" {
		t.Errorf("drained %q, want %q", got, "xy")
	}
}

func TestBuffer_NoProgress(t *testing.T) {
	b := NewBuffer(noProgressReader{}, 0)

	_, err := b.Next()
	if !errors.Is(err, io.ErrNoProgress) {
		t.Errorf("Next = %v, want io.ErrNoProgress", err)
	}
}
