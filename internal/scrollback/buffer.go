// Package scrollback holds the console's output as a sequence of styled
// segments grouped into command blocks.
//
// A command block is four segments opened together: a spacer line, the
// command echo, an empty stderr accumulator and an empty stdout
// accumulator. Output chunks are appended to the newest accumulator of the
// matching stream, so only the most recently opened block ever grows.
//
// Buffer is not safe for concurrent use. It is owned by the UI event loop,
// which is its only writer.
package scrollback

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrNoOpenBlock means output arrived while no command block was open.
	ErrNoOpenBlock = errors.New("no open command block")
	// ErrNotAStream is returned when appending to a non-stream style.
	ErrNotAStream = errors.New("style is not an output stream")
)

// Buffer is the scrollback. Segments are kept in display order; the
// newest segment is last.
type Buffer struct {
	segs []Segment
}

// New returns an empty buffer.
func New() *Buffer { return &Buffer{} }

// OpenCommandBlock starts a new block for commandText. The empty stderr and
// stdout segments it adds become the targets of subsequent AppendToStream
// calls.
func (b *Buffer) OpenCommandBlock(commandText string) {
	b.segs = append(b.segs,
		Segment{Style: Spacer, Text: "\n"},
		Segment{Style: Command, Text: commandText + "\n"},
		Segment{Style: Stderr},
		Segment{Style: Stdout},
	)
}

// AppendToStream concatenates chunk onto the newest segment of style.
func (b *Buffer) AppendToStream(style Style, chunk string) error {
	if !style.IsStream() {
		return fmt.Errorf("append %s: %w", style, ErrNotAStream)
	}
	for i := len(b.segs) - 1; i >= 0; i-- {
		if b.segs[i].Style == style {
			b.segs[i].Text += chunk
			return nil
		}
	}
	return fmt.Errorf("append %s: %w", style, ErrNoOpenBlock)
}

// PushError adds a standalone error line. Trailing whitespace in message
// is replaced by a single newline.
func (b *Buffer) PushError(message string) {
	b.segs = append(b.segs, Segment{Style: Error, Text: strings.TrimRightFunc(message, unicode.IsSpace) + "\n"})
}

// Clear drops all content.
func (b *Buffer) Clear() { b.segs = nil }

// Render returns a copy of the segments, oldest first.
func (b *Buffer) Render() []Segment {
	out := make([]Segment, len(b.segs))
	copy(out, b.segs)
	return out
}

// Len returns the number of segments.
func (b *Buffer) Len() int { return len(b.segs) }

// String returns the unstyled text of the whole buffer.
func (b *Buffer) String() string {
	var sb strings.Builder
	for _, s := range b.segs {
		sb.WriteString(s.Text)
	}
	return sb.String()
}
