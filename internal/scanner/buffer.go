package scanner

import (
	"bufio"
	"fmt"
	"io"
)

const eof = -1

// lineBuffer holds one physical line of source text at a time and hands it
// out a character at a time, reading the next line when the current one is
// exhausted.
type lineBuffer struct {
	reader  *bufio.Reader
	echo    bool
	listing io.Writer

	line    string // current raw line, including its newline if any
	pos     int    // cursor into line, always in [0, len(line)]
	lineNum int    // bumped once per physical line read
	atEOF   bool   // latched at end of input; disables unread
}

func newLineBuffer(source io.Reader, echo bool, listing io.Writer) *lineBuffer {
	return &lineBuffer{
		reader:  bufio.NewReader(source),
		echo:    echo,
		listing: listing,
	}
}

// next returns the character at the cursor and advances it, refilling the
// buffer from the source when exhausted. Once the input is drained it
// returns eof on every call.
func (b *lineBuffer) next() rune {
	if b.atEOF {
		return eof
	}
	if b.pos >= len(b.line) {
		line, err := b.reader.ReadString('\n')
		if len(line) == 0 && err != nil {
			b.atEOF = true
			return eof
		}
		b.lineNum++
		if b.echo {
			fmt.Fprintf(b.listing, "%4d: %s", b.lineNum, line)
		}
		b.line = line
		b.pos = 0
	}
	c := rune(b.line[b.pos])
	b.pos++
	return c
}

// unread backs the cursor up one character. After the end-of-input latch it
// is a no-op, so repeated calls past EOF cannot corrupt the cursor. The
// scanner issues at most one unread per character consumed.
func (b *lineBuffer) unread() {
	if !b.atEOF {
		b.pos--
	}
}
