package scanner

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextAcrossLines(t *testing.T) {
	b := newLineBuffer(strings.NewReader("ab\ncd"), false, io.Discard)

	assert.Equal(t, 'a', b.next())
	assert.Equal(t, 1, b.lineNum)
	assert.Equal(t, 'b', b.next())
	assert.Equal(t, '\n', b.next())

	assert.Equal(t, 'c', b.next())
	assert.Equal(t, 2, b.lineNum)
	assert.Equal(t, 'd', b.next())

	assert.Equal(t, rune(eof), b.next())
	assert.Equal(t, rune(eof), b.next())
	assert.Equal(t, 2, b.lineNum)
}

func TestUnread(t *testing.T) {
	b := newLineBuffer(strings.NewReader("xy"), false, io.Discard)

	assert.Equal(t, 'x', b.next())
	assert.Equal(t, 'y', b.next())
	b.unread()
	assert.Equal(t, 'y', b.next())
}

func TestUnreadAfterEOFIsNoop(t *testing.T) {
	b := newLineBuffer(strings.NewReader("x"), false, io.Discard)

	assert.Equal(t, 'x', b.next())
	assert.Equal(t, rune(eof), b.next())

	pos := b.pos
	b.unread()
	b.unread()
	assert.Equal(t, pos, b.pos)
	assert.Equal(t, rune(eof), b.next())
}

func TestEmptySource(t *testing.T) {
	b := newLineBuffer(strings.NewReader(""), false, io.Discard)

	assert.Equal(t, rune(eof), b.next())
	assert.Equal(t, 0, b.lineNum)
}

func TestEchoMissingFinalNewline(t *testing.T) {
	var listing bytes.Buffer
	b := newLineBuffer(strings.NewReader("x"), true, &listing)

	assert.Equal(t, 'x', b.next())
	assert.Equal(t, rune(eof), b.next())
	assert.Equal(t, "   1: x", listing.String())
}
