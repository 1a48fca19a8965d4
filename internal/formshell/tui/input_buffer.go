package tui

import "unicode"

// AnswerBuffer is a single-line rune editor for typed answers. Enter submits
// rather than inserting a newline, so the buffer never grows vertically.
type AnswerBuffer struct {
	runes []rune
	col   int
}

func NewAnswerBuffer() AnswerBuffer {
	return AnswerBuffer{}
}

func (b *AnswerBuffer) SetText(text string) {
	b.runes = []rune(text)
	b.col = len(b.runes)
}

func (b *AnswerBuffer) Text() string {
	return string(b.runes)
}

func (b *AnswerBuffer) Empty() bool {
	return len(b.runes) == 0
}

func (b *AnswerBuffer) InsertRune(r rune) {
	if r == '\n' || r == '\r' {
		return
	}
	b.clampCol()
	b.runes = append(b.runes[:b.col], append([]rune{r}, b.runes[b.col:]...)...)
	b.col++
}

func (b *AnswerBuffer) Backspace() {
	if b.col == 0 {
		return
	}
	b.clampCol()
	b.runes = append(b.runes[:b.col-1], b.runes[b.col:]...)
	b.col--
}

func (b *AnswerBuffer) MoveLeft() {
	if b.col > 0 {
		b.col--
	}
}

func (b *AnswerBuffer) MoveRight() {
	if b.col < len(b.runes) {
		b.col++
	}
}

func (b *AnswerBuffer) MoveHome() { b.col = 0 }

func (b *AnswerBuffer) MoveEnd() { b.col = len(b.runes) }

func (b *AnswerBuffer) MoveWordLeft() {
	i := b.col
	for i > 0 && unicode.IsSpace(b.runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(b.runes[i-1]) {
		i--
	}
	b.col = i
}

func (b *AnswerBuffer) MoveWordRight() {
	i := b.col
	for i < len(b.runes) && !unicode.IsSpace(b.runes[i]) {
		i++
	}
	for i < len(b.runes) && unicode.IsSpace(b.runes[i]) {
		i++
	}
	b.col = i
}

func (b *AnswerBuffer) DeleteWordLeft() {
	if b.col == 0 {
		return
	}
	i := b.col
	for i > 0 && unicode.IsSpace(b.runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(b.runes[i-1]) {
		i--
	}
	b.runes = append(b.runes[:i], b.runes[b.col:]...)
	b.col = i
}

func (b *AnswerBuffer) Clear() {
	b.runes = nil
	b.col = 0
}

// Render returns the buffer contents with a cursor marker at the edit point.
func (b *AnswerBuffer) Render() string {
	b.clampCol()
	out := make([]rune, 0, len(b.runes)+1)
	out = append(out, b.runes[:b.col]...)
	out = append(out, '|')
	out = append(out, b.runes[b.col:]...)
	return string(out)
}

// CursorPosition returns the 1-based cursor column.
func (b *AnswerBuffer) CursorPosition() int {
	return b.col + 1
}

func (b *AnswerBuffer) clampCol() {
	if b.col < 0 {
		b.col = 0
	}
	if b.col > len(b.runes) {
		b.col = len(b.runes)
	}
}
