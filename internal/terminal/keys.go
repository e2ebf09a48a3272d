package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// Key is a decoded key press.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// ErrInterrupted is returned by ReadKey when Ctrl+C is pressed. In raw mode
// the terminal does not raise SIGINT, so the caller decides how to exit.
var ErrInterrupted = errors.New("interrupted")

// ReadKey blocks until one key is available. When the input is a terminal
// outside EnterRaw it is switched to raw mode for the duration of the read,
// so the key is not echoed.
func (c *Console) ReadKey() (Key, error) {
	if fd, ok := c.inputFd(); ok && !c.raw {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return KeyUnknown, fmt.Errorf("failed to enter raw mode: %w", err)
		}
		defer term.Restore(fd, oldState)
	}
	return decodeKey(c.reader)
}

// EnterRaw keeps a terminal input in raw mode until the returned function is
// called, so keys typed between reads are not echoed either. Lines end in
// "\r\n" meanwhile. Without a terminal on the input side it does nothing.
// The returned function is safe to call more than once.
func (c *Console) EnterRaw() (func(), error) {
	fd, ok := c.inputFd()
	if !ok || c.raw {
		return func() {}, nil
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	c.raw = true
	return func() {
		if c.raw {
			_ = term.Restore(fd, oldState)
			c.raw = false
		}
	}, nil
}

func (c *Console) inputFd() (int, bool) {
	f, ok := c.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	return int(f.Fd()), true
}

// lineEnd is "\r\n" in raw mode, where the terminal no longer maps "\n".
func (c *Console) lineEnd() string {
	if c.raw {
		return "\r\n"
	}
	return "\n"
}

func decodeKey(r *bufio.Reader) (Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return KeyUnknown, fmt.Errorf("failed to read key: %w", err)
	}

	switch {
	case b == 3: // Ctrl+C
		return KeyUnknown, ErrInterrupted

	case b == '\r' || b == '\n':
		if b == '\r' && r.Buffered() > 0 {
			if next, _ := r.Peek(1); len(next) == 1 && next[0] == '\n' {
				_, _ = r.ReadByte()
			}
		}
		return KeyEnter, nil

	case b == 0x1b:
		// A lone Esc arrives on its own; arrow keys arrive as one burst.
		if r.Buffered() == 0 {
			return KeyEscape, nil
		}
		next, _ := r.ReadByte()
		if next != '[' && next != 'O' {
			_ = r.UnreadByte()
			return KeyEscape, nil
		}
		return decodeSequence(r), nil

	case b >= 0x80:
		// Swallow the rest of a multi-byte rune.
		_ = r.UnreadByte()
		_, _, _ = r.ReadRune()
	}
	return KeyUnknown, nil
}

// decodeSequence consumes a CSI/SS3 sequence up to its final byte.
func decodeSequence(r *bufio.Reader) Key {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return KeyUnknown
		}
		if b < 0x40 || b > 0x7e {
			continue
		}
		switch b {
		case 'A':
			return KeyUp
		case 'B':
			return KeyDown
		default:
			return KeyUnknown
		}
	}
}
