// Package font loads FIGlet font definitions and renders text as glyph art.
package font

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/common-nighthawk/go-figure"
)

const (
	signature = "flf2a"
	// FIGlet fonts must define every printable ASCII character, space to tilde.
	requiredGlyphs = '~' - ' ' + 1
)

// ErrFontNotFound matches every *NotFoundError.
var ErrFontNotFound = errors.New("font not found")

// NotFoundError reports a font path that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("font not found: %s", e.Path)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrFontNotFound
}

// ParseError reports a font file that exists but is not a usable FIGlet font.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to parse font: %v", e.Err)
	}
	return fmt.Sprintf("failed to parse font %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Header holds the fields of a FIGlet header line that rendering depends on.
type Header struct {
	Hardblank    rune
	Height       int
	Baseline     int
	MaxLength    int
	OldLayout    int
	CommentLines int
}

// Font is a parsed FIGlet font. A nil data slice selects the built-in
// standard font.
type Font struct {
	name   string
	data   []byte
	header Header
}

// Standard returns the FIGlet "standard" font bundled with the renderer.
func Standard() *Font {
	return &Font{name: "standard"}
}

// Load reads and validates the FIGlet font at path.
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to read font %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	f.name = path
	return f, nil
}

// Parse validates raw FIGlet font data.
func Parse(data []byte) (*Font, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)

	if !scanner.Scan() {
		return nil, &ParseError{Err: errors.New("empty font file")}
	}
	header, err := parseHeader(scanner.Text())
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	lines := 0
	for scanner.Scan() {
		lines++
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Err: err}
	}
	if want := header.CommentLines + requiredGlyphs*header.Height; lines < want {
		return nil, &ParseError{Err: fmt.Errorf("truncated glyph table: %d lines, need %d", lines, want)}
	}

	return &Font{data: data, header: header}, nil
}

func parseHeader(line string) (Header, error) {
	if !strings.HasPrefix(line, signature) || len(line) <= len(signature) {
		return Header{}, fmt.Errorf("missing %q signature", signature)
	}

	fields := strings.Fields(line[len(signature)+1:])
	if len(fields) < 5 {
		return Header{}, fmt.Errorf("header has %d fields, need at least 5", len(fields))
	}

	nums := make([]int, 5)
	for i := range nums {
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			return Header{}, fmt.Errorf("invalid header field %d: %w", i+2, err)
		}
		nums[i] = n
	}

	h := Header{
		Hardblank:    rune(line[len(signature)]),
		Height:       nums[0],
		Baseline:     nums[1],
		MaxLength:    nums[2],
		OldLayout:    nums[3],
		CommentLines: nums[4],
	}
	if h.Height < 1 {
		return Header{}, fmt.Errorf("invalid height %d", h.Height)
	}
	if h.CommentLines < 0 {
		return Header{}, fmt.Errorf("invalid comment line count %d", h.CommentLines)
	}
	return h, nil
}

// Name is the font's file path, or "standard" for the built-in font.
func (f *Font) Name() string {
	return f.name
}

// Header returns the parsed header. It is zero for the built-in font.
func (f *Font) Header() Header {
	return f.header
}

// Render returns text as glyph art, one string per row, with trailing blank
// rows removed.
func (f *Font) Render(text string) (lines []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			lines, err = nil, &ParseError{Path: f.pathForError(), Err: fmt.Errorf("malformed glyph data: %v", r)}
		}
	}()

	var fig interface{ Slicify() []string }
	if f.data == nil {
		fig = figure.NewFigure(text, "", false)
	} else {
		fig = figure.NewFigureWithFont(text, bytes.NewReader(f.data), false)
	}
	return trimBlankRows(fig.Slicify()), nil
}

func (f *Font) pathForError() string {
	if f.data == nil {
		return ""
	}
	return f.name
}

func trimBlankRows(rows []string) []string {
	end := len(rows)
	for end > 0 && strings.TrimSpace(rows[end-1]) == "" {
		end--
	}
	return rows[:end]
}
