// FILE: lixenwraith/ini/loader.go
package ini

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// MaxLineSize caps a single source line for both load strategies.
const MaxLineSize = 1 << 20

// LoadStrategy selects how the source is fed to the parser.
type LoadStrategy int

const (
	// StrategyEager reads the whole source up front, then scans the lines.
	StrategyEager LoadStrategy = iota
	// StrategyStreaming reads one line at a time from an open handle.
	// Use it when the file is very large or load latency matters.
	StrategyStreaming
)

func (s LoadStrategy) String() string {
	switch s {
	case StrategyEager:
		return "eager"
	case StrategyStreaming:
		return "streaming"
	default:
		return fmt.Sprintf("LoadStrategy(%d)", int(s))
	}
}

// lineSource is a finite, non-restartable sequence of raw lines.
// *bufio.Scanner satisfies it directly.
type lineSource interface {
	Scan() bool
	Text() string
	Err() error
}

// sliceLines serves lines that were fully materialized beforehand.
type sliceLines struct {
	lines []string
	pos   int
	cur   string
}

func (s *sliceLines) Scan() bool {
	if s.pos >= len(s.lines) {
		return false
	}
	s.cur = s.lines[s.pos]
	s.pos++
	return true
}

func (s *sliceLines) Text() string { return s.cur }
func (s *sliceLines) Err() error   { return nil }

// newLineScanner returns a line scanner honoring MaxLineSize.
func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return scanner
}

// readAllLines splits data into lines with the same rules the streaming
// strategy uses, so both strategies see identical input.
func readAllLines(data []byte) ([]string, error) {
	var lines []string
	scanner := newLineScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Parse reads an INI source from r using the given strategy and the default
// comment marker.
func Parse(r io.Reader, strategy LoadStrategy) (*Document, error) {
	return NewParser().Parse(r, strategy)
}

// Parse reads an INI source from r using the given strategy.
func (p *Parser) Parse(r io.Reader, strategy LoadStrategy) (*Document, error) {
	switch strategy {
	case StrategyEager:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read source: %w", err)
		}
		return p.parseBytes(data)
	case StrategyStreaming:
		return p.parse(newLineScanner(r))
	default:
		return nil, fmt.Errorf("unknown load strategy %v", strategy)
	}
}

// ParseFile loads and parses the file at path through fsys. The read handle
// used by the streaming strategy is released on every exit path.
func (p *Parser) ParseFile(fsys FileSystem, path string, strategy LoadStrategy) (*Document, error) {
	switch strategy {
	case StrategyEager:
		data, err := fsys.ReadFile(path)
		if err != nil {
			return nil, newReadError(path, err)
		}
		doc, err := p.parseBytes(data)
		return doc, wrapReadError(path, err)

	case StrategyStreaming:
		file, err := fsys.Open(path)
		if err != nil {
			return nil, newReadError(path, err)
		}
		defer file.Close()

		doc, err := p.parse(newLineScanner(file))
		return doc, wrapReadError(path, err)

	default:
		return nil, fmt.Errorf("unknown load strategy %v", strategy)
	}
}

func (p *Parser) parseBytes(data []byte) (*Document, error) {
	lines, err := readAllLines(data)
	if err != nil {
		return nil, fmt.Errorf("failed to split source into lines: %w", err)
	}
	return p.parse(&sliceLines{lines: lines})
}

// wrapReadError leaves parse errors untouched and reports anything else as a
// storage failure.
func wrapReadError(path string, err error) error {
	if err == nil {
		return nil
	}
	var perr *ParseError
	if errors.As(err, &perr) {
		return err
	}
	return &StorageError{Op: "read", Path: path, Err: err}
}

func newReadError(path string, err error) *StorageError {
	if errors.Is(err, os.ErrNotExist) {
		err = fmt.Errorf("%w: %w", ErrConfigNotFound, err)
	}
	return &StorageError{Op: "read", Path: path, Err: err}
}
