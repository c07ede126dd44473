// FILE: lixenwraith/ini/parser.go
package ini

import (
	"fmt"
	"strings"
)

// DefaultCommentMarker starts a whole-line comment unless overridden.
const DefaultCommentMarker = ";"

// lineKind is the classification of one trimmed source line.
type lineKind int

const (
	lineSkip lineKind = iota // blank or comment
	lineSection
	lineKeyValue // candidate, validated by the parser
)

// parseState is the parser's position relative to section headers.
type parseState int

const (
	stateOutsideSection parseState = iota
	stateInsideSection
)

// Parser turns a sequence of INI lines into a Document.
// The zero value is not usable; create one with NewParser.
type Parser struct {
	commentMarkers []string
}

// NewParser creates a parser recognizing the given comment markers.
// Empty markers are ignored; with none left, DefaultCommentMarker is used.
func NewParser(commentMarkers ...string) *Parser {
	p := &Parser{}
	for _, m := range commentMarkers {
		if m != "" {
			p.commentMarkers = append(p.commentMarkers, m)
		}
	}
	if len(p.commentMarkers) == 0 {
		p.commentMarkers = []string{DefaultCommentMarker}
	}
	return p
}

// CommentMarkers returns the markers the parser treats as comments.
func (p *Parser) CommentMarkers() []string {
	out := make([]string, len(p.commentMarkers))
	copy(out, p.commentMarkers)
	return out
}

// classify decides what a trimmed line is. It has no side effects.
func (p *Parser) classify(line string) lineKind {
	if line == "" {
		return lineSkip
	}
	for _, marker := range p.commentMarkers {
		if strings.HasPrefix(line, marker) {
			return lineSkip
		}
	}
	if len(line) >= 2 && strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
		return lineSection
	}
	return lineKeyValue
}

// parse runs the section state machine over src.
func (p *Parser) parse(src lineSource) (*Document, error) {
	doc := NewDocument()
	state := stateOutsideSection
	var current *Section
	lineNum := 0

	for src.Scan() {
		lineNum++
		raw := src.Text()
		if lineNum == 1 {
			raw = stripBOM(raw)
		}
		line := strings.TrimSpace(raw)

		switch p.classify(line) {
		case lineSkip:
			continue

		case lineSection:
			name := strings.TrimSpace(line[1 : len(line)-1])
			if name == "" {
				return nil, &ParseError{Line: lineNum, Kind: ErrInvalidSectionHeader, Text: line}
			}
			current = doc.Ensure(name)
			state = stateInsideSection

		case lineKeyValue:
			if state == stateOutsideSection {
				return nil, &ParseError{Line: lineNum, Kind: ErrMissingSectionHeader, Text: line}
			}
			key, value, ok := splitKeyValue(line)
			if !ok {
				return nil, &ParseError{Line: lineNum, Kind: ErrInvalidKeyValuePair, Text: line}
			}
			current.Set(key, value)
		}
	}

	if err := src.Err(); err != nil {
		return nil, fmt.Errorf("failed to read line %d: %w", lineNum+1, err)
	}

	return doc, nil
}

// splitKeyValue splits on the first '='. The key must be non-empty after
// trimming; the value may be empty.
func splitKeyValue(line string) (key, value string, ok bool) {
	idx := strings.IndexByte(line, '=')
	if idx < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:idx])
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(line[idx+1:]), true
}

// checkSection reports whether a section name survives a write and re-parse.
func (p *Parser) checkSection(section string) error {
	if strings.ContainsAny(section, "\r\n") {
		return fmt.Errorf("%w: section %q: line breaks are not allowed", ErrInvalidEntry, section)
	}
	header := "[" + section + "]"
	if p.classify(header) != lineSection || strings.TrimSpace(header[1:len(header)-1]) != section {
		return fmt.Errorf("%w: section name %q", ErrInvalidEntry, section)
	}
	return nil
}

// checkEntry reports whether section, key and value survive a write and
// re-parse with this parser's rules unchanged. Surrounding whitespace of
// value is not preserved and is not an error.
func (p *Parser) checkEntry(section, key, value string) error {
	if err := p.checkSection(section); err != nil {
		return err
	}
	if strings.ContainsAny(key, "\r\n") {
		return fmt.Errorf("%w: key %q: line breaks are not allowed", ErrInvalidEntry, key)
	}
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("%w: value of %q: line breaks are not allowed", ErrInvalidEntry, JoinAddress(section, key))
	}

	line := strings.TrimSpace(key + "=" + value)
	if p.classify(line) != lineKeyValue {
		return fmt.Errorf("%w: key %q would not be read back as a key", ErrInvalidEntry, key)
	}
	k, v, ok := splitKeyValue(line)
	if !ok || k != key || v != strings.TrimSpace(value) {
		return fmt.Errorf("%w: key %q would not be read back as a key", ErrInvalidEntry, key)
	}
	return nil
}
