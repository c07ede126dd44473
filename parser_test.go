// FILE: lixenwraith/ini/parser_test.go
package ini

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strategies = []LoadStrategy{StrategyEager, StrategyStreaming}

// TestClassify tests line classification
func TestClassify(t *testing.T) {
	p := NewParser()
	tests := []struct {
		line string
		want lineKind
	}{
		{"", lineSkip},
		{"; comment", lineSkip},
		{";", lineSkip},
		{"[Section]", lineSection},
		{"[]", lineSection},
		{"[", lineKeyValue},
		{"[Section", lineKeyValue},
		{"[a=b", lineKeyValue},
		{"key=value", lineKeyValue},
		{"noequals", lineKeyValue},
		{"# not a comment by default", lineKeyValue},
		{"]", lineKeyValue},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, p.classify(tt.line))
		})
	}

	t.Run("CustomMarkers", func(t *testing.T) {
		p := NewParser(";", "#", "")
		assert.Equal(t, []string{";", "#"}, p.CommentMarkers())
		assert.Equal(t, lineSkip, p.classify("# hash comment"))
		assert.Equal(t, lineSkip, p.classify("; semicolon comment"))
	})

	t.Run("EmptyMarkersFallBackToDefault", func(t *testing.T) {
		p := NewParser("")
		assert.Equal(t, []string{DefaultCommentMarker}, p.CommentMarkers())
	})
}

// TestParseWellFormed tests parsing valid documents with both strategies
func TestParseWellFormed(t *testing.T) {
	for _, strategy := range strategies {
		t.Run(strategy.String(), func(t *testing.T) {
			t.Run("Sample", func(t *testing.T) {
				doc, err := Parse(strings.NewReader(sampleINI), strategy)
				require.NoError(t, err)

				assert.Equal(t, []string{"Settings", "Profile"}, doc.SectionNames())
				assert.Equal(t, map[string]map[string]string{
					"Settings": {"Theme": "Dark", "AutoSave": "True"},
					"Profile":  {"Name": "John", "Age": "30"},
				}, doc.Map())
			})

			t.Run("EmptySource", func(t *testing.T) {
				doc, err := Parse(strings.NewReader(""), strategy)
				require.NoError(t, err)
				assert.Equal(t, 0, doc.Len())
			})

			t.Run("OnlyCommentsAndBlanks", func(t *testing.T) {
				doc, err := Parse(strings.NewReader("; one\n\n   \n; two\n"), strategy)
				require.NoError(t, err)
				assert.Equal(t, 0, doc.Len())
			})

			t.Run("TrimmingAndFirstEquals", func(t *testing.T) {
				src := "  [  Server  ]  \n  host  =  example.com  \n url = a=b=c \n"
				doc, err := Parse(strings.NewReader(src), strategy)
				require.NoError(t, err)

				host, ok := doc.Get("Server", "host")
				assert.True(t, ok)
				assert.Equal(t, "example.com", host)

				url, _ := doc.Get("Server", "url")
				assert.Equal(t, "a=b=c", url)
			})

			t.Run("EmptyValueAllowed", func(t *testing.T) {
				doc, err := Parse(strings.NewReader("[S]\nkey=\nother =   \n"), strategy)
				require.NoError(t, err)

				v, ok := doc.Get("S", "key")
				assert.True(t, ok)
				assert.Equal(t, "", v)
				v, ok = doc.Get("S", "other")
				assert.True(t, ok)
				assert.Equal(t, "", v)
			})

			t.Run("DuplicateKeyLastWins", func(t *testing.T) {
				doc, err := Parse(strings.NewReader("[S]\na=1\na=2\n"), strategy)
				require.NoError(t, err)
				v, _ := doc.Get("S", "a")
				assert.Equal(t, "2", v)
			})

			t.Run("RedeclaredSectionKeepsEarlierKeys", func(t *testing.T) {
				src := "[A]\nx=1\ny=2\n[B]\nz=3\n[A]\nx=9\n"
				doc, err := Parse(strings.NewReader(src), strategy)
				require.NoError(t, err)

				assert.Equal(t, []string{"A", "B"}, doc.SectionNames())
				a, _ := doc.Section("A")
				assert.Equal(t, map[string]string{"x": "9", "y": "2"}, a.Map())
				assert.Equal(t, []string{"x", "y"}, a.Keys())
			})

			t.Run("UnclosedBracketIsKey", func(t *testing.T) {
				doc, err := Parse(strings.NewReader("[S]\n[a=b\n"), strategy)
				require.NoError(t, err)
				v, ok := doc.Get("S", "[a")
				assert.True(t, ok)
				assert.Equal(t, "b", v)
			})

			t.Run("CaseSensitiveNames", func(t *testing.T) {
				doc, err := Parse(strings.NewReader("[s]\nk=lower\n[S]\nK=upper\n"), strategy)
				require.NoError(t, err)
				assert.Equal(t, 2, doc.Len())
				_, ok := doc.Get("s", "K")
				assert.False(t, ok)
			})

			t.Run("CRLFAndBOM", func(t *testing.T) {
				doc, err := Parse(strings.NewReader("\ufeff[S]\r\na=1\r\n"), strategy)
				require.NoError(t, err)
				v, ok := doc.Get("S", "a")
				assert.True(t, ok)
				assert.Equal(t, "1", v)
			})
		})
	}
}

// TestParseErrors tests the error kind and line number of malformed input
func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind error
		line int
	}{
		{"KeyBeforeSection", "key=value", ErrMissingSectionHeader, 1},
		{"KeyAfterComments", "; c\n\nkey=value\n[S]", ErrMissingSectionHeader, 3},
		{"NoEqualsSign", "[S]\nnoequalsign", ErrInvalidKeyValuePair, 2},
		{"EmptyKey", "[S]\n=value", ErrInvalidKeyValuePair, 2},
		{"BlankKey", "[S]\n   = value", ErrInvalidKeyValuePair, 2},
		{"EmptySectionName", "[]", ErrInvalidSectionHeader, 1},
		{"BlankSectionName", "[S]\na=1\n[   ]", ErrInvalidSectionHeader, 3},
		{"UnclosedHeaderWithoutEquals", "[S]\na=1\n\n[Broken", ErrInvalidKeyValuePair, 4},
		{"UnclosedHeaderBeforeSection", "[a=b\n[S]", ErrMissingSectionHeader, 1},
		{"HashWithoutMarker", "[S]\n# note", ErrInvalidKeyValuePair, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, strategy := range strategies {
				doc, err := Parse(strings.NewReader(tt.src), strategy)
				require.Error(t, err, strategy.String())
				assert.Nil(t, doc)

				var perr *ParseError
				require.True(t, errors.As(err, &perr), strategy.String())
				assert.Equal(t, tt.line, perr.Line, strategy.String())
				assert.ErrorIs(t, err, tt.kind)
				assert.ErrorIs(t, err, ErrParse)
				assert.True(t, strings.HasPrefix(err.Error(), fmt.Sprintf("line %d: ", tt.line)), err.Error())
			}
		})
	}
}

// TestStrategyEquivalence tests that both strategies agree on content and errors
func TestStrategyEquivalence(t *testing.T) {
	sources := []string{
		sampleINI,
		"",
		"; only a comment",
		"[A]\nx=1\n[B]\n[A]\ny=\n",
		"[A]\nx=1\n\n; c\n[B]\nbad line\n",
		"orphan=1\n[A]\n",
		"[A]\n[\n",
	}

	for i, src := range sources {
		eager, eagerErr := Parse(strings.NewReader(src), StrategyEager)
		streaming, streamErr := Parse(strings.NewReader(src), StrategyStreaming)

		if eagerErr != nil || streamErr != nil {
			var pe, ps *ParseError
			require.True(t, errors.As(eagerErr, &pe), "source %d", i)
			require.True(t, errors.As(streamErr, &ps), "source %d", i)
			assert.Equal(t, pe.Line, ps.Line, "source %d", i)
			assert.Equal(t, pe.Kind, ps.Kind, "source %d", i)
			continue
		}

		assert.Equal(t, eager.SectionNames(), streaming.SectionNames(), "source %d", i)
		assert.Equal(t, eager.Map(), streaming.Map(), "source %d", i)
		assert.Equal(t, Serialize(eager), Serialize(streaming), "source %d", i)
	}
}

// TestParseLineTooLong tests the line size cap
func TestParseLineTooLong(t *testing.T) {
	src := "[S]\nk=" + strings.Repeat("a", MaxLineSize+1) + "\n"
	for _, strategy := range strategies {
		_, err := Parse(strings.NewReader(src), strategy)
		require.Error(t, err)
		assert.ErrorIs(t, err, bufio.ErrTooLong)

		var perr *ParseError
		assert.False(t, errors.As(err, &perr))
	}
}

// TestParseUnknownStrategy tests rejection of an undefined strategy
func TestParseUnknownStrategy(t *testing.T) {
	_, err := Parse(strings.NewReader(sampleINI), LoadStrategy(42))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown load strategy")
}

// TestParseFile tests loading through a FileSystem
func TestParseFile(t *testing.T) {
	t.Run("EagerUsesReadFile", func(t *testing.T) {
		fs := new(mockFileSystem)
		fs.On("ReadFile", "app.ini").Return([]byte(sampleINI), nil)

		doc, err := NewParser().ParseFile(fs, "app.ini", StrategyEager)
		require.NoError(t, err)
		assert.Equal(t, 2, doc.Len())
		fs.AssertExpectations(t)
		fs.AssertNotCalled(t, "Open", "app.ini")
	})

	t.Run("StreamingClosesHandle", func(t *testing.T) {
		reader := newTrackingReader(sampleINI)
		fs := new(mockFileSystem)
		fs.On("Open", "app.ini").Return(reader, nil)

		doc, err := NewParser().ParseFile(fs, "app.ini", StrategyStreaming)
		require.NoError(t, err)
		assert.Equal(t, 2, doc.Len())
		assert.True(t, reader.closed)
	})

	t.Run("StreamingClosesHandleOnParseError", func(t *testing.T) {
		reader := newTrackingReader("[S]\nbroken\nmore=1\n")
		fs := new(mockFileSystem)
		fs.On("Open", "app.ini").Return(reader, nil)

		_, err := NewParser().ParseFile(fs, "app.ini", StrategyStreaming)
		assert.ErrorIs(t, err, ErrInvalidKeyValuePair)
		assert.True(t, reader.closed)
	})

	t.Run("MissingFile", func(t *testing.T) {
		for _, strategy := range strategies {
			fs := new(mockFileSystem)
			fs.On("ReadFile", "missing.ini").Return(nil, os.ErrNotExist)
			fs.On("Open", "missing.ini").Return(nil, os.ErrNotExist)

			_, err := NewParser().ParseFile(fs, "missing.ini", strategy)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrStorage)
			assert.ErrorIs(t, err, ErrConfigNotFound)
			assert.ErrorIs(t, err, os.ErrNotExist)

			var serr *StorageError
			require.True(t, errors.As(err, &serr))
			assert.Equal(t, "read", serr.Op)
			assert.Equal(t, "missing.ini", serr.Path)
		}
	})

	t.Run("UnreadableIsNotParseError", func(t *testing.T) {
		fs := new(mockFileSystem)
		fs.On("ReadFile", "locked.ini").Return(nil, os.ErrPermission)

		_, err := NewParser().ParseFile(fs, "locked.ini", StrategyEager)
		assert.ErrorIs(t, err, ErrStorage)
		assert.ErrorIs(t, err, os.ErrPermission)
		assert.NotErrorIs(t, err, ErrParse)
		assert.NotErrorIs(t, err, ErrConfigNotFound)
	})
}
