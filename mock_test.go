// FILE: lixenwraith/ini/mock_test.go
package ini

import (
	"io"
	"strings"

	"github.com/stretchr/testify/mock"
)

var _ FileSystem = (*mockFileSystem)(nil)

// mockFileSystem is a testify mock of FileSystem used to probe storage calls.
type mockFileSystem struct {
	mock.Mock
}

func (m *mockFileSystem) Open(name string) (io.ReadCloser, error) {
	args := m.Called(name)
	var rc io.ReadCloser
	if args.Get(0) != nil {
		rc = args.Get(0).(io.ReadCloser)
	}
	return rc, args.Error(1)
}

func (m *mockFileSystem) ReadFile(name string) ([]byte, error) {
	args := m.Called(name)
	var data []byte
	if args.Get(0) != nil {
		data = args.Get(0).([]byte)
	}
	return data, args.Error(1)
}

func (m *mockFileSystem) WriteFile(name string, data []byte) error {
	args := m.Called(name, data)
	return args.Error(0)
}

// trackingReader records whether Close was called.
type trackingReader struct {
	io.Reader
	closed bool
}

func newTrackingReader(s string) *trackingReader {
	return &trackingReader{Reader: strings.NewReader(s)}
}

func (r *trackingReader) Close() error {
	r.closed = true
	return nil
}

const sampleINI = `[Settings]
Theme=Dark
AutoSave=True

[Profile]
Name=John
Age=30
`
