package testutil

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// FileSuite provides a scratch directory and a bounded context for tests
// that read and write documents.
type FileSuite struct {
	suite.Suite
	ctx     context.Context
	cancel  context.CancelFunc
	tempDir string
}

// SetupTest runs before each test in the suite
func (s *FileSuite) SetupTest() {
	s.ctx, s.cancel = context.WithTimeout(context.Background(), 30*time.Second)

	tempDir, err := os.MkdirTemp("", "arrays-test-*")
	require.NoError(s.T(), err)
	s.tempDir = tempDir
}

// TearDownTest runs after each test in the suite
func (s *FileSuite) TearDownTest() {
	s.cancel()
	if s.tempDir != "" {
		_ = os.RemoveAll(s.tempDir)
	}
}

// Context returns the test context
func (s *FileSuite) Context() context.Context {
	return s.ctx
}

// TempDir returns the temporary directory path
func (s *FileSuite) TempDir() string {
	return s.tempDir
}

// CreateTempFile creates a file with content in the suite directory
func (s *FileSuite) CreateTempFile(name string, content string) string {
	path := filepath.Join(s.tempDir, name)
	require.NoError(s.T(), os.WriteFile(path, []byte(content), 0o600))
	return path
}
