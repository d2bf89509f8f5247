package services

import (
	"context"
	"fmt"

	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

type mockStore struct {
	resolvePath string
	resolveErr  error
	loadContent []byte
	loadErr     error
	writeErr    error
	written     [][]byte
}

func (m *mockStore) Resolve(_, _ string) (string, error) {
	return m.resolvePath, m.resolveErr
}

func (m *mockStore) Load(_ string) ([]byte, error) {
	return m.loadContent, m.loadErr
}

func (m *mockStore) Write(_ string, content []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.written = append(m.written, content)
	return nil
}

type approvalRequest struct {
	manifestPath   string
	pendingChanges int
}

type mockApprover struct {
	approved bool
	err      error
	requests []approvalRequest
}

func (m *mockApprover) RequestApproval(_ context.Context, manifestPath string, pendingChanges int) (bool, error) {
	m.requests = append(m.requests, approvalRequest{manifestPath, pendingChanges})
	return m.approved, m.err
}

type mockScanner struct {
	result pbxsync.SourceScanResult
	err    error
}

func (m *mockScanner) ScanDirectory(_ string) (pbxsync.SourceScanResult, error) {
	return m.result, m.err
}

type mockBackupManager struct {
	exists         bool
	existsErr      error
	createErr      error
	createdPath    string
	createdContent []byte
}

func (m *mockBackupManager) Exists(_ string) (bool, error) {
	return m.exists, m.existsErr
}

func (m *mockBackupManager) Create(manifestPath string, content []byte) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}
	m.createdPath = manifestPath + ".backup"
	m.createdContent = content
	return m.createdPath, nil
}

type recordingLogger struct {
	verbose []string
	info    []string
	errors  []string
}

func (l *recordingLogger) Verbose(format string, args ...interface{}) {
	l.verbose = append(l.verbose, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Info(format string, args ...interface{}) {
	l.info = append(l.info, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Error(format string, args ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}
