package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// FakeCommander is a cmdexec.Commander that replays registered responses.
// Commands are keyed by the full "name arg1 arg2 ..." line.
type FakeCommander struct {
	mu        sync.Mutex
	responses map[string]fakeResponse
	calls     []string
}

type fakeResponse struct {
	out string
	err error
}

// NewFakeCommander creates an empty FakeCommander.
func NewFakeCommander() *FakeCommander {
	return &FakeCommander{responses: make(map[string]fakeResponse)}
}

// Register sets the response for a command line.
func (f *FakeCommander) Register(cmdline, out string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[cmdline] = fakeResponse{out: out, err: err}
}

// Calls returns the command lines executed so far.
func (f *FakeCommander) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Run replays the registered response for the command line.
func (f *FakeCommander) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	cmdline := strings.Join(append([]string{name}, args...), " ")

	f.mu.Lock()
	f.calls = append(f.calls, cmdline)
	resp, ok := f.responses[cmdline]
	f.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("FakeCommander: unregistered command: %s", cmdline)
	}
	return []byte(resp.out), resp.err
}

// RunWithEnv ignores env and behaves like Run.
func (f *FakeCommander) RunWithEnv(ctx context.Context, _ map[string]string, name string, args ...string) ([]byte, error) {
	return f.Run(ctx, name, args...)
}
