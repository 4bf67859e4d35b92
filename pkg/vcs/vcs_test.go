// pkg/vcs/vcs_test.go

package vcs

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type fakeResp struct {
	out  string
	exit int
	err  error
}

// fakeRunner scripts probe responses by their full command line. Any
// unscripted probe reports "could not run", which the summarizer must
// treat as a degraded-to-false flag.
type fakeRunner struct {
	mu    sync.Mutex
	resp  map[string]fakeResp
	calls []string
	envs  map[string][]string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		resp: make(map[string]fakeResp),
		envs: make(map[string][]string),
	}
}

func (f *fakeRunner) script(cmdline string, out string, exit int) {
	f.resp[cmdline] = fakeResp{out: out, exit: exit}
}

func (f *fakeRunner) Run(_ context.Context, _ string, env []string, name string, args ...string) (string, int, error) {
	key := strings.Join(append([]string{name}, args...), " ")

	f.mu.Lock()
	f.calls = append(f.calls, key)
	f.envs[key] = env
	r, ok := f.resp[key]
	f.mu.Unlock()

	if !ok {
		return "", -1, errors.New("unscripted probe: " + key)
	}
	return r.out, r.exit, r.err
}

func (f *fakeRunner) called(cmdline string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == cmdline {
			return true
		}
	}
	return false
}

func newTestSummarizer(r Runner) *Summarizer {
	th := DefaultTheme()
	th.Plain = true
	return New(r, th, zap.NewNop())
}
