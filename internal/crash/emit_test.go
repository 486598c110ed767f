package crash

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ColonelBlimp/crashtrace/internal/sink"
	"github.com/ColonelBlimp/crashtrace/internal/unwind"
)

// scriptedEngine plays back a fixed frame sequence and, optionally, an
// engine error at the end of the walk.
type scriptedEngine struct {
	frames    []unwind.Frame
	callFail  bool
	failMsg   string
	failErrno int
}

func (e *scriptedEngine) Backtrace(_ int, frame func(unwind.Frame) bool, fail func(string, int)) {
	for _, f := range e.frames {
		if !frame(f) {
			break
		}
	}
	if e.callFail {
		fail(e.failMsg, e.failErrno)
	}
}

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	os.Stderr = w
	fn()
	os.Stderr = old
	_ = w.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read captured stderr: %v", err)
	}
	return string(data)
}

func useScriptedEngine(t *testing.T, e *scriptedEngine) {
	t.Helper()
	sink.Reset()
	SetEngine(e)
	t.Cleanup(func() {
		SetEngine(nil)
		sink.Reset()
	})
}

func TestEmit_FrameOrderAndFormat(t *testing.T) {
	useScriptedEngine(t, &scriptedEngine{frames: []unwind.Frame{
		{PC: 0x1000, Function: "foo", File: "a.c", Line: 42},
		{PC: 0x1001, Function: "bar", File: "b.c", Line: 7},
		{PC: 0x1002, Function: "baz"},
	}})

	out := captureStderr(t, func() {
		sink.EnsureReady()
		writeHeader(11)
		writeFrames(0)
		sink.Flush()
	})

	want := "Received signal 11. Backtrace:\n" +
		"0x1000, foo at a.c:42\n" +
		"0x1001, bar at b.c:7\n" +
		"0x1002, baz\n"
	require.Equal(t, want, out)
}

func TestEmit_EngineErrorBecomesDiagnosticLine(t *testing.T) {
	useScriptedEngine(t, &scriptedEngine{
		frames:    []unwind.Frame{{PC: 0x1000, Function: "foo"}},
		callFail:  true,
		failMsg:   "no debug info",
		failErrno: 2,
	})

	out := captureStderr(t, func() {
		sink.EnsureReady()
		writeFrames(0)
	})

	require.Contains(t, out, "0x1000, foo\n")
	require.Contains(t, out, "crashtrace ERROR: no debug info (errno: 2)\n")
}

func TestEmit_EmptyEngineErrorIsSilent(t *testing.T) {
	useScriptedEngine(t, &scriptedEngine{callFail: true})

	out := captureStderr(t, func() {
		sink.EnsureReady()
		writeFrames(0)
	})

	require.Empty(t, out)
}

func TestSetEngine_NilRestoresRuntimeDefault(t *testing.T) {
	SetEngine(&scriptedEngine{})
	SetEngine(nil)
	_, ok := currentEngine().(*unwind.RuntimeEngine)
	require.True(t, ok, "currentEngine() = %T, want *unwind.RuntimeEngine", currentEngine())
}

func TestDefaultSignals_CoversFaultSignals(t *testing.T) {
	sigs := DefaultSignals()
	require.Len(t, sigs, 4)
}
