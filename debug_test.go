package hovertip

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestDebugMode_DisposedNodePanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewContainer("parent")
	s.Root().AddChild(parent)

	child := NewBox("child", 10, 10, ColorWhite)
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild with disposed node, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	parent.AddChild(child)
}

func TestDebugMode_Off_DisposedNodeNoPanic(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	child.Dispose()
	parent.AddChild(child) // release mode skips the check
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	var buf bytes.Buffer
	old := debugOutput
	debugOutput = &buf
	defer func() { debugOutput = old }()

	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	n := s.Root()
	for i := 0; i < debugMaxTreeDepth+1; i++ {
		child := NewContainer(fmt.Sprintf("n%d", i))
		n.AddChild(child)
		n = child
	}
	if !strings.Contains(buf.String(), "[hovertip] warning: tree depth") {
		t.Errorf("expected depth warning, got %q", buf.String())
	}
}

func TestDebugMode_CycleGuardLogged(t *testing.T) {
	var buf bytes.Buffer
	old := debugOutput
	debugOutput = &buf
	defer func() { debugOutput = old }()

	sys, _ := newTestSystem()
	sys.debug = true
	a := NewContainer("a")
	b := NewContainer("b")
	a.Parent = b
	b.Parent = a

	sys.SetHovered(a)
	if !strings.Contains(buf.String(), "ancestor walk exceeded") {
		t.Errorf("expected cycle guard log, got %q", buf.String())
	}
}
