//go:build release

package sprig

import "testing"

func TestReleaseStubs(t *testing.T) {
	if DebugEnabled {
		t.Fatal("DebugEnabled = true in release build")
	}
	// None of these may panic or retain state.
	Assert(false, "ignored")
	DebugRect(Vec2{}, Vec2{1, 1}, ColorRed, 1, 0, true)
	DebugSaveCanvas("x")
	debugStep(1)
}
