package execport

import "testing"

func TestStubRunCommandSub(t *testing.T) {
	s := &Stub{Output: "hi"}
	out, err := s.RunCommandSub("body")
	if err != nil || out != "hi" {
		t.Fatalf("RunCommandSub = (%q, %v)", out, err)
	}
	if s.LastBody != "body" {
		t.Errorf("LastBody = %v, want body", s.LastBody)
	}
}
