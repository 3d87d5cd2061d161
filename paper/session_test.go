package paper

import (
	"testing"

	"github.com/paperlang/paper/data"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	loader, err := data.NewLoader()
	if err != nil {
		t.Fatalf("data.NewLoader(): %v", err)
	}
	return NewSession(loader, DefaultSettings())
}

func TestSessionRetainsVariablesAcrossEval(t *testing.T) {
	session := newTestSession(t)

	session.Eval("x = 10\n")
	out := session.Eval("x + 5\n")

	results := nonEmpty(out.Results)
	if len(results) != 1 || results[0].Result != "15" {
		t.Fatalf("Eval(\"x + 5\") = %+v, want Result \"15\"", out.Results)
	}
}

func TestSessionReset(t *testing.T) {
	session := newTestSession(t)

	session.Eval("x = 10\n")
	session.Reset()
	out := session.Eval("x\n")

	if out.Results[0].Err == "" {
		t.Error("expected UndefinedVariable error after Reset")
	}
}

func TestSessionGetVariable(t *testing.T) {
	session := newTestSession(t)
	session.Eval("x = 42\n")

	v, ok := session.GetVariable("x")
	if !ok {
		t.Fatal("GetVariable(\"x\") not found")
	}
	if v.String() != "42" {
		t.Errorf("GetVariable(\"x\") = %q, want \"42\"", v.String())
	}

	if _, ok := session.GetVariable("pi"); !ok {
		t.Error("GetVariable(\"pi\") should resolve the constant even though it was never assigned")
	}
}
