package guardian

import (
	"errors"
	"testing"
)

func TestAuditPassesSafeBody(t *testing.T) {
	a := NewAuditor()
	src := "def greet(self, name):\n    return f'Hello, {name}!'\n"
	if err := a.Audit(src); err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
}

func TestAuditPassesMutatingBodyWithCovenant(t *testing.T) {
	a := NewAuditor()
	src := "def set_name(self, new_name):\n    self.attributes['name'] = new_name\n    self._p_changed = True\n"
	if err := a.Audit(src); err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
}

func TestAuditMutatingBodyWithoutCovenantStillPasses(t *testing.T) {
	// The persistence covenant is a style contract: logged, not failed.
	a := NewAuditor()
	src := "def set_name(self, new_name):\n    self.attributes['name'] = new_name\n"
	if err := a.Audit(src); err != nil {
		t.Fatalf("covenant violation must not fail the audit, got %v", err)
	}
}

func TestAuditRejectsImports(t *testing.T) {
	a := NewAuditor()
	cases := []string{
		"import os\ndef m(self):\n    return 1\n",
		"from os import path\ndef m(self):\n    return 1\n",
		"def m(self):\n    import socket\n    return 1\n",
	}
	for _, src := range cases {
		err := a.Audit(src)
		var v *Violation
		if !errors.As(err, &v) {
			t.Fatalf("expected violation for %q, got %v", src, err)
		}
	}
}

func TestAuditRejectsDeniedNames(t *testing.T) {
	a := NewAuditor()
	cases := map[string]string{
		"file open":    "def m(self):\n    f = open('/etc/passwd')\n    return f\n",
		"eval":         "def m(self, code):\n    return eval(code)\n",
		"exec":         "def m(self, code):\n    exec(code)\n",
		"os attribute": "def m(self, o):\n    return o.os\n",
		"getattr":      "def m(self, name):\n    return getattr(self, name)\n",
	}
	for name, src := range cases {
		err := a.Audit(src)
		var v *Violation
		if !errors.As(err, &v) {
			t.Fatalf("%s: expected violation, got %v", name, err)
		}
		if v.Rule != "denylist" {
			t.Fatalf("%s: expected denylist rule, got %q", name, v.Rule)
		}
	}
}

func TestAuditRejectsDeleteStatement(t *testing.T) {
	a := NewAuditor()
	src := "def m(self):\n    del self.attributes['name']\n"
	err := a.Audit(src)
	var v *Violation
	if !errors.As(err, &v) {
		t.Fatalf("expected violation, got %v", err)
	}
	if v.Rule != "delete" {
		t.Fatalf("expected delete rule, got %q", v.Rule)
	}
}

func TestAuditRejectsDunderAttributes(t *testing.T) {
	a := NewAuditor()
	src := "def m(self):\n    return self.__class__\n"
	err := a.Audit(src)
	var v *Violation
	if !errors.As(err, &v) {
		t.Fatalf("expected violation, got %v", err)
	}
}

func TestAuditRejectsSyntaxErrors(t *testing.T) {
	a := NewAuditor()
	cases := []string{
		"def m(self:\n    return 1\n",
		"def m(self)\n    return 1\n",
		"",
		"   \n\t\n",
	}
	for _, src := range cases {
		err := a.Audit(src)
		var v *Violation
		if !errors.As(err, &v) {
			t.Fatalf("expected syntax violation for %q, got %v", src, err)
		}
		if v.Rule != "syntax" {
			t.Fatalf("expected syntax rule for %q, got %q", src, v.Rule)
		}
	}
}

func TestAuditIsIdempotent(t *testing.T) {
	a := NewAuditor()
	safe := "def m(self):\n    return 42\n"
	unsafe := "def m(self):\n    return eval('42')\n"

	for i := 0; i < 3; i++ {
		if err := a.Audit(safe); err != nil {
			t.Fatalf("pass verdict changed on run %d: %v", i, err)
		}
		if err := a.Audit(unsafe); err == nil {
			t.Fatalf("fail verdict changed on run %d", i)
		}
	}
}

func TestAuditAllowsDeniedWordsInsideStrings(t *testing.T) {
	// Denylisted words inside string literals are data, not identifiers.
	a := NewAuditor()
	src := "def m(self):\n    return 'please do not eval this'\n"
	if err := a.Audit(src); err != nil {
		t.Fatalf("string contents must not trip the denylist, got %v", err)
	}
}
