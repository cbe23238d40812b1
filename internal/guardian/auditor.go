// Package guardian is the static security auditor for generated method
// bodies. Nothing may be installed into the living image, or handed to the
// executor, without passing the audit first. The audit is purely static:
// candidate code is parsed, never run.
package guardian

import (
	"context"
	"fmt"
	"log"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// Violation is an audit rejection with the rule that fired.
type Violation struct {
	Rule   string
	Detail string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("audit violation (%s): %s", v.Rule, v.Detail)
}

// Node types that are forbidden outright.
var forbiddenNodeTypes = map[string]string{
	"import_statement":        "import",
	"import_from_statement":   "import",
	"future_import_statement": "import",
	"delete_statement":        "delete",
}

// Identifiers and attribute names that must never appear in a candidate
// body: file, process, environment and network primitives, dynamic
// evaluation, and interpreter escape hatches.
var deniedNames = map[string]bool{
	"open":       true,
	"eval":       true,
	"exec":       true,
	"exit":       true,
	"quit":       true,
	"compile":    true,
	"input":      true,
	"breakpoint": true,
	"globals":    true,
	"locals":     true,
	"vars":       true,
	"getattr":    true,
	"setattr":    true,
	"delattr":    true,
	"__import__": true,
	"os":         true,
	"sys":        true,
	"subprocess": true,
	"shutil":     true,
	"socket":     true,
}

// covenantMarker is the "state committed" statement a mutating body should
// end with. A style contract, not a hard rule: missing it is logged only.
const covenantMarker = "self._p_changed = True"

// Auditor statically audits candidate method bodies. Stateless; safe for
// concurrent use (a fresh tree-sitter parser is created per call).
type Auditor struct{}

func NewAuditor() *Auditor { return &Auditor{} }

// Audit returns nil when the source passes every check and a *Violation
// otherwise. It is a pure function of the source text.
func (a *Auditor) Audit(source string) error {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return &Violation{Rule: "syntax", Detail: "empty method body"}
	}

	content := []byte(source)
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return &Violation{Rule: "syntax", Detail: fmt.Sprintf("parse failed: %v", err)}
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return &Violation{Rule: "syntax", Detail: "parser returned no tree"}
	}
	if root.HasError() {
		return &Violation{Rule: "syntax", Detail: "source contains syntax errors"}
	}

	if v := walk(root, content); v != nil {
		return v
	}

	a.checkCovenant(source)
	return nil
}

func walk(node *sitter.Node, content []byte) *Violation {
	if rule, ok := forbiddenNodeTypes[node.Type()]; ok {
		return &Violation{Rule: rule, Detail: fmt.Sprintf("forbidden construct %q", node.Type())}
	}

	switch node.Type() {
	case "identifier":
		name := node.Content(content)
		if deniedNames[name] {
			return &Violation{Rule: "denylist", Detail: fmt.Sprintf("forbidden name %q", name)}
		}
	case "attribute":
		if attr := node.ChildByFieldName("attribute"); attr != nil {
			name := attr.Content(content)
			if deniedNames[name] {
				return &Violation{Rule: "denylist", Detail: fmt.Sprintf("forbidden attribute %q", name)}
			}
			if isReflectionDunder(name) {
				return &Violation{Rule: "denylist", Detail: fmt.Sprintf("forbidden dunder attribute %q", name)}
			}
		}
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		if v := walk(node.Child(i), content); v != nil {
			return v
		}
	}
	return nil
}

// isReflectionDunder flags __x__ style attributes, which open reflection
// paths out of the snapshot the body was given. The covenant flag itself
// is the one allowed underscore attribute.
func isReflectionDunder(name string) bool {
	return strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}

// checkCovenant logs when a body that writes into self.attributes does not
// end with the explicit state-committed marker.
func (a *Auditor) checkCovenant(source string) {
	if !strings.Contains(source, "self.attributes[") {
		return
	}
	lines := strings.Split(strings.TrimSpace(source), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if last != covenantMarker {
		log.Printf("guardian: mutating body does not end with %q (style contract, allowed)", covenantMarker)
	}
}
