package expr

import (
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/dop251/goja"
)

// UndefinedToken is substituted whenever an inline expression cannot
// be evaluated.
const UndefinedToken = "undefined"

// inlinePattern matches J{<expression>} occurrences in text.
var inlinePattern = regexp.MustCompile(`J\{([^{}]*)\}`)

// Evaluator evaluates inline expressions against an explicit binding
// scope. The underlying VM starts empty: only values published via
// Expose are visible, so template text can never reach host globals.
type Evaluator struct {
	vm      *goja.Runtime
	timeout time.Duration
	mu      sync.Mutex
}

// New creates an evaluator with an empty binding scope.
func New() *Evaluator {
	vm := goja.New()
	vm.SetMaxCallStackSize(256)

	// The VM has no host access, but keep the usual escape hatches
	// pinned to undefined in case a binding shadows them later.
	vm.Set("require", goja.Undefined())
	vm.Set("process", goja.Undefined())
	vm.Set("globalThis", vm.GlobalObject())

	return &Evaluator{
		vm:      vm,
		timeout: 50 * time.Millisecond,
	}
}

// Expose publishes a value under name so expressions can reference it.
func (e *Evaluator) Expose(name string, value any) error {
	if name == "" {
		return fmt.Errorf("expr: binding name cannot be empty")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.vm.Set(name, value)
}

// Eval evaluates a single expression and returns its string form.
// Any failure yields the undefined token and ok=false; errors never
// escape.
func (e *Evaluator) Eval(expression string) (result string, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			result, ok = UndefinedToken, false
		}
	}()

	timer := time.AfterFunc(e.timeout, func() {
		e.vm.Interrupt("expression timeout")
	})
	defer timer.Stop()
	defer e.vm.ClearInterrupt()

	val, err := e.vm.RunString(expression)
	if err != nil || val == nil {
		return UndefinedToken, false
	}
	return val.String(), true
}

// Substitute replaces every J{expression} occurrence in text with the
// evaluated result. Failed substitutions become the undefined token.
func (e *Evaluator) Substitute(text string) string {
	return inlinePattern.ReplaceAllStringFunc(text, func(match string) string {
		inner := inlinePattern.FindStringSubmatch(match)[1]
		out, _ := e.Eval(inner)
		return out
	})
}
