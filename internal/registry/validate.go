package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/shapegridgo/internal/config"
	"github.com/vk/shapegridgo/internal/ctxlog"
)

// Validate performs a strict parity check between the loaded model and
// the registry before anything runs: duplicate dim declarations,
// undeclared dim references in spec expressions, duplicate check names
// within a session, unparsable modes, and broadcast shape expressions
// that are not literal.
func (r *Registry) Validate(ctx context.Context, m *config.Model) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	seen := make(map[string]int)
	for _, decl := range m.Dims {
		seen[decl.Name]++
	}
	for _, name := range r.order {
		if seen[name] > 1 {
			errs = append(errs, fmt.Sprintf("dim '%s' declared %d times", name, seen[name]))
		}
	}

	for _, sess := range m.Sessions {
		if _, err := config.ParseMode(sess.Mode); err != nil {
			errs = append(errs, fmt.Sprintf("session '%s': %v", sess.Name, err))
		}
		if len(sess.Checks) == 0 {
			logger.Warn("Session declares no checks.", "session", sess.Name)
		}

		checkNames := make(map[string]struct{})
		for _, check := range sess.Checks {
			if _, dup := checkNames[check.Name]; dup {
				errs = append(errs, fmt.Sprintf("session '%s': duplicate check '%s'", sess.Name, check.Name))
			}
			checkNames[check.Name] = struct{}{}

			for _, traversal := range check.Spec.Variables() {
				name := traversal.RootName()
				if _, ok := r.dims[name]; !ok {
					errs = append(errs, fmt.Sprintf("session '%s', check '%s': spec references undeclared dim '%s'", sess.Name, check.Name, name))
				}
			}
			if n := len(check.Actual.Variables()); n > 0 {
				errs = append(errs, fmt.Sprintf("session '%s', check '%s': actual must be literal, found %d variable reference(s)", sess.Name, check.Name, n))
			}
		}
	}

	for _, bc := range m.Broadcasts {
		if n := len(bc.Shapes.Variables()); n > 0 {
			errs = append(errs, fmt.Sprintf("broadcast '%s': shapes must be literal, found %d variable reference(s)", bc.Name, n))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("suite validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
