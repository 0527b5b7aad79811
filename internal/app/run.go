package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/shapegridgo/internal/broadcast"
	"github.com/vk/shapegridgo/internal/config"
	"github.com/vk/shapegridgo/internal/ctxlog"
	"github.com/vk/shapegridgo/internal/spec"
	"github.com/vk/shapegridgo/internal/unify"
)

// Run executes every session and broadcast block of the loaded suite.
// Sessions run in declaration order; a failed session does not stop
// the ones after it, and the combined failure is returned at the end.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	var failures []string
	for _, sess := range a.model.Sessions {
		if err := a.runSession(ctx, sess); err != nil {
			a.logger.Error("Session failed.", "session", sess.Name, "error", err.Error())
			failures = append(failures, "session '"+sess.Name+"'")
		}
	}
	for _, bc := range a.model.Broadcasts {
		if err := a.runBroadcast(ctx, bc); err != nil {
			a.logger.Error("Broadcast failed.", "broadcast", bc.Name, "error", err.Error())
			failures = append(failures, "broadcast '"+bc.Name+"'")
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("suite failed: %s", strings.Join(failures, ", "))
	}
	a.logger.Info("Suite passed.",
		"sessions", len(a.model.Sessions), "broadcasts", len(a.model.Broadcasts))
	return nil
}

// runSession validates every check of one session against a shared
// ledger, so bindings made by earlier checks are enforced by later
// ones. The session's mode (or the app default) decides what a
// matcher failure does; expression errors are configuration problems
// and fail the session regardless of mode.
func (a *App) runSession(ctx context.Context, sess *config.Session) error {
	logger := ctxlog.FromContext(ctx)

	mode := a.defaultMode
	if sess.Mode != "" {
		// Validated during App construction.
		mode, _ = config.ParseMode(sess.Mode)
	}

	if mode == config.ModeSkip {
		logger.Info("Session skipped.", "session", sess.Name)
		fmt.Fprintf(a.outW, "session %s: skipped\n", sess.Name)
		return nil
	}

	led := unify.NewLedger()
	for _, check := range sess.Checks {
		sp, err := a.eval.Spec(ctx, check.Spec, a.registry.Dims())
		if err != nil {
			return fmt.Errorf("check %q: %w", check.Name, err)
		}
		actual, err := a.eval.Actual(ctx, check.Actual)
		if err != nil {
			return fmt.Errorf("check %q: %w", check.Name, err)
		}

		led, err = spec.Match(actual, sp, led, check.Name)
		if err != nil {
			if mode == config.ModeWarn {
				logger.Warn("Shape check failed; continuing in warn mode.",
					"session", sess.Name, "check", check.Name, "error", err.Error())
				continue
			}
			fmt.Fprintf(a.outW, "session %s: FAILED\n%s\n", sess.Name, spec.Describe(err))
			return err
		}
		logger.Debug("Check passed.", "session", sess.Name, "check", check.Name)
	}

	fmt.Fprintf(a.outW, "session %s: ok %s\n", sess.Name, led.String())
	return nil
}

// runBroadcast computes one broadcast block, either as a plain result
// or as a step-by-step explanation. Explanations never fail the run;
// the narration itself reports an incompatibility.
func (a *App) runBroadcast(ctx context.Context, bc *config.BroadcastDecl) error {
	shapes, err := a.eval.Shapes(ctx, bc.Shapes)
	if err != nil {
		return err
	}

	if bc.Explain {
		fmt.Fprintf(a.outW, "broadcast %s:\n%s\n", bc.Name, broadcast.Explain(shapes...))
		return nil
	}

	result, err := broadcast.Shapes(shapes...)
	if err != nil {
		fmt.Fprintf(a.outW, "broadcast %s: FAILED: %v\n", bc.Name, err)
		return err
	}
	fmt.Fprintf(a.outW, "broadcast %s: %s\n", bc.Name, result)
	return nil
}
