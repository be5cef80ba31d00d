// Package lifecycle executes the ordered steps of a deployment operation.
//
// Each operation (install, update, uninstall) is a fixed list of steps run
// strictly in sequence. A step either succeeds, fails fatally (the remaining
// steps are skipped and the error is returned), or fails tolerated (a
// warning is recorded on the shared state and the run continues).
package lifecycle

import (
	"fmt"
	"time"
)

// Step is a single side-effecting action of a lifecycle operation.
type Step struct {
	// Name is the human-readable step name used in log output.
	Name string

	// Run executes the step against the shared context.
	Run func(ctx *Context) error

	// Tolerated downgrades a failure of this step to a warning instead of
	// aborting the remaining steps.
	Tolerated bool
}

// Run executes all steps sequentially.
func Run(ctx *Context, steps []Step) error {
	start := time.Now()
	ctx.Observer.Printf("Running %d steps...", len(steps))

	for i, step := range steps {
		stepStart := time.Now()
		name := fmt.Sprintf("%s (%d/%d)", step.Name, i+1, len(steps))

		ctx.Observer.Printf("[%s] starting", name)

		if err := step.Run(ctx); err != nil {
			if step.Tolerated {
				ctx.Observer.Printf("[%s] warning: %v", name, err)
				ctx.State.Warn(fmt.Sprintf("%s: %v", step.Name, err))
				continue
			}
			ctx.Observer.Printf("[%s] failed: %v", name, err)
			return fmt.Errorf("%s step failed: %w", step.Name, err)
		}

		ctx.Observer.Printf("[%s] completed in %v", name, time.Since(stepStart).Round(time.Millisecond))
	}

	ctx.Observer.Printf("All steps completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
