package core

import (
	"context"
	"errors"
	"fmt"
)

// RunFixes executes the fixes of the inspections sequentially, in emission order.
// A failing fix does not prevent the next ones from running: all errors are joined.
func RunFixes(ctx context.Context, inspections []*Inspection) error {
	var errs []error
	for _, inspection := range inspections {
		if !inspection.Fixable() {
			continue
		}
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		CurrentLogger().Debugf("Fixing %s", inspection.Code)
		if err := inspection.Fix(ctx); err != nil {
			CurrentLogger().Warnf("Unable to fix %s: %v", inspection.Code, err)
			errs = append(errs, fmt.Errorf("fix %s: %w", inspection.Code, err))
		}
	}
	return errors.Join(errs...)
}
