// Package validate produces advisory warnings for tracker records.
// Nothing here is fatal: the build renders whatever data it is given
// and surfaces problems on the console instead of refusing to run.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/status-page/internal/stage"
	"github.com/jonathan/status-page/internal/types"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// Tracker checks the active and closed collections for missing
// required fields and out-of-vocabulary stages and outcomes. Skipped
// roles are intentionally exempt; they are parked, not tracked.
func Tracker(data *types.TrackerData, model *stage.Model) []string {
	var warnings []string
	warnings = append(warnings, checkRoles("active", data.Active, model)...)
	warnings = append(warnings, checkRoles("closed", data.Closed, model)...)
	return warnings
}

func checkRoles(collection string, roles []types.Role, model *stage.Model) []string {
	var warnings []string
	for i, role := range roles {
		if err := structValidator.Struct(role); err != nil {
			var fieldErrs validator.ValidationErrors
			if errors.As(err, &fieldErrs) {
				for _, fe := range fieldErrs {
					warnings = append(warnings, fmt.Sprintf(
						"%s[%d] missing required field: %s", collection, i, strings.ToLower(fe.Field())))
				}
			} else {
				warnings = append(warnings, fmt.Sprintf("%s[%d]: %v", collection, i, err))
			}
		}
		if role.Stage != "" && !model.Valid(role.Stage) {
			warnings = append(warnings, fmt.Sprintf(
				"%s[%d] (%s): unknown stage %q", collection, i, role.Company, role.Stage))
		}
		if role.Outcome != "" && !model.ValidOutcome(role.Outcome) {
			warnings = append(warnings, fmt.Sprintf(
				"%s[%d] (%s): unknown outcome %q", collection, i, role.Company, role.Outcome))
		}
	}
	return warnings
}
