package config

import (
	"fmt"

	"cuelang.org/go/cue"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/jmgilman/go/ftpfs/errors"
)

// ValidationIssue is a single schema violation.
type ValidationIssue struct {
	// Path is the field path of the violation, e.g. ["users", "0", "home"].
	Path []string

	// Message is the human-readable error message.
	Message string

	// Position is the source position if available.
	Position token.Pos
}

// validate unifies data with schema and requires a concrete result.
// Returns the unified value, or CodeSchemaFailed with the issues attached.
func validate(schema, data cue.Value) (cue.Value, error) {
	unified := schema.Unify(data)

	// Validate straight away rather than checking unified.Err() so All can
	// collect every issue.
	if err := unified.Validate(cue.Concrete(true), cue.Final(), cue.All()); err != nil {
		return cue.Value{}, errors.WrapWithContext(err, errors.CodeSchemaFailed,
			"configuration does not match schema", map[string]interface{}{
				"details": cueerrors.Details(err, nil),
				"issues":  issues(err),
			})
	}
	return unified, nil
}

// issues flattens a CUE error into structured issues.
func issues(err error) []ValidationIssue {
	var out []ValidationIssue
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()

		var pos token.Pos
		if positions := e.InputPositions(); len(positions) > 0 {
			pos = positions[0]
		}

		out = append(out, ValidationIssue{
			Path:     e.Path(),
			Message:  fmt.Sprintf(format, args...),
			Position: pos,
		})
	}
	return out
}

// Issues returns the schema violations carried by err, or nil if err is not
// a schema failure.
func Issues(err error) []ValidationIssue {
	var perr errors.PlatformError
	if !errors.As(err, &perr) || perr.Code() != errors.CodeSchemaFailed {
		return nil
	}
	found, _ := perr.Context()["issues"].([]ValidationIssue)
	return found
}
