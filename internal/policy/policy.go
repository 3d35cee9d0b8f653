package policy

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"axis-mapper/internal/axis"
	"axis-mapper/internal/common"
	"axis-mapper/internal/diagnostic"
	"axis-mapper/internal/mapping"
)

// Action is the response to validation problems.
type Action int

const (
	// ActionWarn logs every problem and keeps the mapping.
	ActionWarn Action = iota
	// ActionIgnore keeps the mapping silently.
	ActionIgnore
	// ActionError turns an invalid report into a *ViolationError.
	ActionError
	// ActionFix repairs what it can and logs each repair.
	ActionFix
)

// String returns the action name used in configuration.
func (a Action) String() string {
	switch a {
	case ActionWarn:
		return "warn"
	case ActionIgnore:
		return "ignore"
	case ActionError:
		return "error"
	case ActionFix:
		return "fix"
	default:
		return common.UnknownStr
	}
}

// ParseAction converts a configuration value into an Action.
// An empty string selects ActionWarn.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warn", "":
		return ActionWarn, nil
	case "ignore":
		return ActionIgnore, nil
	case "error":
		return ActionError, nil
	case "fix":
		return ActionFix, nil
	default:
		return ActionWarn, fmt.Errorf("unknown validation action %q (want ignore, warn, error or fix)", s)
	}
}

// ViolationError is returned by ActionError for an invalid mapping.
type ViolationError struct {
	Problems []string
}

func (e *ViolationError) Error() string {
	return "dimension mapping validation failed: " + strings.Join(e.Problems, "; ")
}

// Policy applies an Action to validation reports.
type Policy struct {
	action Action
	logger *zap.Logger
}

// New creates a Policy. A nil logger discards output.
func New(action Action, logger *zap.Logger) *Policy {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Policy{action: action, logger: logger}
}

// Action returns the configured action.
func (p *Policy) Action() Action {
	return p.action
}

// Enforce applies the policy to m given its validation report. The returned
// mapping is always a fresh copy; only ActionFix changes its content. ds is
// used by ActionFix to drop entries whose source is absent and may be nil.
// The diagnostics record what the policy did: one error per problem under
// ActionError, one info per repair under ActionFix.
func (p *Policy) Enforce(m mapping.Mapping, rep mapping.Report, ds *axis.Dataset) (mapping.Mapping, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	out := m.Clone()

	switch p.action {
	case ActionIgnore:
		return out, diags, nil
	case ActionError:
		p.logWarnings(rep)

		for _, e := range rep.Errors {
			diags.AddError(diagnostic.CodeValidationFailed, e, "", "")
		}

		if diags.HasErrors() {
			return nil, diags, &ViolationError{Problems: append([]string(nil), rep.Errors...)}
		}

		return out, diags, nil
	case ActionFix:
		p.logWarnings(rep)

		return p.fix(out, ds, &diags), diags, nil
	default:
		for _, e := range rep.Errors {
			p.logger.Warn("dimension mapping problem", zap.String("problem", e))
		}

		p.logWarnings(rep)

		return out, diags, nil
	}
}

func (p *Policy) logWarnings(rep mapping.Report) {
	for _, w := range rep.Warnings {
		p.logger.Warn("dimension mapping warning", zap.String("problem", w))
	}
}

// fix removes entries whose source is missing from ds, then keeps only the
// first source (in sorted order) of every duplicated target.
func (p *Policy) fix(m mapping.Mapping, ds *axis.Dataset, diags *diagnostic.Diagnostics) mapping.Mapping {
	if ds != nil {
		for _, src := range m.Sources() {
			if ds.Has(src) {
				continue
			}

			p.logger.Info("dropped mapping for missing source",
				zap.String("source", src), zap.String("target", m[src]))
			diags.AddInfo(diagnostic.CodeMissingSource,
				"source axis not found in dataset; mapping dropped", src, m[src])
			delete(m, src)
		}
	}

	for _, d := range m.Duplicates() {
		for _, src := range d.Sources[1:] {
			p.logger.Info("dropped duplicate mapping",
				zap.String("source", src),
				zap.String("target", d.Target),
				zap.String("kept", d.Sources[0]))
			diags.AddInfo(diagnostic.CodeDuplicateTarget,
				fmt.Sprintf("target kept for %q; mapping dropped", d.Sources[0]), src, d.Target)
			delete(m, src)
		}
	}

	return m
}
