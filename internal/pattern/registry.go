package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"axis-mapper/internal/axis"
)

// Registry is the compiled, immutable form of a Table.
type Registry struct {
	order         []axis.Category
	rules         [axis.CategoryTotal]*rule
	standardNames map[string]axis.Category
	axisCodes     map[string]axis.Category
}

type rule struct {
	names       []*regexp.Regexp
	candidates  []*regexp.Regexp
	cardinality []*regexp.Regexp
}

var validAxisCodes = []string{"X", "Y", "Z", "T"}

// Compile validates and compiles a table. All patterns are matched
// case-insensitively. Any malformed entry yields a *ConfigurationError.
func Compile(t Table) (*Registry, error) {
	r := &Registry{
		standardNames: make(map[string]axis.Category),
		axisCodes:     make(map[string]axis.Category),
	}

	for i := range t.Entries {
		if err := r.addEntry(i, &t.Entries[i]); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(t Table) *Registry {
	r, err := Compile(t)
	if err != nil {
		panic(err)
	}

	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return MustCompile(DefaultTable())
})

// Default returns the process-wide registry compiled from DefaultTable.
// It is compiled on first use and shared afterwards.
func Default() *Registry {
	return defaultRegistry()
}

func (r *Registry) addEntry(idx int, e *Entry) error {
	fail := func(field, value string, err error) error {
		return &ConfigurationError{Entry: idx, Category: e.Category, Field: field, Value: value, Err: err}
	}

	cat, ok := axis.ParseCategory(e.Category)
	if !ok {
		return fail("category", e.Category, errors.New("unknown category"))
	}

	ru := r.rules[cat]
	if ru == nil {
		ru = &rule{}
		r.rules[cat] = ru
		r.order = append(r.order, cat)
	}

	names, err := compileAll(e.Names, 0, fail, "names")
	if err != nil {
		return err
	}

	candidates, err := compileAll(e.Candidates, 0, fail, "candidates")
	if err != nil {
		return err
	}

	cardinality, err := compileAll(e.Cardinality, 1, fail, "cardinality")
	if err != nil {
		return err
	}

	ru.names = append(ru.names, names...)
	ru.candidates = append(ru.candidates, candidates...)
	ru.cardinality = append(ru.cardinality, cardinality...)

	for _, sn := range e.StandardNames {
		key := strings.ToLower(strings.TrimSpace(sn))
		if key == "" {
			return fail("standard_names", sn, errors.New("empty standard name"))
		}

		if _, taken := r.standardNames[key]; !taken {
			r.standardNames[key] = cat
		}
	}

	if e.AxisCode != "" {
		code := strings.ToUpper(strings.TrimSpace(e.AxisCode))
		if !slices.Contains(validAxisCodes, code) {
			return fail("axis", e.AxisCode, fmt.Errorf("axis code must be one of %v", validAxisCodes))
		}

		if _, taken := r.axisCodes[code]; !taken {
			r.axisCodes[code] = cat
		}
	}

	return nil
}

// compileAll compiles patterns case-insensitively. When groups is positive,
// every pattern must declare exactly that many capture groups.
func compileAll(
	patterns []string,
	groups int,
	fail func(field, value string, err error) error,
	field string,
) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))

	for _, p := range patterns {
		if strings.TrimSpace(p) == "" {
			return nil, fail(field, p, errors.New("empty pattern"))
		}

		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fail(field, p, err)
		}

		if groups > 0 && re.NumSubexp() != groups {
			return nil, fail(field, p,
				fmt.Errorf("expected %d capture group(s), found %d", groups, re.NumSubexp()))
		}

		out = append(out, re)
	}

	return out, nil
}

// Categories returns the compiled categories in precedence order.
func (r *Registry) Categories() []axis.Category {
	return slices.Clone(r.order)
}

// MatchName returns the first category (in precedence order) whose name
// patterns match the axis name.
func (r *Registry) MatchName(name string) (axis.Category, bool) {
	if name == "" {
		return axis.Unknown, false
	}

	for _, cat := range r.order {
		for _, re := range r.rules[cat].names {
			if re.MatchString(name) {
				return cat, true
			}
		}
	}

	return axis.Unknown, false
}

// LookupStandardName returns the category declaring the given standard_name.
func (r *Registry) LookupStandardName(standardName string) (axis.Category, bool) {
	key := strings.ToLower(strings.TrimSpace(standardName))
	if key == "" {
		return axis.Unknown, false
	}

	cat, ok := r.standardNames[key]

	return cat, ok
}

// LookupAxisCode returns the first category (in precedence order) expecting
// the given axis code.
func (r *Registry) LookupAxisCode(code string) (axis.Category, bool) {
	key := strings.ToUpper(strings.TrimSpace(code))
	if key == "" {
		return axis.Unknown, false
	}

	cat, ok := r.axisCodes[key]

	return cat, ok
}

// IsCandidate reports whether a destination name belongs to the category,
// either as a generic candidate or as a member of a cardinality family.
func (r *Registry) IsCandidate(cat axis.Category, name string) bool {
	if _, ok := r.Cardinality(cat, name); ok {
		return true
	}

	ru := r.rule(cat)
	if ru == nil {
		return false
	}

	for _, re := range ru.candidates {
		if re.MatchString(name) {
			return true
		}
	}

	return false
}

// Cardinality returns the cardinality encoded in a destination name of the
// given category (e.g. 19 for "plev19"). The second result is false for
// generic names and for names outside the category.
func (r *Registry) Cardinality(cat axis.Category, name string) (int, bool) {
	ru := r.rule(cat)
	if ru == nil {
		return 0, false
	}

	for _, re := range ru.cardinality {
		m := re.FindStringSubmatch(name)
		if m == nil {
			continue
		}

		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			continue
		}

		return n, true
	}

	return 0, false
}

func (r *Registry) rule(cat axis.Category) *rule {
	if !cat.Known() {
		return nil
	}

	return r.rules[cat]
}
