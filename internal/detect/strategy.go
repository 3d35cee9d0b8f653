package detect

import (
	"axis-mapper/internal/axis"
	"axis-mapper/internal/common"
	"axis-mapper/internal/pattern"
)

// Strategy inspects one axis and reports a category when it is confident.
type Strategy func(a *axis.Axis) (axis.Category, bool)

// Signal identifies which strategy classified an axis.
type Signal int

const (
	SignalNone Signal = iota
	SignalName
	SignalStandardName
	SignalAxisCode
	SignalValueRange
)

// String returns a human-readable signal name.
func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "none"
	case SignalName:
		return "name"
	case SignalStandardName:
		return "standard_name"
	case SignalAxisCode:
		return "axis"
	case SignalValueRange:
		return "values"
	default:
		return common.UnknownStr
	}
}

// DefaultMinValueCardinality is the cardinality an axis must exceed before
// the value-range heuristic applies.
const DefaultMinValueCardinality = 10

// Value bands used by the range heuristic.
const (
	latMin, latMax       = -90.0, 90.0
	lonMin, lonMax       = 0.0, 360.0
	lonAltMin, lonAltMax = -180.0, 180.0
	paMin, paMax         = 100.0, 110000.0
	hPaMin, hPaMax       = 1.0, 1100.0
)

// ByName matches the axis name against the registry's name patterns.
func ByName(reg *pattern.Registry) Strategy {
	return func(a *axis.Axis) (axis.Category, bool) {
		return reg.MatchName(a.Name)
	}
}

// ByStandardName looks up the standard_name attribute.
func ByStandardName(reg *pattern.Registry) Strategy {
	return func(a *axis.Axis) (axis.Category, bool) {
		return reg.LookupStandardName(a.StandardName())
	}
}

// ByAxisCode looks up the single-letter axis attribute.
func ByAxisCode(reg *pattern.Registry) Strategy {
	return func(a *axis.Axis) (axis.Category, bool) {
		return reg.LookupAxisCode(a.Code())
	}
}

// ByValueRange classifies numeric axes with more than minCardinality values
// from the span of their values. Shorter axes are skipped: a handful of
// values fits almost any band.
func ByValueRange(minCardinality int) Strategy {
	return func(a *axis.Axis) (axis.Category, bool) {
		if a.IsTemporal() || a.Len() <= minCardinality {
			return axis.Unknown, false
		}

		v := a.Values

		switch {
		case common.AllInRange(v, latMin, latMax):
			return axis.Latitude, true
		case common.AllInRange(v, lonMin, lonMax) || common.AllInRange(v, lonAltMin, lonAltMax):
			return axis.Longitude, true
		case common.AllPositive(v) &&
			(common.AllInRange(v, paMin, paMax) || common.AllInRange(v, hPaMin, hPaMax)):
			return axis.Pressure, true
		}

		return axis.Unknown, false
	}
}
