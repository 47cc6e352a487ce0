package callback

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// BorderSkipped selects which bar border is not drawn. It is tri-state on the
// wire: false (no border skipped), true (all skipped) or a position token.
type BorderSkipped string

// BorderSkipped values.
const (
	BorderSkippedOff    BorderSkipped = "false"
	BorderSkippedAll    BorderSkipped = "true"
	BorderSkippedStart  BorderSkipped = "start"
	BorderSkippedEnd    BorderSkipped = "end"
	BorderSkippedMiddle BorderSkipped = "middle"
	BorderSkippedBottom BorderSkipped = "bottom"
	BorderSkippedLeft   BorderSkipped = "left"
	BorderSkippedTop    BorderSkipped = "top"
	BorderSkippedRight  BorderSkipped = "right"
)

var borderSkippedPositions = []string{
	string(BorderSkippedStart), string(BorderSkippedEnd), string(BorderSkippedMiddle),
	string(BorderSkippedBottom), string(BorderSkippedLeft), string(BorderSkippedTop),
	string(BorderSkippedRight),
}

// Wire returns the native form: false, true, or the position token.
func (b BorderSkipped) Wire() (any, bool) {
	switch b {
	case BorderSkippedOff:
		return false, true
	case BorderSkippedAll:
		return true, true
	}
	if lo.Contains(borderSkippedPositions, string(b)) {
		return string(b), true
	}
	return nil, false
}

// BorderSkippedFromWire converts a native value back to BorderSkipped.
func BorderSkippedFromWire(v any) (BorderSkipped, bool) {
	wire, ok := BorderSkippedPolicy.Accept(v)
	if !ok {
		return "", false
	}
	switch w := wire.(type) {
	case bool:
		if w {
			return BorderSkippedAll, true
		}
		return BorderSkippedOff, true
	case string:
		return BorderSkipped(w), true
	}
	return "", false
}

// BorderSkippedPolicy accepts BorderSkipped values, booleans and position
// tokens. Its only outputs are false, true and position tokens.
var BorderSkippedPolicy = NewCoercer("border skipped", string(BorderSkippedStart), func(raw any) (any, bool) {
	switch v := raw.(type) {
	case BorderSkipped:
		return v.Wire()
	case bool:
		return v, true
	case string:
		if lo.Contains(borderSkippedPositions, v) {
			return v, true
		}
	}
	return nil, false
})

// FillMode is a named fill target.
type FillMode string

// Fill modes.
const (
	FillOrigin FillMode = "origin"
	FillStart  FillMode = "start"
	FillEnd    FillMode = "end"
	FillStack  FillMode = "stack"
	FillShape  FillMode = "shape"
)

var fillModes = []string{
	string(FillOrigin), string(FillStart), string(FillEnd), string(FillStack), string(FillShape),
}

type fillKind uint8

const (
	fillInvalid fillKind = iota
	fillBoolean
	fillAbsolute
	fillRelative
	fillMode
)

// Fill is the area fill target of a line dataset: a boolean, an absolute
// dataset index, a relative dataset offset, or a named mode.
type Fill struct {
	kind    fillKind
	enabled bool
	index   int
	mode    FillMode
}

// FillBool returns a boolean fill.
func FillBool(enabled bool) Fill {
	return Fill{kind: fillBoolean, enabled: enabled}
}

// FillDataset fills to the dataset at an absolute index (must be >= 0).
func FillDataset(index int) Fill {
	if index < 0 {
		return Fill{}
	}
	return Fill{kind: fillAbsolute, index: index}
}

// FillRelative fills to the dataset offset positions away (must not be 0).
func FillRelative(offset int) Fill {
	if offset == 0 {
		return Fill{}
	}
	return Fill{kind: fillRelative, index: offset}
}

// FillNamed fills to a named target.
func FillNamed(mode FillMode) Fill {
	if !lo.Contains(fillModes, string(mode)) {
		return Fill{}
	}
	return Fill{kind: fillMode, mode: mode}
}

// Valid reports whether f was built from a legal value.
func (f Fill) Valid() bool {
	return f.kind != fillInvalid
}

// IsBool reports whether f is a boolean fill and its value.
func (f Fill) IsBool() (enabled, ok bool) {
	return f.enabled, f.kind == fillBoolean
}

// DatasetIndex returns the absolute dataset index, if f is absolute.
func (f Fill) DatasetIndex() (int, bool) {
	return f.index, f.kind == fillAbsolute
}

// Offset returns the relative offset, if f is relative.
func (f Fill) Offset() (int, bool) {
	return f.index, f.kind == fillRelative
}

// Mode returns the named mode, if f is named.
func (f Fill) Mode() (FillMode, bool) {
	return f.mode, f.kind == fillMode
}

// Wire returns the native form: bool, number, "+n"/"-n", or mode token.
func (f Fill) Wire() (any, bool) {
	switch f.kind {
	case fillBoolean:
		return f.enabled, true
	case fillAbsolute:
		return float64(f.index), true
	case fillRelative:
		return relativeToken(f.index), true
	case fillMode:
		return string(f.mode), true
	default:
		return nil, false
	}
}

// relativeToken formats a relative offset with an explicit sign.
func relativeToken(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// parseRelative parses "+n" / "-n" tokens.
func parseRelative(s string) (int, bool) {
	if len(s) < 2 || (s[0] != '+' && s[0] != '-') {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(s, "+"))
	if err != nil || n == 0 {
		return 0, false
	}
	return n, true
}

// FillFromWire converts a native value back to a Fill.
func FillFromWire(v any) (Fill, bool) {
	switch w := v.(type) {
	case bool:
		return FillBool(w), true
	case float64:
		if w >= 0 && w == float64(int(w)) {
			return FillDataset(int(w)), true
		}
	case string:
		if n, ok := parseRelative(w); ok {
			return FillRelative(n), true
		}
		if lo.Contains(fillModes, w) {
			return FillNamed(FillMode(w)), true
		}
	}
	return Fill{}, false
}

// FillPolicy accepts Fill values, booleans, non-negative integer indexes,
// relative tokens and named modes.
var FillPolicy = NewCoercer("fill", false, func(raw any) (any, bool) {
	switch v := raw.(type) {
	case Fill:
		return v.Wire()
	case FillMode:
		return FillNamed(v).Wire()
	case bool:
		return v, true
	case string:
		if n, ok := parseRelative(v); ok {
			return relativeToken(n), true
		}
		if lo.Contains(fillModes, v) {
			return v, true
		}
		return nil, false
	}
	if f, ok := toInt(raw); ok && f >= 0 {
		return f, true
	}
	return nil, false
})

// Stepped is the stepped-line interpolation. Off is false on the wire; every
// other state is its token.
type Stepped string

// Stepped values.
const (
	SteppedOff    Stepped = "false"
	SteppedBefore Stepped = "before"
	SteppedAfter  Stepped = "after"
	SteppedMiddle Stepped = "middle"
)

var steppedTokens = []string{string(SteppedBefore), string(SteppedAfter), string(SteppedMiddle)}

// Wire returns the native form.
func (s Stepped) Wire() (any, bool) {
	if s == SteppedOff {
		return false, true
	}
	if lo.Contains(steppedTokens, string(s)) {
		return string(s), true
	}
	return nil, false
}

// SteppedFromWire converts a native value back to Stepped. The engine treats
// true as "before".
func SteppedFromWire(v any) (Stepped, bool) {
	switch w := v.(type) {
	case bool:
		if w {
			return SteppedBefore, true
		}
		return SteppedOff, true
	case string:
		if lo.Contains(steppedTokens, w) {
			return Stepped(w), true
		}
	}
	return "", false
}

// SteppedPolicy accepts Stepped values, booleans and step tokens.
var SteppedPolicy = NewCoercer("stepped", false, func(raw any) (any, bool) {
	switch v := raw.(type) {
	case Stepped:
		return v.Wire()
	case bool:
		if v {
			return string(SteppedBefore), true
		}
		return false, true
	case string:
		if lo.Contains(steppedTokens, v) {
			return v, true
		}
	}
	return nil, false
})
