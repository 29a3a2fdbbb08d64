package binding

import (
	"fmt"
	"strings"
)

// Mode selects the direction in which a Binding synchronizes values.
type Mode int

const (
	// OneWay updates the target whenever the source changes.
	OneWay Mode = iota
	// TwoWay also writes target changes back to the source.
	TwoWay
	// OneTime copies the source to the target once, at construction.
	OneTime
)

func (m Mode) String() string {
	switch m {
	case OneWay:
		return "OneWay"
	case TwoWay:
		return "TwoWay"
	case OneTime:
		return "OneTime"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m == OneWay || m == TwoWay || m == OneTime
}

// ParseMode parses a mode name. It accepts "OneWay", "one-way", "one_way"
// and "oneway" spellings, case-insensitively.
func ParseMode(s string) (Mode, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	switch key {
	case "oneway":
		return OneWay, nil
	case "twoway":
		return TwoWay, nil
	case "onetime":
		return OneTime, nil
	}
	return OneWay, fmt.Errorf("unknown binding mode %q", s)
}
