package eventlist

import (
	"fmt"
	"strings"

	"github.com/roadrunner-server/errors"
)

// Severity numbers. Higher is more severe.
const (
	NumDebug    int = 10
	NumInfo     int = 20
	NumWarning  int = 30
	NumError    int = 40
	NumCritical int = 50
)

var levelNumbers = map[string]int{
	"debug":    NumDebug,
	"info":     NumInfo,
	"warning":  NumWarning,
	"warn":     NumWarning,
	"error":    NumError,
	"critical": NumCritical,
	"fatal":    NumCritical,
}

var levelNames = map[int]string{
	NumDebug:    "debug",
	NumInfo:     "info",
	NumWarning:  "warning",
	NumError:    "error",
	NumCritical: "critical",
}

// Number returns the severity number for a level given as an int (returned
// unchanged) or a case-insensitive name. Unknown names are an error, never a
// sentinel value.
func Number(level any) (int, error) {
	switch l := level.(type) {
	case int:
		return l, nil
	case string:
		n, ok := levelNumbers[strings.ToLower(l)]
		if !ok {
			return 0, errors.Str("Unknown level name " + l)
		}
		return n, nil
	default:
		return 0, errors.Errorf("Unknown level type %T", level)
	}
}

// Name returns the canonical lowercase name for a level given as an int or a
// string. Strings are lowercased without validation; numbers outside the
// known set yield "level <n>".
func Name(level any) string {
	switch l := level.(type) {
	case int:
		name, ok := levelNames[l]
		if !ok {
			return fmt.Sprintf("level %d", l)
		}
		return name
	case string:
		return strings.ToLower(l)
	default:
		return fmt.Sprintf("level %v", level)
	}
}
