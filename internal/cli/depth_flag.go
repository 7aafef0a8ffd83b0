package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/temirov/tree/internal/tree"
)

const (
	depthFlagTypeName          = "N"
	invalidDigitMessage        = "invalid digit found in string"
	emptyIntegerMessage        = "cannot parse integer from empty string"
	integerTooLargeMessage     = "number too large to fit in target type"
	unlimitedDepthDisplayValue = ""
	positiveSignPrefix         = "+"
)

// depthFlagValue parses a non-negative traversal depth into an optional limit.
type depthFlagValue struct {
	target **uint
}

func (value *depthFlagValue) Set(input string) error {
	parsed, parseError := parseDepth(input)
	if parseError != nil {
		return parseError
	}
	*value.target = tree.DepthLimit(parsed)
	return nil
}

func (value *depthFlagValue) String() string {
	if value == nil || value.target == nil || *value.target == nil {
		return unlimitedDepthDisplayValue
	}
	return strconv.FormatUint(uint64(**value.target), 10)
}

func (value *depthFlagValue) Type() string {
	return depthFlagTypeName
}

func registerDepthFlag(flagSet *pflag.FlagSet, target **uint) {
	if flagSet == nil || target == nil {
		return
	}
	flagSet.VarP(&depthFlagValue{target: target}, depthFlagName, depthFlagShorthand, depthFlagDescription)
}

// parseDepth converts input into a depth, reporting malformed values as invalid configuration.
func parseDepth(input string) (uint, error) {
	if input == "" {
		return 0, tree.NewInvalidConfigurationError(emptyIntegerMessage, nil)
	}
	digits := input
	if len(digits) > 1 && strings.HasPrefix(digits, positiveSignPrefix) {
		digits = strings.TrimPrefix(digits, positiveSignPrefix)
	}
	parsed, parseError := strconv.ParseUint(digits, 10, strconv.IntSize)
	if parseError == nil {
		return uint(parsed), nil
	}
	if errors.Is(parseError, strconv.ErrRange) {
		return 0, tree.NewInvalidConfigurationError(integerTooLargeMessage, parseError)
	}
	return 0, tree.NewInvalidConfigurationError(invalidDigitMessage, parseError)
}
