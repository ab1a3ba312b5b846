package dispatch

import (
	"fmt"

	"github.com/stagecraft/catalogd/errors"
)

// Command arguments arrive as a loosely-typed positional list decoded from
// JSON, so strings are string and every number is float64. These helpers
// validate once at the boundary so handlers work with precise types.

// stringArg returns the required string argument at index i.
func stringArg(command string, args []interface{}, i int, name string) (string, error) {
	if i >= len(args) {
		return "", errors.MissingArgument(command, name)
	}
	s, ok := args[i].(string)
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("%s argument '%s' must be a string", command, name)).
			WithDetail("command", command).
			WithDetail("argument", name)
	}
	return s, nil
}

// optionalStringArg returns the string argument at index i, or "" when the
// argument list is too short.
func optionalStringArg(command string, args []interface{}, i int, name string) (string, error) {
	if i >= len(args) {
		return "", nil
	}
	return stringArg(command, args, i, name)
}

// intArg returns the required integer argument at index i. JSON numbers come
// through as float64; fractional values are rejected.
func intArg(command string, args []interface{}, i int, name string) (int, error) {
	if i >= len(args) {
		return 0, errors.MissingArgument(command, name)
	}
	switch v := args[i].(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, errors.New(errors.ErrCodeInvalidArgument,
				fmt.Sprintf("%s argument '%s' must be an integer", command, name)).
				WithDetail("command", command).
				WithDetail("argument", name)
		}
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("%s argument '%s' must be an integer", command, name)).
			WithDetail("command", command).
			WithDetail("argument", name)
	}
}

// optionalIntArg returns the integer argument at index i, or 0 when the
// argument list is too short.
func optionalIntArg(command string, args []interface{}, i int, name string) (int, error) {
	if i >= len(args) {
		return 0, nil
	}
	return intArg(command, args, i, name)
}

// restStringArgs returns the arguments from index i onward as strings.
func restStringArgs(command string, args []interface{}, i int, name string) ([]string, error) {
	rest := make([]string, 0, len(args))
	for ; i < len(args); i++ {
		s, err := stringArg(command, args, i, name)
		if err != nil {
			return nil, err
		}
		rest = append(rest, s)
	}
	return rest, nil
}
