// Package converters provides ready-made binding.Converter implementations.
package converters

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/go-drift/mvvm/pkg/binding"
)

// Not inverts booleans in both directions.
var Not binding.Converter = notConverter{}

type notConverter struct{}

func (notConverter) Convert(value, _ any) (any, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, fmt.Errorf("not: want bool, got %T", value)
	}
	return !b, nil
}

func (c notConverter) ConvertBack(value, param any) (any, error) {
	return c.Convert(value, param)
}

// Int converts integers to decimal strings and parses them back. Surrounding
// whitespace is ignored when parsing; an empty string parses as zero.
var Int binding.Converter = intConverter{}

type intConverter struct{}

func (intConverter) Convert(value, _ any) (any, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case int:
		return strconv.Itoa(v), nil
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", v), nil
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v), nil
	}
	return nil, fmt.Errorf("int: want integer, got %T", value)
}

func (intConverter) ConvertBack(value, _ any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("int: want string, got %T", value)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("int: %w", err)
	}
	return n, nil
}

// Format returns a one-way converter rendering values with a printf pattern
// localized for tag: numbers get the locale's digit grouping and decimal
// separator. An empty pattern takes the pattern from the converter parameter.
func Format(tag language.Tag, pattern string) binding.Converter {
	return formatConverter{printer: message.NewPrinter(tag), pattern: pattern}
}

type formatConverter struct {
	printer *message.Printer
	pattern string
}

func (c formatConverter) Convert(value, param any) (any, error) {
	pattern := c.pattern
	if pattern == "" {
		p, ok := param.(string)
		if !ok {
			return nil, fmt.Errorf("format: no pattern and parameter %T is not a string", param)
		}
		pattern = p
	}
	return c.printer.Sprintf(pattern, value), nil
}

// Func builds a converter from plain functions. A nil backward makes the
// converter pass target values through unchanged.
func Func(forward, backward func(value, param any) (any, error)) binding.Converter {
	return binding.ConverterFuncs{Forward: forward, Backward: backward}
}

// Named returns the converters addressable by name from manifests.
func Named() map[string]binding.Converter {
	return map[string]binding.Converter{
		"not":    Not,
		"int":    Int,
		"color":  Color,
		"format": Format(language.English, ""),
	}
}
