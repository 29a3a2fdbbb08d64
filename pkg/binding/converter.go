package binding

// Converter transforms source values before they are written to a target.
type Converter interface {
	Convert(value, parameter any) (any, error)
}

// BackConverter is implemented by converters that can also transform target
// values on their way back to the source. A TwoWay binding whose converter
// does not implement BackConverter writes the raw target value.
type BackConverter interface {
	ConvertBack(value, parameter any) (any, error)
}

// ConverterFuncs adapts a pair of functions to Converter and BackConverter.
// A nil Forward passes values through unchanged; a nil Backward does the same
// in the other direction.
type ConverterFuncs struct {
	Forward  func(value, parameter any) (any, error)
	Backward func(value, parameter any) (any, error)
}

// Convert implements Converter.
func (c ConverterFuncs) Convert(value, parameter any) (any, error) {
	if c.Forward == nil {
		return value, nil
	}
	return c.Forward(value, parameter)
}

// ConvertBack implements BackConverter.
func (c ConverterFuncs) ConvertBack(value, parameter any) (any, error) {
	if c.Backward == nil {
		return value, nil
	}
	return c.Backward(value, parameter)
}
