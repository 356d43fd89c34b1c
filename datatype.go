package facefilter

// DataType identifies the storage representation of one texel channel.
type DataType uint8

const (
	// Uint8 stores each channel as an unsigned byte, normalized by 255.
	Uint8 DataType = iota

	// Uint16 stores each channel as an unsigned 16-bit integer, normalized by 65535.
	Uint16

	// Half stores each channel as an IEEE 754 binary16 float.
	Half

	// Float stores each channel as an IEEE 754 binary32 float.
	Float

	// dataTypeCount is the number of data types (for internal use).
	dataTypeCount
)

// DataTypeInfo contains metadata about a storage representation.
type DataTypeInfo struct {
	// Size is the number of bytes per channel.
	Size int

	// OneValue is the stored value that decodes to 1.0.
	OneValue float64

	// IsFloat indicates a floating-point representation.
	IsFloat bool
}

var dataTypeInfoTable = [dataTypeCount]DataTypeInfo{
	Uint8:  {Size: 1, OneValue: 255, IsFloat: false},
	Uint16: {Size: 2, OneValue: 65535, IsFloat: false},
	Half:   {Size: 2, OneValue: 1, IsFloat: true},
	Float:  {Size: 4, OneValue: 1, IsFloat: true},
}

// Info returns the DataTypeInfo for this data type.
func (dt DataType) Info() DataTypeInfo {
	if dt >= dataTypeCount {
		return DataTypeInfo{}
	}
	return dataTypeInfoTable[dt]
}

// Size returns the number of bytes per channel.
func (dt DataType) Size() int {
	return dt.Info().Size
}

// OneValue returns the stored value that decodes to 1.0.
func (dt DataType) OneValue() float64 {
	return dt.Info().OneValue
}

// IsValid returns true if dt is a known data type.
func (dt DataType) IsValid() bool {
	return dt < dataTypeCount
}

// String returns a string representation of the data type.
func (dt DataType) String() string {
	switch dt {
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Half:
		return "half"
	case Float:
		return "float32"
	default:
		return "unknown"
	}
}

// ParseDataType returns the data type named s, accepting the String forms
// plus "float" as an alias for Float.
func ParseDataType(s string) (DataType, error) {
	switch s {
	case "uint8":
		return Uint8, nil
	case "uint16":
		return Uint16, nil
	case "half":
		return Half, nil
	case "float", "float32":
		return Float, nil
	default:
		return 0, ErrInvalidType
	}
}

// Layout describes how channels are laid out within one stored texel.
type Layout uint8

const (
	// Packed texels store exactly the filtered channels (NTxChan == NChan).
	Packed Layout = iota

	// Strided texels carry extra channels that the filter skips (NTxChan > NChan).
	Strided
)

// String returns a string representation of the layout.
func (l Layout) String() string {
	switch l {
	case Packed:
		return "packed"
	case Strided:
		return "strided"
	default:
		return "unknown"
	}
}
