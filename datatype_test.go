package facefilter

import (
	"errors"
	"testing"
)

func TestDataTypeInfo(t *testing.T) {
	tests := []struct {
		dt       DataType
		size     int
		one      float64
		name     string
		floating bool
	}{
		{Uint8, 1, 255, "uint8", false},
		{Uint16, 2, 65535, "uint16", false},
		{Half, 2, 1, "half", true},
		{Float, 4, 1, "float32", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.dt.IsValid() {
				t.Errorf("%v.IsValid() = false", tt.dt)
			}
			if got := tt.dt.Size(); got != tt.size {
				t.Errorf("Size() = %d, want %d", got, tt.size)
			}
			if got := tt.dt.OneValue(); got != tt.one {
				t.Errorf("OneValue() = %v, want %v", got, tt.one)
			}
			if got := tt.dt.Info().IsFloat; got != tt.floating {
				t.Errorf("IsFloat = %v, want %v", got, tt.floating)
			}
			if got := tt.dt.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			parsed, err := ParseDataType(tt.name)
			if err != nil || parsed != tt.dt {
				t.Errorf("ParseDataType(%q) = %v, %v", tt.name, parsed, err)
			}
		})
	}
}

func TestDataTypeInvalid(t *testing.T) {
	dt := dataTypeCount
	if dt.IsValid() {
		t.Error("dataTypeCount should not be valid")
	}
	if dt.String() != "unknown" {
		t.Errorf("String() = %q, want unknown", dt.String())
	}
	if dt.Info() != (DataTypeInfo{}) {
		t.Errorf("Info() = %+v, want zero", dt.Info())
	}
	if _, err := ParseDataType("int8"); !errors.Is(err, ErrInvalidType) {
		t.Errorf("ParseDataType(int8) error = %v, want %v", err, ErrInvalidType)
	}
	if got, _ := ParseDataType("float"); got != Float {
		t.Errorf("ParseDataType(float) = %v, want %v", got, Float)
	}
}

func TestLayoutString(t *testing.T) {
	if Packed.String() != "packed" || Strided.String() != "strided" || Layout(9).String() != "unknown" {
		t.Errorf("Layout strings = %q %q %q", Packed, Strided, Layout(9))
	}
}
