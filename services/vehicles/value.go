package vehicles

import "strconv"

// Value is a normalized field value: text, a number, or nothing. "No
// value" is an explicit state persisted as SQL NULL, it is not an
// error and it is distinct from text that happens to spell a
// placeholder word.
type Value struct {
	kind valueKind
	text string
	num  float64
}

type valueKind int

const (
	valueNone valueKind = iota
	valueText
	valueNumber
)

func NoValue() Value {
	return Value{}
}

func Text(s string) Value {
	return Value{kind: valueText, text: s}
}

func Number(f float64) Value {
	return Value{kind: valueNumber, num: f}
}

func (v Value) IsNone() bool {
	return v.kind == valueNone
}

func (v Value) Text() (string, bool) {
	return v.text, v.kind == valueText
}

func (v Value) Number() (float64, bool) {
	return v.num, v.kind == valueNumber
}

// Arg renders the value as a bind parameter: nil for "no value".
func (v Value) Arg() any {
	switch v.kind {
	case valueText:
		return v.text
	case valueNumber:
		return v.num
	}
	return nil
}

func (v Value) String() string {
	switch v.kind {
	case valueText:
		return v.text
	case valueNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return ""
}
