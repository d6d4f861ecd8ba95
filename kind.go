package formdoc

// Kind is the value type of a field.
type Kind int

const (
	KindInvalid Kind = iota
	KindInt
	KindFloat
	KindString
	KindBool
	KindDate
	KindDateTime
	KindEnum
	KindNode
)

var kindNames = [...]string{
	KindInvalid:  "invalid",
	KindInt:      "int",
	KindFloat:    "float",
	KindString:   "string",
	KindBool:     "bool",
	KindDate:     "date",
	KindDateTime: "datetime",
	KindEnum:     "enum",
	KindNode:     "node",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// IsNullable reports whether an absent field of this kind reads as null
// rather than as a zero scalar.
func (k Kind) IsNullable() bool {
	switch k {
	case KindDate, KindDateTime, KindEnum, KindNode:
		return true
	default:
		return false
	}
}

// State is the presence state of a field slot.
type State int

const (
	Absent State = iota
	Nil
	Present
)

func (s State) String() string {
	switch s {
	case Absent:
		return "absent"
	case Nil:
		return "nil"
	case Present:
		return "present"
	default:
		return "?"
	}
}

type Cardinality int

const (
	Single Cardinality = iota
	Repeated
)

func (c Cardinality) String() string {
	if c == Repeated {
		return "repeated"
	}
	return "single"
}
