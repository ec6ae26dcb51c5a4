package registration

// Field names one step of the census flow. The declaration order is the
// order in which the bot asks for the fields; FieldDone is the terminal
// sentinel and never holds an answer.
type Field int

const (
	FieldName Field = iota
	FieldNationalID
	FieldAddress
	FieldDocument
	FieldBusinessName
	FieldActivity
	FieldConfirm
	FieldDone
)

func (f Field) Next() Field {
	if f >= FieldDone {
		return FieldDone
	}

	return f + 1
}

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldNationalID:
		return "national_id"
	case FieldAddress:
		return "address"
	case FieldDocument:
		return "document"
	case FieldBusinessName:
		return "business_name"
	case FieldActivity:
		return "activity"
	case FieldConfirm:
		return "confirm"
	case FieldDone:
		return "done"
	default:
		return "unknown"
	}
}
