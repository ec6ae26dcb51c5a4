package registration

import "time"

// Record is the immutable result of a confirmed session, ready to be
// appended to the census sheet.
type Record struct {
	FullName     string
	NationalID   string
	Address      string
	BillCode     string
	BusinessName string
	Activity     string
	SubmittedAt  time.Time
}

// Row lays the record out in the fixed sheet column order:
// name, id, address, bill code, business name, activity, timestamp.
func (r *Record) Row() []string {
	return []string{
		r.FullName,
		r.NationalID,
		r.Address,
		r.BillCode,
		r.BusinessName,
		r.Activity,
		r.SubmittedAt.Format(time.RFC3339),
	}
}
