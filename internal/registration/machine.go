package registration

import (
	"time"

	"github.com/AlekSi/pointer"
)

// Outcome is the effect of feeding one event to a session. Reply is the
// message to send back. Done means the session reached its terminal state
// and must be removed from the store. Record is set only when the user
// confirmed and a row should be appended; the driver picks the success or
// failure acknowledgment from the append result.
type Outcome struct {
	Reply  string
	Done   bool
	Record *Record
}

// Advance runs one transition of the registration flow. A rejected input
// leaves the session untouched and re-prompts the same field; an accepted
// one stores the answer and moves to the next prompt. Advance never talks
// to the transport or the sheet.
func Advance(sess *Session, ev Event) Outcome {
	switch sess.Current {
	case FieldName:
		return acceptText(sess, ev, MsgEmptyName)
	case FieldNationalID:
		if ev.Kind != KindText || !IsValidNationalID(ev.Text) {
			return Outcome{Reply: MsgInvalidNationalID}
		}

		return accept(sess, ev.Text)
	case FieldAddress:
		return acceptText(sess, ev, MsgEmptyAddress)
	case FieldDocument:
		if !ev.AttachmentPresent {
			return Outcome{Reply: MsgMissingAttachment}
		}

		return accept(sess, ExtractBillCode(ev.Caption))
	case FieldBusinessName:
		return acceptText(sess, ev, MsgEmptyBusinessName)
	case FieldActivity:
		return acceptText(sess, ev, MsgEmptyActivity)
	case FieldConfirm:
		sess.Current = FieldDone

		if ev.Kind == KindText && IsAffirmative(ev.Text) {
			return Outcome{Done: true, Record: buildRecord(sess)}
		}

		return Outcome{Done: true, Reply: MsgCancelled}
	default:
		return Outcome{Reply: MsgNoSession}
	}
}

// Cancel terminates the session without writing, from any state.
func Cancel(sess *Session) Outcome {
	sess.Current = FieldDone

	return Outcome{Done: true, Reply: MsgCancelled}
}

func acceptText(sess *Session, ev Event, reprompt string) Outcome {
	if ev.Kind != KindText || ev.Text == "" {
		return Outcome{Reply: reprompt}
	}

	return accept(sess, ev.Text)
}

func accept(sess *Session, value string) Outcome {
	sess.Answers[sess.Current] = value
	sess.Current = sess.Current.Next()

	if sess.Current == FieldConfirm {
		return Outcome{Reply: Summary(sess)}
	}

	return Outcome{Reply: prompt(sess.Current)}
}

func buildRecord(sess *Session) *Record {
	return pointer.To(Record{
		FullName:     sess.Answers[FieldName],
		NationalID:   sess.Answers[FieldNationalID],
		Address:      sess.Answers[FieldAddress],
		BillCode:     sess.Answers[FieldDocument],
		BusinessName: sess.Answers[FieldBusinessName],
		Activity:     sess.Answers[FieldActivity],
		SubmittedAt:  time.Now(),
	})
}
