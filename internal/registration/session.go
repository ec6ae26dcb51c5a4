package registration

import "time"

// Session is one user's in-progress registration. Answers holds a value
// for every field before Current and nothing for Current or later.
type Session struct {
	UserID    int64
	Current   Field
	Answers   map[Field]string
	CreatedAt time.Time
}

func NewSession(userID int64) *Session {
	return &Session{
		UserID:    userID,
		Current:   FieldName,
		Answers:   make(map[Field]string),
		CreatedAt: time.Now(),
	}
}
