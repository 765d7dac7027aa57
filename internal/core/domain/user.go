package domain

type User struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Image    string `json:"image,omitempty"`
}

// Session is the authenticated identity passed explicitly into every core
// operation.
type Session struct {
	User User
}

func NewSession(user User) Session {
	return Session{User: user}
}

func (s Session) UserID() ID {
	return s.User.ID
}

func (s Session) Validate() error {
	if s.User.ID.IsZero() {
		return ErrUnauthenticated
	}
	return nil
}
