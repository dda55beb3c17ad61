package entities

import "errors"

type Role string

const (
	Student      Role = "student"
	Professional Role = "professional"
	Firm         Role = "firm"
)

func ToRole(s string) (Role, error) {
	switch s {
	case string(Student):
		return Student, nil
	case string(Professional):
		return Professional, nil
	case string(Firm):
		return Firm, nil
	default:
		return "", errors.New("invalid role")
	}
}

// Identity is the stable result of an external sign-in. It is replaced
// wholesale on every auth-state change.
type Identity struct {
	UserID string
	Role   Role
}

// Payer is what the payment processor needs to present its checkout to the
// paying user.
type Payer struct {
	Email   string
	Name    string
	Contact string
}
