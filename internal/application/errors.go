package application

import "errors"

var (
	// ErrUserAlreadyExists maps to 409.
	ErrUserAlreadyExists = errors.New("User with this email already exists")
	// ErrInvalidCredentials is deliberately identical for unknown email and
	// wrong password so login failures cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("Invalid email or password")

	// Business-rule failures of kudos creation, all mapped to 400.
	ErrInvalidSender    = errors.New("Invalid sender")
	ErrSenderNotLead    = errors.New("Sender is not a team lead")
	ErrInvalidCategory  = errors.New("Invalid category")
	ErrInvalidRecipient = errors.New("Invalid recipient")
)
