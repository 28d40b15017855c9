package login

const (
	// MsgSuccess is the message of a successful login.
	MsgSuccess = "Login successful"

	// MsgInvalidFormat is the error of a body that is not a login request.
	MsgInvalidFormat = "Invalid credentials format"

	// MsgInvalidCredentials is the error of every rejected login, whichever part of the credentials was wrong.
	MsgInvalidCredentials = "Invalid username or password"

	// MsgFailed is the error of a login that could not be completed.
	MsgFailed = "Login failed"
)
