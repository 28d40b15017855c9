// Package auth checks admin credentials.
//
// Two credential sources exist, selected by config.Auth.Source:
//   - StaticProvider compares against the configured admin username and password
//   - LocalProvider looks the user up in the users table and verifies the password hash
//
// Service wraps the selected provider. Every failed login, whatever the reason, is reported
// to the caller as ErrInvalidCredentials, so a client cannot probe for usernames. The reason
// is logged at debug level.
//
// Example usage:
//
//	authService := auth.NewService(cfg.Auth, db)
//
//	identity, err := authService.Login(username, password)
//	if errors.Is(err, auth.ErrInvalidCredentials) {
//	    // 401
//	}
package auth
