// Package auth provides the fiber middleware gating admin routes.
//
// RequireAdmin must be the first handler of every mutating route. It reads the session
// cookie, loads the session from the injected store and rejects the request with
// 401 {"error": "Unauthorized. Please login first."} unless the session is an admin session.
// The session data is available to later handlers through FromContext.
package auth
