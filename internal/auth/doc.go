// Package auth authenticates admin accounts against the local database.
//
// Passwords are stored as Argon2id hashes. A successful login is turned
// into a session by the web layer, see internal/web/session.
package auth
