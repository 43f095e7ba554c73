// Package auth provides the admin session middleware of the api.
//
// The middleware reads the session id from a Bearer token or from the
// session cookie, loads the session, re-reads the admin account and stores
// it in fiber.Locals.
// Requests without a valid session are answered with 401.
//
// Usage:
//
//	guard := authmiddleware.New(cfg, store, db)
//	app.Delete("/api/products/:id", guard, handler)
package auth
