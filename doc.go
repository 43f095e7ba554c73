// Package main provides the entry point of the EARG API. It serves the
// storefront and the editable site content of Educate A Rural Girl over a
// fiber REST API backed by gorm, and ships the maintenance commands to
// create, seed and repair the database.
package main
