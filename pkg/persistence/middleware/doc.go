// Package middleware provides decorators for ports.WordStore.
package middleware
