package middleware

import "github.com/aretw0/hangman/pkg/ports"

// Middleware allows wrapping a WordStore to add behavior.
type Middleware func(ports.WordStore) ports.WordStore

// Chain wraps store with mws. The first middleware is the outermost.
func Chain(store ports.WordStore, mws ...Middleware) ports.WordStore {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}
