// Package mysync provides a mutex that guards a value.
package mysync

import (
	"sync"
)

// Mutex guards a value of type T. It is meant to be shared between a loader goroutine and the UI goroutine.
type Mutex[T any] struct {
	mu sync.RWMutex
	v  T
}

type MutexUnlock struct {
	mu *sync.RWMutex
}

type MutexRUnlock struct {
	mu *sync.RWMutex
}

func NewMutex[T any](v T) *Mutex[T] {
	return &Mutex[T]{v: v}
}

// Lock locks the mutex for writing and returns the current value. The value must not be retained after unlocking.
func (mu *Mutex[T]) Lock() (T, MutexUnlock) {
	mu.mu.Lock()
	return mu.v, MutexUnlock{&mu.mu}
}

func (mu *Mutex[T]) RLock() (T, MutexRUnlock) {
	mu.mu.RLock()
	return mu.v, MutexRUnlock{&mu.mu}
}

func (u MutexUnlock) Unlock()   { u.mu.Unlock() }
func (u MutexRUnlock) RUnlock() { u.mu.RUnlock() }

// Load returns the current value.
func (mu *Mutex[T]) Load() T {
	v, u := mu.RLock()
	defer u.RUnlock()
	return v
}

// Store replaces the value.
func (mu *Mutex[T]) Store(v T) {
	mu.mu.Lock()
	defer mu.mu.Unlock()
	mu.v = v
}

// Update replaces the value with the result of fn, which is called with the mutex held.
func (mu *Mutex[T]) Update(fn func(T) T) {
	mu.mu.Lock()
	defer mu.mu.Unlock()
	mu.v = fn(mu.v)
}
