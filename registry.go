package cliargs

import "fmt"

// HandlerKind identifies the behavior variant a key is registered with.
type HandlerKind int

const (
	// KindValue handler consumes the token following the key and receives it as its argument
	KindValue HandlerKind = iota
	// KindFlag handler is invoked with no arguments and consumes nothing
	KindFlag
	// KindBoundFlag handler sets a caller-owned boolean to true
	KindBoundFlag
)

type handler interface {
	kind() HandlerKind
	invoke(value string)
}

type valueHandler func(value string)

func (h valueHandler) kind() HandlerKind {
	return KindValue
}

func (h valueHandler) invoke(value string) {
	h(value)
}

type flagHandler func()

func (h flagHandler) kind() HandlerKind {
	return KindFlag
}

func (h flagHandler) invoke(string) {
	h()
}

type boundFlag struct {
	flag *bool
}

func (h boundFlag) kind() HandlerKind {
	return KindBoundFlag
}

func (h boundFlag) invoke(string) {
	*h.flag = true
}

// Registry accumulates handler bindings keyed by exact flag text plus an
// optional handler for free (unmatched) arguments.
// Registration methods return the Registry itself to allow chained calls.
// It's not safe for concurrent use.
type Registry struct {
	handlers    map[string]handler
	freeArgsClb func(arg string)
}

func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]handler),
	}
}

func (r *Registry) register(key string, h handler) *Registry {
	if key == "" {
		panic("cliargs: empty key")
	}
	r.handlers[key] = h
	return r
}

// RegisterValueHandler binds key to clb that will be invoked with the token
// following each occurrence of key.
// Re-registering the same key silently overwrites the previous binding.
// Panics if key is empty or clb is nil.
func (r *Registry) RegisterValueHandler(key string, clb func(value string)) *Registry {
	if clb == nil {
		panic(fmt.Sprintf("cliargs: nil callback for key %q", key))
	}
	return r.register(key, valueHandler(clb))
}

// RegisterFlagHandler binds key to clb that will be invoked with no arguments
// on each occurrence of key.
// Re-registering the same key silently overwrites the previous binding.
// Panics if key is empty or clb is nil.
func (r *Registry) RegisterFlagHandler(key string, clb func()) *Registry {
	if clb == nil {
		panic(fmt.Sprintf("cliargs: nil callback for key %q", key))
	}
	return r.register(key, flagHandler(clb))
}

// RegisterBoundFlag binds key to a caller-owned boolean that is set to true
// on each occurrence of key (repeated occurrences keep it true).
// The Registry holds flag as a non-owning pointer: the caller is responsible
// for its initial value and for keeping the storage alive while the Registry
// is in use.
// Re-registering the same key silently overwrites the previous binding.
// Panics if key is empty or flag is nil.
func (r *Registry) RegisterBoundFlag(key string, flag *bool) *Registry {
	if flag == nil {
		panic(fmt.Sprintf("cliargs: nil bound flag for key %q", key))
	}
	return r.register(key, boundFlag{flag: flag})
}

// RegisterFreeArgsHandler sets clb to be invoked with each token that matches
// no registered key. At most one free-args handler exists: re-registering
// overwrites the previous one. Without it free tokens are dropped.
// Panics if clb is nil.
func (r *Registry) RegisterFreeArgsHandler(clb func(arg string)) *Registry {
	if clb == nil {
		panic("cliargs: nil free args callback")
	}
	r.freeArgsClb = clb
	return r
}

// Lookup reports the kind of the handler key is currently bound to.
func (r *Registry) Lookup(key string) (kind HandlerKind, has bool) {
	h, has := r.handlers[key]
	if !has {
		return 0, false
	}
	return h.kind(), true
}
