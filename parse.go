package cliargs

import "github.com/fowlmouth/go-cli-args/dispatch"

func (r *Registry) keySet() dispatch.KeySet {
	keys := make(dispatch.KeySet, len(r.handlers))
	for key, h := range r.handlers {
		keys[key] = h.kind() == KindValue
	}
	return keys
}

// Parse performs one left-to-right pass over args (conventionally os.Args[1:],
// the program name excluded), invoking handlers synchronously in input order:
// each token equal to a registered key is dispatched to its handler, a token
// following a value-handler key is passed to that handler as its value and is
// never re-examined, any other token goes to the free-args handler if one is
// registered and is dropped otherwise.
//
// If the last token is a key registered with a value handler, there is no
// value to pass: the handler is not invoked and scanning stops.
//
// The Registry structure is not mutated by Parse; registration calls must not
// be interleaved with a running Parse.
func (r *Registry) Parse(args []string) {
	var pending handler
	dispatch.Iterate(args, r.keySet(), func(token dispatch.Token) bool {
		switch {
		case token.Role.Has(dispatch.RoleFlagValue):
			pending.invoke(token.Arg)
			pending = nil
		case token.Role.Has(dispatch.RoleFlag):
			h := r.handlers[token.Key]
			if token.Role.Has(dispatch.RoleWantsValue) {
				pending = h
			} else {
				h.invoke("")
			}
		default:
			if r.freeArgsClb != nil {
				r.freeArgsClb(token.Arg)
			}
		}
		return true
	})
}
