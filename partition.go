package cliargs

import "github.com/fowlmouth/go-cli-args/dispatch"

// Partition classifies args against the registered keys without invoking any
// handlers: matched contains the registered flag tokens together with the
// value tokens they consume, free contains the rest, both in input order.
// Useful for hosts that forward unrecognized arguments elsewhere.
func (r *Registry) Partition(args []string) (matched, free []string) {
	dispatch.Iterate(args, r.keySet(), func(token dispatch.Token) bool {
		if token.Role.Has(dispatch.RoleFree) {
			free = append(free, token.Arg)
		} else {
			matched = append(matched, token.Arg)
		}
		return true
	})
	return matched, free
}
