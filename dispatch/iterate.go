package dispatch

// Iterate performs a single left-to-right pass over args, matching each token
// against keys and calling yield with the classified token. Matching is exact
// on whole tokens: no trimming, case folding or prefix matching.
//
// A token following a matched value-wanting key is yielded with RoleFlagValue
// and is never re-examined as a potential flag or free token. If a
// value-wanting key is the last token, it is yielded with
// RoleFlag|RoleWantsValue, no RoleFlagValue token follows and iteration stops.
//
// Returning false from yield stops iteration.
func Iterate(args []string, keys KeySet, yield func(token Token) bool) {
	expValue := false
	expValueKey := ""

	for i, arg := range args {
		token := Token{Arg: arg}

		if expValue {
			token.Key = expValueKey
			token.Role = RoleFlagValue
			expValue = false
			if !yield(token) {
				return
			}
			continue
		}

		wantsValue, isKey := keys[arg]
		if !isKey {
			token.Role = RoleFree
			if !yield(token) {
				return
			}
			continue
		}

		token.Key = arg
		token.Role = RoleFlag
		if wantsValue {
			token.Role |= RoleWantsValue
		}
		if !yield(token) {
			return
		}
		if wantsValue {
			if i == len(args)-1 {
				// no value token exists, stop scanning
				return
			}
			expValue = true
			expValueKey = arg
		}
	}
}
