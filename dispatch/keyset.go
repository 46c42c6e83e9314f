package dispatch

// KeySet is a map where key is an exact flag token and value indicates
// the flag consumes a following token as its value
type KeySet map[string]bool

func (keys KeySet) Clone() KeySet {
	clone := make(KeySet, len(keys))
	for key, wantsValue := range keys {
		clone[key] = wantsValue
	}
	return clone
}
