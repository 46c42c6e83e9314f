package dispatch

type Role int

func (r Role) Has(role Role) bool {
	return r&role != 0
}

const (
	RoleFlag       Role = 1 << iota
	RoleWantsValue      = 1 << iota // modifies RoleFlag
	RoleFlagValue       = 1 << iota
	RoleFree            = 1 << iota
)

type Token struct {
	Arg string
	// Key is the registered key the token matched (RoleFlag)
	// or the key whose value it is (RoleFlagValue)
	Key string
	// Role is sum of Role constants. Possible values:
	// RoleFlag                   // matched key, consumes no value
	// RoleFlag | RoleWantsValue  // matched key, the next token is its value.
	//                            // If no next token exists, iteration stops after this token
	// RoleFlagValue              // value of the preceding flag, never re-examined as a flag
	// RoleFree                   // matched no key
	Role Role
}
