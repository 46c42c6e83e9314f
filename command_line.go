package cliargs

import "os"

// CommandLine is a default Registry that is used by the package functions.
// It follows the same pattern as flag.CommandLine in the stdlib.
var CommandLine = NewRegistry()

// RegisterValueHandler binds key to clb on the default Registry.
// See Registry.RegisterValueHandler
func RegisterValueHandler(key string, clb func(value string)) *Registry {
	return CommandLine.RegisterValueHandler(key, clb)
}

// RegisterFlagHandler binds key to clb on the default Registry.
// See Registry.RegisterFlagHandler
func RegisterFlagHandler(key string, clb func()) *Registry {
	return CommandLine.RegisterFlagHandler(key, clb)
}

// RegisterBoundFlag binds key to flag on the default Registry.
// See Registry.RegisterBoundFlag
func RegisterBoundFlag(key string, flag *bool) *Registry {
	return CommandLine.RegisterBoundFlag(key, flag)
}

// RegisterFreeArgsHandler sets the free-args handler of the default Registry.
// See Registry.RegisterFreeArgsHandler
func RegisterFreeArgsHandler(clb func(arg string)) *Registry {
	return CommandLine.RegisterFreeArgsHandler(clb)
}

// Parse parses the command-line arguments from os.Args[1:] using the default Registry
func Parse() {
	CommandLine.Parse(os.Args[1:])
}
