//go:build hashkit_debug

package assert

// Enabled reports whether caller-contract checks are compiled in.
const Enabled = true
