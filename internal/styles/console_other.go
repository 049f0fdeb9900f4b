//go:build !windows

package styles

// EnableVirtualTerminal is a no-op outside Windows, where terminals process
// ANSI escapes natively.
func EnableVirtualTerminal() {}
