//go:build freestanding

package fatal

// describe is a no-op as freestanding targets have no diagnostic stream.
func describe(kind, string, string, int) {}
