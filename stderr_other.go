//go:build !freestanding && (!unix || hurd)

package fatal

import (
	"io"
	"os"
)

// stderr is the diagnostic stream failures are reported to.
var stderr io.Writer = os.Stderr
