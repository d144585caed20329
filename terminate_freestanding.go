//go:build freestanding

package fatal

// halt stops the processor. It is provided by the board support package via SetHalt.
var halt = spin

// SetHalt registers the primitive that stops execution on a freestanding target. Board support
// packages call it from an init function. fn must never return; it typically stops the processor
// or enters a trap loop. A nil fn restores the default, which spins forever.
func SetHalt(fn func()) {
	if fn == nil {
		fn = spin
	}
	halt = fn
}

// terminate halts the processor. It spins should the registered halt return.
func terminate() {
	halt()
	spin()
}

func spin() {
	for {
	}
}
