package layout

// Target describes the machine model the footprint is computed for.
type Target struct {
	Name     string // e.g. "x86_64-linux-gnu"
	PtrSize  int    // bytes
	PtrAlign int    // bytes
	MaxAlign int    // cap on payload alignment, 0 means uncapped
}

// X86_64LinuxGNU returns the default 64-bit target.
func X86_64LinuxGNU() Target {
	return Target{
		Name:     "x86_64-linux-gnu",
		PtrSize:  8,
		PtrAlign: 8,
	}
}
