package lock

import "sync/atomic"

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Flag is a shared lock flag. It outlives any single holder: the owner and
// every holder it ever admitted keep a pointer to the same Flag.
type Flag struct {
	noCopy noCopy
	locked atomic.Bool
}

// NewFlag returns an unlocked flag.
func NewFlag() *Flag {
	return &Flag{}
}

// TryLock attempts to move the flag from unlocked to locked without waiting.
// It returns true only for the caller that performed the transition.
func (f *Flag) TryLock() bool {
	return f.locked.CompareAndSwap(false, true)
}

// Unlock moves the flag to unlocked and reports whether it was locked before
// the call. A false result means the flag had already been released.
func (f *Flag) Unlock() bool {
	return f.locked.Swap(false)
}

// Locked reports the current state of the flag.
func (f *Flag) Locked() bool {
	return f.locked.Load()
}
