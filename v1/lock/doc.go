// Package lock provides the atomic lock flag shared between a binder Cell and
// the handles it issues. The flag is a single boolean driven exclusively by
// atomic operations; it never blocks and never waits for a holder to release.
package lock
