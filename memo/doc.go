// Package memo tableizes pure invocables: it memoizes Run by the values of the
// trailing arguments.
//
// Tableize is only sound when the bound invocable is pure. That means every
// bound argument is fixed (ValueOf, or OwnedOf/RefOf whose target the callable
// never mutates) and the callable itself depends on nothing but its arguments.
// DerefOf and LazyOf arguments change between runs and must not be tableized.
//
// Two tables are provided:
//   - Trie: dual-map rotation, bounded by the number of stored entries.
//   - Cache: ristretto-backed, bounded by cost, with TinyLFU admission.
//
// Arguments are keyed by value. A fmt.Stringer is keyed by its String(),
// anything else must be comparable or Load/Store will panic.
//
// WARNING: Do not tableize impure callables (time, I/O, shared state).
package memo
