// Package favorites keeps the user's saved references: an ordered list with
// unique ids, written through to a key-value Storage on every change and
// restored once when the Store is created.
package favorites
