// Package shop implements the storefront domain layer: user registration
// and authentication with a single process-wide session, product catalog
// CRUD, and a shopping cart.
//
// All state lives in four store slots - the "users", "products" and "cart"
// collections plus the "session" scalar - and every operation is a whole-
// collection read-modify-write cycle against a [store.Store].
//
// Cross-collection consistency is expressed as explicit [Relationship]
// rules in a [Registry]: deleting a product cascades to the cart lines that
// reference it within the same delete call. Referential integrity is
// otherwise advisory - adding an unknown product id to the cart is not an
// error, and cart listings silently skip lines whose product has vanished.
//
// Domain failures are sentinel errors ([ErrEmailTaken],
// [ErrInvalidCredentials], [ErrNotFound], [ErrInvalidPrice], [ErrCartEmpty])
// matched with errors.Is; nothing in this package panics or terminates the
// process.
package shop
