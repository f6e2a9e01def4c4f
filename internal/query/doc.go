// Package query translates URL query parameters of list endpoints into a
// backend-independent [Spec]: field filters, an optional sort and an
// optional page window.
//
// The store layer turns a Spec into SQL; handlers only call [Build] and add
// identity scoping through [Spec.WithFilter].
package query
