// Package listmatcher implements the pluggable list-membership extension
// system behind "value in list" predicates.
//
// The abstraction is two-level. A Definition describes a list kind: it
// constructs fresh matchers and reconstructs them from serialized payloads.
// A Matcher is the live membership state for one list in one execution
// context: mutable, cloneable, comparable across unknown concrete kinds,
// and serializable without the caller knowing the concrete type.
//
// Reference kinds "always" and "never" carry no state and are useful as
// placeholders. Real backends include a hash-set matcher for byte strings
// and a Roaring Bitmap matcher for integers; heterogeneous backends can be
// added by implementing the two interfaces.
package listmatcher
