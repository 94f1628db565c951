// Package domain contains the core types of the gpeople client: the
// person field catalog and field masks, the mask-scoped person and group
// wrappers over raw API records, partial date values, credentials, and
// the domain error taxonomy.
//
// Domain types have no dependencies on transport or storage. They model
// the People API's partial-representation contract: a record is only
// ever held and written back under the field mask it was requested with.
package domain
