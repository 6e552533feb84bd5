// Package warehouse provides the registry of warehouses and their stock locations.
// Orders may only name a location registered here.
//
// Key business rules:
//   - A warehouse is identified by its short code, the prefix of its location codes
//   - Short codes are unique across warehouses
//   - Location codes are unique within their warehouse
package warehouse
