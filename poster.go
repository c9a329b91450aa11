// Package poster turns a product or resource page URL into normalized
// marketing-poster data. It retrieves the page through a chain of proxy
// strategies, asks a generative model to fill a fixed schema, and validates
// the response into a Record.
//
// This package contains domain types, interfaces and the pure functions
// around them, following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., gemini/, sqlite/, goquery/).
package poster
