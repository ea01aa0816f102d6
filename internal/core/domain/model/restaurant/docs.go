// Package restaurant provides the read-only restaurant projection used to
// validate order contents: the restaurant's availability flag and its
// product catalog with authoritative prices. The projection is supplied by
// the restaurant lookup port and never mutated by the ordering context.
package restaurant
