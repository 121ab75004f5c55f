// Package khata provides the types and operations for keeping the books of a
// small neighborhood store. It is designed to be local-first and auditable:
// the whole state lives in memory and is written back to a single on-disk
// snapshot after every change.
//
// The core functionalities include:
//   - Catalog: a list of products with a price and a free-form category.
//   - Khata Management: a list of customers, each carrying an outstanding
//     credit balance (udhaar) that only ever moves through recorded
//     transactions and is never allowed to go below zero.
//   - Transaction Log: an immutable, most-recent-first record of every
//     credit and payment.
//   - Data Persistence: encoding and decoding of the whole book to and from
//     a single human-readable JSON document under a fixed storage key.
//
// This package serves as the foundational logic for the `kk` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package khata
