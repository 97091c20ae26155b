// Package http exposes the record-store REST API over chi.
//
// The API stores master vault records, encrypted credential envelopes, and
// dashboard projects. It is deliberately ignorant of cryptography: requests
// carry bcrypt hashes and ciphertext produced on the client, and responses
// return them unchanged. Status codes are derived from the store and
// validator sentinel errors by statusFromError.
package http
