// Package ent holds the generated client for the CipherSwarm schema.
// Regenerate after editing ent/schema with:
//
//	go generate ./ent
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --idtype int64 --feature sql/upsert,sql/lock ./schema
