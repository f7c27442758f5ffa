// Package storage is the client's persistent record store: a durable mapping
// from a namespaced key (for example "folders_<userId>") to a JSON-encoded
// value.
//
// # Overview
//
// Service is the contract the folder, item and profile services depend on.
// SQLiteService implements it on top of a single "records" table in the local
// SQLite database; InitDatabase opens that database and applies the embedded
// goose migrations.
//
// # Semantics
//
// Values are replaced as a whole on every Save; there are no partial or
// field-level updates. A missing key is reported by Get as (false, nil), never
// as an error.
//
// Typical Usage
//
//	db, _ := storage.InitDatabase(ctx, "vault.db")
//	s := storage.NewSQLiteService(db)
//	_ = s.Save(ctx, "folders_u1", folders)
//	ok, _ := s.Get(ctx, "folders_u1", &folders)
//	_ = s.Remove(ctx, "folders_u1")
package storage
