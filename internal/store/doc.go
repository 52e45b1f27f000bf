// Package store persists parsed work orders, merged frame records, and
// pipeline run bookkeeping in SQLite.
//
// The Store manages the database connection, schema initialization, and
// the append-only insert/query surface the pipeline needs: manifests
// and frame records are written once during ingest and read back during
// report generation. Schema changes bump the version in schema.go;
// users delete the database and re-ingest to adopt a new schema.
package store
