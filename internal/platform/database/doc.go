// Package database provides the GORM-backed persistence gateway and the
// repository implementations for the interfaces in internal/store.
//
// Two engines are supported: PostgreSQL through gorm.io/driver/postgres
// (pgx underneath) and SQLite through gorm.io/driver/sqlite (mattn
// go-sqlite3 underneath). The schema for each engine lives in embedded goose
// migrations under migrations/<driver>.
package database
