package helper

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ForUpdate: SELECT ... FOR UPDATE di Postgres; dialect lain (sqlite di test) tanpa lock.
func ForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector != nil && tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// AdvisoryXactLock: pg_advisory_xact_lock, dilepas otomatis saat transaksi selesai.
// Dipakai kalau yang dijaga adalah "belum ada baris" sehingga FOR UPDATE tidak mengunci apa pun.
func AdvisoryXactLock(tx *gorm.DB, key int64) error {
	if tx.Dialector != nil && tx.Dialector.Name() == "postgres" {
		return tx.Exec("SELECT pg_advisory_xact_lock(?)", key).Error
	}
	return nil
}
