package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"madrasa_backend/internals/databases/testdb"
)

func TestAdvisoryXactLock(t *testing.T) {
	t.Run("postgres", func(t *testing.T) {
		// DryRun: SQL dibangun tanpa koneksi ke server
		db, err := gorm.Open(postgres.Open("host=127.0.0.1 user=x dbname=x sslmode=disable"), &gorm.Config{
			DryRun:               true,
			DisableAutomaticPing: true,
		})
		require.NoError(t, err)

		var sql string
		var vars []any
		require.NoError(t, db.Callback().Raw().After("gorm:raw").Register("test:capture", func(d *gorm.DB) {
			sql = d.Statement.SQL.String()
			vars = d.Statement.Vars
		}))

		require.NoError(t, AdvisoryXactLock(db, 42))
		assert.Equal(t, "SELECT pg_advisory_xact_lock($1)", sql)
		assert.Equal(t, []any{int64(42)}, vars)
	})

	t.Run("sqlite tanpa lock", func(t *testing.T) {
		db := testdb.New(t)
		assert.NoError(t, db.Transaction(func(tx *gorm.DB) error {
			return AdvisoryXactLock(tx, 42)
		}))
	})
}
