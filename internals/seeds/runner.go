package seeds

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/gorm"

	"madrasa_backend/internals/seeds/academics"
	users "madrasa_backend/internals/seeds/users/auth"
)

// RunAllSeeds: dir berisi users.json dan academics.json (file yang tidak ada dilewati)
func RunAllSeeds(db *gorm.DB, dir string) error {
	//* User
	if path := filepath.Join(dir, "users.json"); exists(path) {
		if _, err := users.SeedUsersFromJSON(db, path); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	}

	//* Kelas, guru, siswa
	if path := filepath.Join(dir, "academics.json"); exists(path) {
		in, err := academics.LoadFile(path)
		if err != nil {
			return fmt.Errorf("baca %s: %w", path, err)
		}
		if _, err := academics.Seed(db, in); err != nil {
			return fmt.Errorf("seed akademik: %w", err)
		}
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
