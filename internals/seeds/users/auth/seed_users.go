package user

import (
	"encoding/json"
	"errors"
	"log"
	"os"

	"gorm.io/gorm"

	"madrasa_backend/internals/constants"
	userService "madrasa_backend/internals/features/users/user/service"
)

type UserSeed struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SeedUsersFromJSON: user dengan email yang sudah ada dilewati
func SeedUsersFromJSON(db *gorm.DB, filePath string) (int, error) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, err
	}
	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		return 0, err
	}

	created := 0
	for _, data := range inputs {
		if !constants.IsValidRole(data.Role) {
			log.Printf("⚠️ Role '%s' untuk '%s' tidak dikenal, dilewati.", data.Role, data.Email)
			continue
		}
		_, err := userService.CreateUser(db, userService.CreateUserInput{
			FullName: data.FullName,
			Email:    data.Email,
			Password: data.Password,
			Role:     data.Role,
			IsActive: true,
		})
		switch {
		case errors.Is(err, userService.ErrEmailTaken):
			log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", data.Email)
		case err != nil:
			return created, err
		default:
			created++
			log.Printf("✅ Berhasil insert user '%s'", data.Email)
		}
	}
	return created, nil
}
