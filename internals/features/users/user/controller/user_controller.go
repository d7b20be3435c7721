package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasa_backend/internals/constants"
	authHelper "madrasa_backend/internals/features/users/auth/helper"
	authRepo "madrasa_backend/internals/features/users/auth/repository"
	"madrasa_backend/internals/features/users/user/dto"
	"madrasa_backend/internals/features/users/user/model"
	"madrasa_backend/internals/features/users/user/service"
	helper "madrasa_backend/internals/helpers"
	helperAuth "madrasa_backend/internals/helpers/auth"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/a/users?q=&role=&is_active=&page=&per_page=
func (uc *UserController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := uc.DB.Model(&model.UserModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	if r := strings.TrimSpace(c.Query("role")); r != "" {
		q = q.Where("role = ?", r)
	}
	if a := strings.TrimSpace(c.Query("is_active")); a != "" {
		q = q.Where("is_active = ?", a == "true" || a == "1")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	order, _ := p.OrderClause(map[string]string{
		"created_at": "created_at",
		"full_name":  "full_name",
		"email":      "email",
		"role":       "role",
	}, "created_at")

	var rows []model.UserModel
	if err := p.Apply(q.Order(order)).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "ok", dto.FromModels(rows), &pg)
}

// GET /api/a/users/:id
func (uc *UserController) Get(c *fiber.Ctx) error {
	u, err := uc.findUser(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.FromModel(*u))
}

// POST /api/a/users
func (uc *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	req.Normalize()

	if !service.CanAssignRole(helperAuth.GetRole(c), req.Role) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya super admin yang boleh membuat admin / super admin")
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	u, err := service.CreateUser(uc.DB, service.CreateUserInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		IsActive: active,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) || helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Printf("[ERROR] create user: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}
	return helper.JsonCreated(c, "User berhasil dibuat", dto.FromModel(*u))
}

// PATCH /api/a/users/:id
func (uc *UserController) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}

	u, err := uc.findUser(c)
	if err != nil {
		return err
	}

	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	actorRole := helperAuth.GetRole(c)
	self := actorID == u.ID

	// target yang sekarang admin/super_admin hanya boleh disentuh super_admin
	if constants.IsAdminRole(u.Role) && actorRole != constants.RoleSuperAdmin && !self {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya super admin yang boleh mengubah akun admin")
	}

	updates := map[string]any{}
	if req.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*req.FullName)
	}
	if req.Role != nil {
		role := strings.ToLower(strings.TrimSpace(*req.Role))
		if role != u.Role {
			if self {
				return helper.JsonError(c, fiber.StatusBadRequest, "Tidak bisa mengubah role akun sendiri")
			}
			if !service.CanAssignRole(actorRole, role) {
				return helper.JsonError(c, fiber.StatusForbidden, "Hanya super admin yang boleh memberi role admin / super admin")
			}
			updates["role"] = role
		}
	}
	if req.IsActive != nil && *req.IsActive != u.IsActive {
		if self && !*req.IsActive {
			return helper.JsonError(c, fiber.StatusBadRequest, "Tidak bisa menonaktifkan akun sendiri")
		}
		updates["is_active"] = *req.IsActive
	}
	if req.Password != nil {
		hash, err := authHelper.HashPassword(*req.Password)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
		}
		updates["password"] = hash
	}

	if len(updates) > 0 {
		if err := uc.DB.Model(u).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update user")
		}
		// sesi lama dicabut kalau akun dinonaktifkan / password diganti
		if v, ok := updates["is_active"]; (ok && v == false) || req.Password != nil {
			_ = authRepo.DeleteRefreshTokensByUser(uc.DB, u.ID)
		}
	}

	if err := uc.DB.First(u, "id = ?", u.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	return helper.JsonUpdated(c, "User berhasil diperbarui", dto.FromModel(*u))
}

// DELETE /api/a/users/:id
func (uc *UserController) Delete(c *fiber.Ctx) error {
	u, err := uc.findUser(c)
	if err != nil {
		return err
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if actorID == u.ID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak bisa menghapus akun sendiri")
	}
	if constants.IsAdminRole(u.Role) && helperAuth.GetRole(c) != constants.RoleSuperAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya super admin yang boleh menghapus akun admin")
	}

	if err := uc.DB.Delete(u).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus user")
	}
	_ = authRepo.DeleteRefreshTokensByUser(uc.DB, u.ID)
	return helper.JsonDeleted(c, "User berhasil dihapus", fiber.Map{"id": u.ID})
}

func (uc *UserController) findUser(c *fiber.Ctx) (*model.UserModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID user tidak valid")
	}
	var u model.UserModel
	if err := uc.DB.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	return &u, nil
}
