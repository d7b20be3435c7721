package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasa_backend/internals/features/institution/dto"
	"madrasa_backend/internals/features/institution/model"
	"madrasa_backend/internals/features/institution/service"
	helper "madrasa_backend/internals/helpers"
	helperOSS "madrasa_backend/internals/helpers/oss"
)

type InstitutionController struct {
	DB   *gorm.DB
	Blob helperOSS.BlobService
}

func NewInstitutionController(db *gorm.DB, blob helperOSS.BlobService) *InstitutionController {
	return &InstitutionController{DB: db, Blob: blob}
}

func (ic *InstitutionController) load() (model.InstitutionSettingModel, bool, error) {
	return service.Load(ic.DB)
}

// GET /api/public/institution
func (ic *InstitutionController) GetPublic(c *fiber.Ctx) error {
	m, _, err := ic.load()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil madrasah")
	}
	helper.SetPublicCache(c, 300)
	return helper.JsonOK(c, "ok", dto.ToPublic(m))
}

// GET /api/a/institution
func (ic *InstitutionController) Get(c *fiber.Ctx) error {
	m, _, err := ic.load()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil madrasah")
	}
	return helper.JsonOK(c, "ok", m)
}

// PUT /api/a/institution
func (ic *InstitutionController) Update(c *fiber.Ctx) error {
	var req dto.UpdateInstitutionRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}

	m, exists, err := ic.load()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil madrasah")
	}
	req.ApplyTo(&m)
	if m.InstitutionName == "" {
		return helper.JsonValidationError(c, map[string]string{"institution_name": "institution_name is required"})
	}

	if exists {
		err = ic.DB.Save(&m).Error
	} else {
		err = ic.DB.Create(&m).Error
	}
	if err != nil {
		log.Printf("[ERROR] save institution: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan profil madrasah")
	}
	return helper.JsonUpdated(c, "Profil madrasah disimpan", m)
}

// POST /api/a/institution/logo (multipart: logo|image|file)
func (ic *InstitutionController) UploadLogo(c *fiber.Ctx) error {
	fh, err := helperOSS.GetImageFile(c)
	if err != nil {
		return err
	}
	if fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File logo wajib diunggah")
	}

	m, exists, err := ic.load()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil madrasah")
	}

	url, err := helperOSS.ReplaceImage(c.UserContext(), ic.Blob, "institution", fh, m.InstitutionLogoURL)
	if err != nil {
		return err
	}
	m.InstitutionLogoURL = &url

	if exists {
		err = ic.DB.Model(&m).Update("institution_logo_url", url).Error
	} else {
		err = ic.DB.Create(&m).Error
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan logo")
	}
	return helper.JsonUpdated(c, "Logo diperbarui", fiber.Map{"institution_logo_url": url})
}
