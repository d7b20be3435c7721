package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"madrasa_backend/internals/databases/testdb"
	"madrasa_backend/internals/features/academics/online/model"
)

func setupCourses(t *testing.T) (*gorm.DB, *fiber.App) {
	t.Helper()
	db := testdb.New(t, &model.CourseModel{}, &model.LessonModel{})
	ctrl := NewOnlineController(db)

	app := fiber.New()
	app.Post("/courses", ctrl.CreateCourse)
	app.Put("/courses/:id", ctrl.UpdateCourse)
	app.Get("/public/courses/:slug", ctrl.GetPublishedCourse)
	return db, app
}

func courseRequest(t *testing.T, app *fiber.App, method, path, body string) (int, model.CourseModel) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, _ := io.ReadAll(resp.Body)
	var out struct {
		Data model.CourseModel `json:"data"`
	}
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out.Data
}

func TestCourseSlugUnique(t *testing.T) {
	_, app := setupCourses(t)

	code, c1 := courseRequest(t, app, "POST", "/courses", `{"course_title":"Tajwid Dasar"}`)
	require.Equal(t, fiber.StatusCreated, code)
	assert.Equal(t, "tajwid-dasar", c1.CourseSlug)

	code, c2 := courseRequest(t, app, "POST", "/courses", `{"course_title":"Tajwid Dasar"}`)
	require.Equal(t, fiber.StatusCreated, code)
	assert.Equal(t, "tajwid-dasar-2", c2.CourseSlug)

	// beda huruf besar tetap dianggap sama
	code, c3 := courseRequest(t, app, "POST", "/courses", `{"course_title":"Kelas Lain","course_slug":"TAJWID Dasar"}`)
	require.Equal(t, fiber.StatusCreated, code)
	assert.Equal(t, "tajwid-dasar-3", c3.CourseSlug)

	// update ke slug milik course lain tidak boleh menimpa
	code, upd := courseRequest(t, app, "PUT", "/courses/"+c3.CourseID.String(), `{"course_slug":"tajwid-dasar"}`)
	require.Equal(t, fiber.StatusOK, code)
	assert.NotEqual(t, "tajwid-dasar", upd.CourseSlug)
	assert.True(t, strings.HasPrefix(upd.CourseSlug, "tajwid-dasar-"))

	// slug sendiri tetap
	code, same := courseRequest(t, app, "PUT", "/courses/"+c2.CourseID.String(), `{"course_slug":"Tajwid-Dasar-2"}`)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "tajwid-dasar-2", same.CourseSlug)
}

func TestPublicCourseHidesUnpublished(t *testing.T) {
	db, app := setupCourses(t)

	code, draft := courseRequest(t, app, "POST", "/courses", `{"course_title":"Fiqh Ibadah"}`)
	require.Equal(t, fiber.StatusCreated, code)
	require.False(t, draft.CourseIsPublished)

	code, _ = courseRequest(t, app, "GET", "/public/courses/fiqh-ibadah", "")
	assert.Equal(t, fiber.StatusNotFound, code)

	require.NoError(t, db.Model(&model.CourseModel{}).Where("course_id = ?", draft.CourseID).Update("course_is_published", true).Error)
	code, _ = courseRequest(t, app, "GET", "/public/courses/FIQH-IBADAH", "")
	assert.Equal(t, fiber.StatusOK, code)
}
