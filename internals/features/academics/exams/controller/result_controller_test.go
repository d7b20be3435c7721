package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"madrasa_backend/internals/databases/testdb"
	classModel "madrasa_backend/internals/features/academics/classes/model"
	"madrasa_backend/internals/features/academics/exams/dto"
	"madrasa_backend/internals/features/academics/exams/model"
	studentModel "madrasa_backend/internals/features/academics/students/model"
)

// memStore: ResultStore di memori
type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (m *memStore) Get(_ context.Context, key string, dst any) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[key]
	return ok && json.Unmarshal(raw, dst) == nil
}

func (m *memStore) Set(_ context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = raw
}

func (m *memStore) InvalidateExam(_ context.Context, examID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.data {
		if strings.HasPrefix(k, "results:"+examID.String()+":") {
			delete(m.data, k)
		}
	}
}

type resultFixture struct {
	db     *gorm.DB
	app    *fiber.App
	store  *memStore
	exam   model.ExamModel
	result model.ResultModel
}

func setupResults(t *testing.T, published bool) resultFixture {
	t.Helper()
	db := testdb.New(t, &model.ExamModel{}, &model.ResultModel{}, &studentModel.StudentModel{}, &classModel.ClassModel{})
	store := newMemStore()
	examCtrl := NewExamController(db, store)
	resultCtrl := NewResultController(db, store)

	app := fiber.New()
	app.Patch("/exams/:id/publish", examCtrl.Publish)
	app.Put("/results/:id", resultCtrl.Update)
	app.Get("/public/results", resultCtrl.PublicResults)

	class := classModel.ClassModel{ClassName: "Hifz", ClassLevel: 1, ClassIsActive: true}
	require.NoError(t, db.Create(&class).Error)
	s := studentModel.StudentModel{
		StudentCode: "STU-2025-0001", StudentFullName: "Abdullah", StudentFatherName: "Umar",
		StudentGuardianPhone: "0812", StudentGender: studentModel.GenderMale, StudentClassID: &class.ClassID,
	}
	require.NoError(t, db.Create(&s).Error)

	exam := model.ExamModel{ExamName: "Ujian Akhir", ExamType: "final", ExamAcademicYear: "2025", ExamStartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), ExamIsPublished: published}
	require.NoError(t, db.Create(&exam).Error)
	r := model.ResultModel{
		ResultExamID: exam.ExamID, ResultStudentID: s.StudentID, ResultClassID: class.ClassID,
		ResultSubject: "Tajwid", ResultMarksObtained: 70, ResultTotalMarks: 100, ResultGrade: "B",
	}
	require.NoError(t, db.Create(&r).Error)
	return resultFixture{db: db, app: app, store: store, exam: exam, result: r}
}

func (f resultFixture) do(t *testing.T, method, path, body string) (*publicResponse, int) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	return &publicResponse{cache: resp.Header.Get("X-Cache"), body: raw}, resp.StatusCode
}

type publicResponse struct {
	cache string
	body  []byte
}

func (r *publicResponse) results(t *testing.T) dto.PublicResults {
	t.Helper()
	var out struct {
		Data dto.PublicResults `json:"data"`
	}
	require.NoError(t, json.Unmarshal(r.body, &out))
	return out.Data
}

func TestPublicResultsUnpublishedExam(t *testing.T) {
	f := setupResults(t, false)

	_, code := f.do(t, "GET", "/public/results?exam_id="+f.exam.ExamID.String(), "")
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Empty(t, f.store.data)

	_, code = f.do(t, "GET", "/public/results", "")
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestPublicResultsCacheInvalidation(t *testing.T) {
	f := setupResults(t, true)
	path := "/public/results?exam_id=" + f.exam.ExamID.String()

	res, code := f.do(t, "GET", path, "")
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "MISS", res.cache)

	res, code = f.do(t, "GET", path, "")
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "HIT", res.cache)
	require.Len(t, res.results(t).Results, 1)
	assert.Equal(t, float64(70), res.results(t).Results[0].TotalObtained)

	// ubah nilai → cache ujian ini dibuang
	_, code = f.do(t, "PUT", "/results/"+f.result.ResultID.String(), `{"marks_obtained":95}`)
	require.Equal(t, fiber.StatusOK, code)

	res, code = f.do(t, "GET", path, "")
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "MISS", res.cache)
	assert.Equal(t, float64(95), res.results(t).Results[0].TotalObtained)

	// batal publish tidak boleh tetap terlayani dari cache
	_, code = f.do(t, "PATCH", "/exams/"+f.exam.ExamID.String()+"/publish", `{"is_published":false}`)
	require.Equal(t, fiber.StatusOK, code)

	_, code = f.do(t, "GET", path, "")
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestUpdateResultMarksWithinTotal(t *testing.T) {
	f := setupResults(t, true)
	path := "/results/" + f.result.ResultID.String()

	tests := []struct {
		name string
		body string
		want int
	}{
		{"melebihi total", `{"marks_obtained":120}`, fiber.StatusBadRequest},
		{"total diturunkan di bawah nilai", `{"total_marks":50}`, fiber.StatusBadRequest},
		{"negatif ditolak validasi", `{"marks_obtained":-1}`, fiber.StatusUnprocessableEntity},
		{"pas total", `{"marks_obtained":100}`, fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, code := f.do(t, "PUT", path, tt.body)
			assert.Equal(t, tt.want, code)
		})
	}

	var got model.ResultModel
	require.NoError(t, f.db.First(&got, "result_id = ?", f.result.ResultID).Error)
	assert.Equal(t, float64(100), got.ResultMarksObtained)
	assert.Equal(t, float64(100), got.ResultTotalMarks)
}
