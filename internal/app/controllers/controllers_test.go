package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schooladmin/internal/app/controllers"
	"schooladmin/internal/app/models"
	"schooladmin/internal/app/models/dto"
	"schooladmin/internal/app/repositories"
	"schooladmin/internal/app/routes"
	"schooladmin/internal/app/services"
	"schooladmin/internal/db"
	"schooladmin/internal/pkg/apperrors"
)

// memoryStore backs every service interface with in-memory state so the full
// HTTP surface can be exercised without a database.
type memoryStore struct {
	entities    map[string]map[string]int64 // kind -> natural key -> id
	names       map[string]map[string]string
	nextID      int64
	enrollments map[models.Enrollment]struct{}
	classes     map[string]*models.Class
	roster      map[int64][]models.RosterEntry
	workload    []repositories.WorkloadRow
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		entities:    make(map[string]map[string]int64),
		names:       make(map[string]map[string]string),
		enrollments: make(map[models.Enrollment]struct{}),
		classes: map[string]*models.Class{
			"P1-C1": {ID: 1, Code: "P1-C1", Name: "Primary 1 Class 1"},
		},
		roster: make(map[int64][]models.RosterEntry),
	}
}

// entityStore scopes the memoryStore to one entity kind as an
// services.EntityUpserter.
type entityStore struct {
	store *memoryStore
	kind  string
}

func (s entityStore) Upsert(_ context.Context, _ db.Querier, key, name string) (int64, error) {
	ids, ok := s.store.entities[s.kind]
	if !ok {
		ids = make(map[string]int64)
		s.store.entities[s.kind] = ids
		s.store.names[s.kind] = make(map[string]string)
	}
	s.store.names[s.kind][key] = name
	if id, ok := ids[key]; ok {
		return id, nil
	}
	s.store.nextID++
	ids[key] = s.store.nextID
	return s.store.nextID, nil
}

func (s *memoryStore) CreateIfAbsent(_ context.Context, _ db.Querier, e *models.Enrollment) error {
	s.enrollments[*e] = struct{}{}
	return nil
}

func (s *memoryStore) DeleteByTuple(_ context.Context, _ db.Querier, e *models.Enrollment) error {
	delete(s.enrollments, *e)
	return nil
}

func (s *memoryStore) GetByCode(_ context.Context, code string) (*models.Class, error) {
	class, ok := s.classes[code]
	if !ok {
		return nil, apperrors.NewClassNotFoundError(code)
	}
	return class, nil
}

func (s *memoryStore) UpdateName(_ context.Context, code, name string) error {
	class, ok := s.classes[code]
	if !ok {
		return apperrors.NewClassNotFoundError(code)
	}
	class.Name = name
	return nil
}

func (s *memoryStore) ListStudentsByClass(_ context.Context, classID int64) ([]models.RosterEntry, error) {
	return s.roster[classID], nil
}

func (s *memoryStore) ListWorkload(_ context.Context) ([]repositories.WorkloadRow, error) {
	return s.workload, nil
}

func (s *memoryStore) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	return fn(ctx, nil)
}

// emptyExternalRoster stands in for an unreachable external source.
type emptyExternalRoster struct{}

func (emptyExternalRoster) FetchStudents(context.Context, string, int, int) []models.RosterEntry {
	return nil
}

func newTestRouter(store *memoryStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zerolog.Nop()

	importService := services.NewImportService(
		store,
		entityStore{store, "teachers"},
		entityStore{store, "students"},
		entityStore{store, "classes"},
		entityStore{store, "subjects"},
		store,
		logger,
	)
	studentService := services.NewStudentService(store, store, emptyExternalRoster{}, logger)
	classService := services.NewClassService(store, logger)
	reportService := services.NewReportService(store, logger)

	router := gin.New()
	routes.SetupRouter(
		router,
		controllers.NewHealthcheckController(),
		controllers.NewImportController(importService, logger),
		controllers.NewStudentController(studentService),
		controllers.NewClassController(classService),
		controllers.NewReportsController(reportService),
	)
	return router
}

func perform(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func multipartUpload(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

const uploadCSV = "teacherEmail,teacherName,studentEmail,studentName,classCode,className,subjectCode,subjectName,toDelete\n" +
	"t1@school.edu,Mr Tan,s1@school.edu,Alice,P1-C1,Primary 1,MATH,Mathematics,\n"

func TestHealthcheck(t *testing.T) {
	router := newTestRouter(newMemoryStore())

	w := perform(router, httptest.NewRequest(http.MethodGet, "/api/healthcheck", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUploadAppliesBatch(t *testing.T) {
	store := newMemoryStore()
	router := newTestRouter(store)

	body, contentType := multipartUpload(t, "data", "batch.csv", uploadCSV)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	w := perform(router, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Len(t, store.enrollments, 1)
	assert.Equal(t, "Mr Tan", store.names["teachers"]["t1@school.edu"])
}

func TestUploadWithoutFile(t *testing.T) {
	router := newTestRouter(newMemoryStore())

	w := perform(router, httptest.NewRequest(http.MethodPost, "/api/upload", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No file uploaded", decodeError(t, w).Message)
}

func TestUploadWrongFieldName(t *testing.T) {
	router := newTestRouter(newMemoryStore())

	body, contentType := multipartUpload(t, "file", "batch.csv", uploadCSV)
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	w := perform(router, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadEmptyFile(t *testing.T) {
	router := newTestRouter(newMemoryStore())

	body, contentType := multipartUpload(t, "data", "batch.csv", "")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	w := perform(router, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "CSV file is empty", decodeError(t, w).Message)
}

func TestUploadMissingColumn(t *testing.T) {
	router := newTestRouter(newMemoryStore())

	body, contentType := multipartUpload(t, "data", "batch.csv", "teacherEmail,teacherName\nt1@school.edu,Mr Tan\n")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	w := perform(router, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Message, "missing required column")
}

func TestListStudents(t *testing.T) {
	store := newMemoryStore()
	store.roster[1] = []models.RosterEntry{
		{ID: 2, Name: "Bob", Email: "bob@school.edu"},
		{ID: 1, Name: "Alice", Email: "alice@school.edu"},
	}
	router := newTestRouter(store)

	w := perform(router, httptest.NewRequest(http.MethodGet, "/api/class/P1-C1/students", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.StudentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Students, 2)
	assert.Equal(t, "Alice", resp.Students[0].Name)
}

func TestListStudentsUnknownClass(t *testing.T) {
	router := newTestRouter(newMemoryStore())

	w := perform(router, httptest.NewRequest(http.MethodGet, "/api/class/NOPE/students", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decodeError(t, w).Message, "NOPE")
}

func TestListStudentsMalformedPagination(t *testing.T) {
	router := newTestRouter(newMemoryStore())

	for _, query := range []string{"offset=abc", "limit=-1", "offset=-5"} {
		w := perform(router, httptest.NewRequest(http.MethodGet, "/api/class/P1-C1/students?"+query, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

func TestListStudentsEmptyPageSerializesAsArray(t *testing.T) {
	router := newTestRouter(newMemoryStore())

	w := perform(router, httptest.NewRequest(http.MethodGet, "/api/class/P1-C1/students?offset=100", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"students":[]`)
}

func TestUpdateClassName(t *testing.T) {
	store := newMemoryStore()
	router := newTestRouter(store)

	req := httptest.NewRequest(http.MethodPut, "/api/class/P1-C1", strings.NewReader(`{"className":"Primary 1 Alpha"}`))
	req.Header.Set("Content-Type", "application/json")

	w := perform(router, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "Primary 1 Alpha", store.classes["P1-C1"].Name)
}

func TestUpdateClassNameBlank(t *testing.T) {
	router := newTestRouter(newMemoryStore())

	for _, payload := range []string{`{"className":""}`, `{"className":"   "}`, `{}`, `not json`} {
		req := httptest.NewRequest(http.MethodPut, "/api/class/P1-C1", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		w := perform(router, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, payload)
	}
}

func TestUpdateClassNameUnknownClass(t *testing.T) {
	router := newTestRouter(newMemoryStore())

	req := httptest.NewRequest(http.MethodPut, "/api/class/NOPE", strings.NewReader(`{"className":"New Name"}`))
	req.Header.Set("Content-Type", "application/json")

	w := perform(router, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, http.StatusNotFound, resp.ErrorCode)
}

func TestWorkloadReport(t *testing.T) {
	store := newMemoryStore()
	teacher := "Mr Tan"
	subjectID := int64(1)
	code, name := "MATH", "Mathematics"
	store.workload = []repositories.WorkloadRow{
		{TeacherName: &teacher, SubjectID: &subjectID, SubjectCode: &code, SubjectName: &name, ClassID: 1},
		{TeacherName: &teacher, SubjectID: &subjectID, SubjectCode: &code, SubjectName: &name, ClassID: 2},
	}
	router := newTestRouter(store)

	w := perform(router, httptest.NewRequest(http.MethodGet, "/api/reports/workload", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var report dto.WorkloadReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	require.Contains(t, report, "Mr Tan")
	assert.Equal(t, 2, report["Mr Tan"][0].NumberOfClasses)
}
