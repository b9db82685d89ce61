package controllers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolfm/internal/app/models"
)

func TestCreateStudent(t *testing.T) {
	svc := &fakeStudentService{}
	router := studentRouter(svc)

	rec := doRequest(t, router, http.MethodPost, "/api/students",
		`{"name":"Jane","section_id":1,"dob":"2015-04-12","gender":"Female","parent_name":"Mary","bus_stop_id":2}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())
	require.NotNil(t, svc.lastInput)
	assert.Equal(t, "Jane", svc.lastInput.Name)
	assert.Equal(t, int64(1), *svc.lastInput.SectionID)
	assert.Equal(t, "2015-04-12", *svc.lastInput.DOB)
	assert.Equal(t, int64(2), *svc.lastInput.BusStopID)
}

func TestCreateStudentRejectsBadBodies(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "missing name", body: `{"section_id":1}`, field: "name"},
		{name: "blank name", body: `{"name":"   "}`, field: "name"},
		{name: "bad date", body: `{"name":"Jane","dob":"12/04/2015"}`, field: "dob"},
		{name: "zero section", body: `{"name":"Jane","section_id":0}`, field: "section_id"},
		{name: "unknown field", body: `{"name":"Jane","status":"Left"}`},
		{name: "wrong type", body: `{"name":"Jane","section_id":"one"}`, field: "section_id"},
		{name: "not json", body: `name=Jane`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeStudentService{}
			rec := doRequest(t, studentRouter(svc), http.MethodPost, "/api/students", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, "VAL_001", body.Error.Code)
			if tt.field != "" {
				assert.Equal(t, tt.field, body.Error.Field)
			}
			assert.Nil(t, svc.lastInput)
		})
	}
}

func TestListStudentsNeverReturnsNull(t *testing.T) {
	rec := doRequest(t, studentRouter(&fakeStudentService{}), http.MethodGet, "/api/students/archived", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestListStudentsIncludesClassLabel(t *testing.T) {
	label := "Grade 5 A"
	section := int64(1)
	svc := &fakeStudentService{students: []*models.Student{
		{ID: 1, Name: "Jane", SectionID: &section, Status: models.StatusActive, ClassName: &label},
	}}

	rec := doRequest(t, studentRouter(svc), http.MethodGet, "/api/students", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"class_name":"Grade 5 A"`)
	assert.Contains(t, rec.Body.String(), `"status":"Active"`)
}

func TestUpdateMissingStudentReportsZeroChanges(t *testing.T) {
	svc := &fakeStudentService{}

	rec := doRequest(t, studentRouter(svc), http.MethodPut, "/api/students/404", `{"name":"Ghost"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"changes":0}`, rec.Body.String())
	assert.Equal(t, int64(404), svc.updateID)
}

func TestArchiveStudent(t *testing.T) {
	svc := &fakeStudentService{}
	router := studentRouter(svc)

	rec := doRequest(t, router, http.MethodPut, "/api/students/7/archive", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"changes":1}`, rec.Body.String())
	assert.Equal(t, []int64{7}, svc.archived)

	for _, bad := range []string{"abc", "0", "-3"} {
		rec = doRequest(t, router, http.MethodPut, "/api/students/"+bad+"/archive", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, bad)
	}
	assert.Len(t, svc.archived, 1)
}

func TestStudentFeesAndStoreFailure(t *testing.T) {
	due := "2026-07-10"
	svc := &fakeStudentService{fees: []*models.Fee{{ID: 3, StudentID: 7, Amount: 1200, Status: "Due", DueDate: &due}}}
	router := studentRouter(svc)

	rec := doRequest(t, router, http.MethodGet, "/api/students/7/fees", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[{"id":3,"student_id":7,"amount":1200,"status":"Due","due_date":"2026-07-10","fee_type":null}]}`, rec.Body.String())

	svc.err = errors.New("connection refused")
	rec = doRequest(t, router, http.MethodGet, "/api/students", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "SRV_001", body.Error.Code)
	assert.Equal(t, "connection refused", body.Error.Message)
}
