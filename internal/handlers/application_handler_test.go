package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"smartrecruit/recruitflow/internal/models"
)

type fakeApplicationRepo struct {
	apps       []models.Application
	listCalled bool
	gotJobID   *uuid.UUID
	gotStatus  models.ApplicationStatus
}

func (r *fakeApplicationRepo) Create(app *models.Application) error { return nil }

func (r *fakeApplicationRepo) FindByID(id uuid.UUID) (*models.Application, error) {
	return nil, fmt.Errorf("application not found")
}

func (r *fakeApplicationRepo) ListRanked(jobID *uuid.UUID, status models.ApplicationStatus) ([]models.Application, error) {
	r.listCalled = true
	r.gotJobID = jobID
	r.gotStatus = status
	return r.apps, nil
}

func (r *fakeApplicationRepo) UpdateStatus(id uuid.UUID, status models.ApplicationStatus) error {
	return nil
}

func (r *fakeApplicationRepo) UpdateNote(id uuid.UUID, note string) error { return nil }

func newListTestApp(repo *fakeApplicationRepo) *fiber.App {
	app := fiber.New()
	handler := NewApplicationHandler(repo, nil, nil, 0)
	app.Get("/application/list", handler.HandleList)
	return app
}

func TestHandleListStatusFilterIsCaseInsensitive(t *testing.T) {
	repo := &fakeApplicationRepo{}
	app := newListTestApp(repo)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/application/list?status=ACCEPTED", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	if repo.gotStatus != models.StatusAccepted {
		t.Errorf("status filter = %q, want %q", repo.gotStatus, models.StatusAccepted)
	}
}

func TestHandleListRejectsUnknownStatus(t *testing.T) {
	repo := &fakeApplicationRepo{}
	app := newListTestApp(repo)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/application/list?status=archived", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	if repo.listCalled {
		t.Error("repository must not be queried for an unknown status")
	}
}

func TestHandleListCombinesJobAndStatusFilters(t *testing.T) {
	repo := &fakeApplicationRepo{}
	app := newListTestApp(repo)
	jobID := uuid.New()

	url := fmt.Sprintf("/application/list?job_id=%s&status=pending", jobID)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	if repo.gotJobID == nil || *repo.gotJobID != jobID {
		t.Errorf("job filter = %v, want %s", repo.gotJobID, jobID)
	}
	if repo.gotStatus != models.StatusPending {
		t.Errorf("status filter = %q, want %q", repo.gotStatus, models.StatusPending)
	}
}
