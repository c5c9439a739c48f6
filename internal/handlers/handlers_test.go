package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/farmlink-ke/farm_market/internal/migrations"
	"github.com/farmlink-ke/farm_market/internal/models"
	"github.com/farmlink-ke/farm_market/internal/repo"
)

func initTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := migrations.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return &repo.GormRepo{DB: db}
}

func doJSONRequest(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	return rec, c
}

func registerTestUser(t *testing.T, r *repo.GormRepo, username, email, role string) *models.User {
	t.Helper()
	password, err := models.NewPassword("password")
	require.NoError(t, err)
	u := &models.User{Username: username, Email: email, Password: password, Role: role}
	require.NoError(t, r.DB.Create(u).Error)
	return u
}
