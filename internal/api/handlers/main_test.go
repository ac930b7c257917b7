package handlers

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"armory/internal/domain"
	"armory/internal/repository"
	"armory/internal/testutil"
)

var testDB *sqlx.DB

func TestMain(m *testing.M) {
	log.Println("[TestMain] Starting test setup for handlers package")

	db, err := testutil.SetupTestDB("../../../.env.test", "../../../migrations")
	if err != nil {
		log.Printf("[TestMain] Test database unavailable, DB tests will be skipped: %v", err)
	} else {
		testDB = db
		log.Println("[TestMain] Test database connected successfully")
	}

	code := m.Run()

	if testDB != nil {
		testDB.Close()
	}
	os.Exit(code)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

func createHandlerTestUser(t *testing.T) *domain.User {
	t.Helper()

	ts := time.Now().UnixNano()
	user := &domain.User{
		Username: fmt.Sprintf("hnd%d", ts),
		Email:    fmt.Sprintf("hnd%d@example.com", ts),
		Password: "hashedpassword",
	}
	require.NoError(t, repository.NewUserRepository(testDB).Create(user))
	return user
}
