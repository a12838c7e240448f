//go:build integration
// +build integration

package integration

import (
	"log"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/tanzeemhub/reports-go/internal/api/middleware"
	"github.com/tanzeemhub/reports-go/internal/application"
	"github.com/tanzeemhub/reports-go/internal/config"
	"github.com/tanzeemhub/reports-go/internal/config/db"
	"github.com/tanzeemhub/reports-go/internal/domain/org"
	"github.com/tanzeemhub/reports-go/internal/domain/user"
	"github.com/tanzeemhub/reports-go/internal/notify"
	"github.com/tanzeemhub/reports-go/internal/repository"
	"github.com/tanzeemhub/reports-go/internal/testutils"
)

// TestContext holds everything the integration tests share: one router, one
// database, three users at different hierarchy levels.
type TestContext struct {
	Router *gin.Engine
	Repos  *repository.Repos

	Admin     *user.User
	Reviewer  *user.User // dila level
	Submitter *user.User // muqam level

	AdminToken     string
	ReviewerToken  string
	SubmitterToken string

	Zone  *org.Zone
	Dila  *org.Dila
	Muqam *org.Muqam
}

var testCtx *TestContext

func TestMain(m *testing.M) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("no .env file, using environment: %v", err)
	}
	_ = os.Setenv("JWT_SECRET", "test-secret-key-for-integration-testing")
	_ = os.Setenv("ISSUER", "test-reports")

	config.LoadConfig()
	middleware.Init()

	gormDB, cleanup := testutils.SetupPostgresForIntegration()
	db.InitWithGormDB(gormDB)

	if err := setupTestContext(); err != nil {
		cleanup()
		log.Fatalf("failed to set up test context: %v", err)
	}

	code := m.Run()
	cleanup()
	os.Exit(code)
}

func setupTestContext() error {
	repos := repository.New(db.DB)

	zone := &org.Zone{Name: "Zone East", Code: "ZE"}
	if err := repos.Org.CreateZone(zone); err != nil {
		return err
	}
	dila := &org.Dila{ZoneID: zone.ID, Name: "Dila Central", Code: "DC"}
	if err := repos.Org.CreateDila(dila); err != nil {
		return err
	}
	muqam := &org.Muqam{DilaID: dila.ID, Name: "Muqam North", Code: "MN"}
	if err := repos.Org.CreateMuqam(muqam); err != nil {
		return err
	}

	admin, err := createUser(repos, user.User{
		Username: "admin", FullName: "National Admin",
		Level: org.LevelNational, IsAdmin: true,
	})
	if err != nil {
		return err
	}
	reviewer, err := createUser(repos, user.User{
		Username: "reviewer", FullName: "Dila Reviewer",
		Level: org.LevelDila, DilaID: &dila.ID,
	})
	if err != nil {
		return err
	}
	submitter, err := createUser(repos, user.User{
		Username: "submitter", FullName: "Muqam Submitter",
		Level: org.LevelMuqam, MuqamID: &muqam.ID, DilaID: &dila.ID, ZoneID: &zone.ID,
	})
	if err != nil {
		return err
	}

	adminToken, err := middleware.GenerateToken(admin, time.Hour)
	if err != nil {
		return err
	}
	reviewerToken, err := middleware.GenerateToken(reviewer, time.Hour)
	if err != nil {
		return err
	}
	submitterToken, err := middleware.GenerateToken(submitter, time.Hour)
	if err != nil {
		return err
	}

	hub := notify.NewHub()
	services := application.New(repos, notify.Multi{notify.LogDispatcher{}, hub}, newMemBlobStore())
	router := testutils.SetupRouter(services, repos, hub)

	testCtx = &TestContext{
		Router:         router,
		Repos:          repos,
		Admin:          admin,
		Reviewer:       reviewer,
		Submitter:      submitter,
		AdminToken:     adminToken,
		ReviewerToken:  reviewerToken,
		SubmitterToken: submitterToken,
		Zone:           zone,
		Dila:           dila,
		Muqam:          muqam,
	}
	return nil
}

func createUser(repos *repository.Repos, u user.User) (*user.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("test-password"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u.Password = string(hashed)
	if err := repos.User.SaveUser(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func GetTestContext() *TestContext {
	return testCtx
}
