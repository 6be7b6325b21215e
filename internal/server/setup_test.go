package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/anmicius0/instructor-dashboard-api/internal/client"
	"github.com/anmicius0/instructor-dashboard-api/internal/config"
	"github.com/anmicius0/instructor-dashboard-api/internal/service"
	"github.com/anmicius0/instructor-dashboard-api/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testSecret    = "test-secret-0123456789"
	testRequester = "prof"
	testCourseID  = "MITx/6.002x/2013_Spring"
	apiPrefix     = "/courses/MITx/6.002x/2013_Spring/instructor/api"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.Logger = zap.NewNop()

	os.Exit(m.Run())
}

type testEnv struct {
	router  *gin.Engine
	lms     *MockLMSClient
	store   *config.TaskStore
	metrics *Metrics
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	lms := new(MockLMSClient)
	store := config.NewTaskStore()
	svc := Services{
		Courses:    lms,
		Enrollment: service.NewEnrollmentManager(lms, lms),
		Access:     service.NewAccessManager(lms, lms),
		Analytics:  service.NewAnalyticsManager(lms),
		Tasks:      service.NewTaskManager(store, lms, lms),
	}
	metrics := NewMetrics()
	cfg := &config.Config{JWTSecret: testSecret}
	return &testEnv{
		router:  NewRouter(cfg, svc, metrics),
		lms:     lms,
		store:   store,
		metrics: metrics,
	}
}

func signToken(t *testing.T, secret, username string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, requesterClaims{Username: username})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

// get issues an authenticated GET as testRequester.
func (e *testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, testRequester))
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) allowCourse(level string) {
	e.lms.On("GetCourseWithAccess", mock.Anything, testRequester, testCourseID, level).
		Return(&client.Course{ID: testCourseID, DisplayName: "Circuits"}, nil)
}
