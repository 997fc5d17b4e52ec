package controllers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/cafe-finder/config"
	"github.com/yeremiapane/cafe-finder/database"
	"github.com/yeremiapane/cafe-finder/models"
	"github.com/yeremiapane/cafe-finder/router"
	"github.com/yeremiapane/cafe-finder/services"
	"github.com/yeremiapane/cafe-finder/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testKey = "s3cret"

type testApp struct {
	t       *testing.T
	db      *gorm.DB
	router  *gin.Engine
	catalog *services.CatalogService
	cookies []*http.Cookie
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// setupTestApp builds the full router over a seeded in-memory database.
func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	catalog := services.NewCatalogService(db)
	_, err := services.SeedCatalog(context.Background(), catalog)
	require.NoError(t, err)

	r, err := router.SetupRouter(db, config.Config{
		AdminSecretKey: testKey,
		SessionSecret:  []byte("test-session-secret"),
	})
	require.NoError(t, err)

	return &testApp{t: t, db: db, router: r, catalog: catalog}
}

// do sends a request carrying the cookies collected so far, like a browser.
func (a *testApp) do(method, target string, form url.Values, accept string) *httptest.ResponseRecorder {
	a.t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	for _, cookie := range a.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		a.setCookie(cookie)
	}
	return w
}

func (a *testApp) setCookie(cookie *http.Cookie) {
	kept := a.cookies[:0]
	for _, c := range a.cookies {
		if c.Name != cookie.Name {
			kept = append(kept, c)
		}
	}
	if cookie.MaxAge >= 0 && cookie.Value != "" {
		kept = append(kept, cookie)
	}
	a.cookies = kept
}

func (a *testApp) getJSON(target string) map[string]interface{} {
	a.t.Helper()
	w := a.do(http.MethodGet, target, nil, "application/json")
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())

	var body map[string]interface{}
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// messages follows a redirect and returns the flashed notice texts.
func (a *testApp) messages(target string) []string {
	a.t.Helper()
	body := a.getJSON(target)

	raw, _ := body["messages"].([]interface{})
	texts := make([]string, 0, len(raw))
	for _, m := range raw {
		texts = append(texts, m.(map[string]interface{})["text"].(string))
	}
	return texts
}

func (a *testApp) cafeByName(name string) models.Cafe {
	a.t.Helper()
	var cafe models.Cafe
	require.NoError(a.t, a.db.Where("name = ?", name).First(&cafe).Error)
	return cafe
}

func (a *testApp) cafeCount() int64 {
	a.t.Helper()
	var n int64
	require.NoError(a.t, a.db.Model(&models.Cafe{}).Count(&n).Error)
	return n
}

func names(body map[string]interface{}, key string) []string {
	raw, _ := body[key].([]interface{})
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		out = append(out, item.(map[string]interface{})["name"].(string))
	}
	return out
}
