package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tech0-step3/portal-web/internal/backend"
	usershttp "github.com/tech0-step3/portal-web/internal/users/http"
	"github.com/tech0-step3/portal-web/internal/web"
)

const seedJSON = `{"id":"1","name":"A","email":"a@x.com","prefecture":"Tokyo"}`

type fakeAPI struct {
	putStatus int
	puts      atomic.Int32
	gets      atomic.Int32
	lastPut   map[string]any
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/users":
		_, _ = w.Write([]byte("[" + seedJSON + `,{"id":"2","name":"C","email":"c@x.com","prefecture":"Osaka"}]`))
	case r.Method == http.MethodGet && r.URL.Path == "/api/users/1":
		f.gets.Add(1)
		_, _ = w.Write([]byte(seedJSON))
	case r.Method == http.MethodGet && r.URL.Path == "/api/users/broken":
		_, _ = w.Write([]byte(`{"id":`))
	case r.Method == http.MethodPut && r.URL.Path == "/api/users/1":
		f.puts.Add(1)
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &f.lastPut)
		w.WriteHeader(f.putStatus)
	default:
		http.NotFound(w, r)
	}
}

func setup(t *testing.T, api *fakeAPI) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	r := gin.New()
	web.MustInstall(r)
	usershttp.New(backend.New(srv.URL)).Register(r.Group("/users"))
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func post(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

// editedForm is the save form after the viewer changed the name from A to B.
func editedForm(action string) url.Values {
	return url.Values{
		"action":               {action},
		"committed_name":       {"A"},
		"committed_email":      {"a@x.com"},
		"committed_prefecture": {"Tokyo"},
		"name":                 {"B"},
		"email":                {"a@x.com"},
		"prefecture":           {"Tokyo"},
	}
}

func TestDetailViewing(t *testing.T) {
	r := setup(t, &fakeAPI{})

	rr := get(r, "/users/1")
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, `data-state="viewing"`)
	assert.Contains(t, body, `<h2 class="text-2xl font-bold text-gray-900" data-field="name">A</h2>`)
	assert.Contains(t, body, "a@x.com")
	assert.Contains(t, body, "Tokyo")
}

func TestDetailNotFound(t *testing.T) {
	r := setup(t, &fakeAPI{})

	rr := get(r, "/users/404")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, "data-not-found")
	assert.NotContains(t, body, "data-state")
	assert.NotContains(t, body, "data-field")
}

func TestDetailMalformedBodyLooksLikeNotFound(t *testing.T) {
	r := setup(t, &fakeAPI{})

	rr := get(r, "/users/broken")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.NotContains(t, rr.Body.String(), "data-state")
}

func TestDetailEditMode(t *testing.T) {
	r := setup(t, &fakeAPI{})

	rr := get(r, "/users/1?mode=edit")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `data-state="editing"`)
	assert.Contains(t, rr.Body.String(), `name="name" value="A"`)
}

func TestEditSeedsFromDisplayedRecordWithoutFetching(t *testing.T) {
	api := &fakeAPI{}
	r := setup(t, api)

	rr := post(r, "/users/1", url.Values{
		"action":               {"edit"},
		"committed_name":       {"A"},
		"committed_email":      {"a@x.com"},
		"committed_prefecture": {"Tokyo"},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `data-state="editing"`)
	assert.Contains(t, rr.Body.String(), `name="name" value="A"`)
	assert.Zero(t, api.gets.Load())
	assert.Zero(t, api.puts.Load())
}

func TestCancelLeavesRecordUnchanged(t *testing.T) {
	api := &fakeAPI{putStatus: http.StatusOK}
	r := setup(t, api)

	rr := post(r, "/users/1", editedForm("cancel"))
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, `data-state="viewing"`)
	assert.Contains(t, body, `data-field="name">A</h2>`)
	assert.NotContains(t, body, ">B<")
	assert.Zero(t, api.puts.Load())
	assert.Zero(t, api.gets.Load())
}

func TestSaveSuccessShowsEditedRecord(t *testing.T) {
	api := &fakeAPI{putStatus: http.StatusOK}
	r := setup(t, api)

	rr := post(r, "/users/1", editedForm("save"))
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, `data-state="viewing"`)
	assert.Contains(t, body, `data-field="name">B</h2>`)
	assert.NotContains(t, body, "data-notice")

	assert.Equal(t, int32(1), api.puts.Load())
	assert.Equal(t, map[string]any{"name": "B"}, api.lastPut)
}

func TestSaveWithoutChangesSkipsBackend(t *testing.T) {
	api := &fakeAPI{putStatus: http.StatusInternalServerError}
	r := setup(t, api)

	form := editedForm("save")
	form.Set("name", "A")

	rr := post(r, "/users/1", form)
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, `data-state="viewing"`)
	assert.Contains(t, body, `data-field="name">A</h2>`)
	assert.NotContains(t, body, "data-notice")
	assert.Zero(t, api.puts.Load())
}

func TestSaveFailureStaysEditingWithEdits(t *testing.T) {
	api := &fakeAPI{putStatus: http.StatusInternalServerError}
	r := setup(t, api)

	rr := post(r, "/users/1", editedForm("save"))
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, `data-state="editing"`)
	assert.Contains(t, body, `name="name" value="B"`)
	assert.Contains(t, body, `name="committed_name" value="A"`)
	assert.Contains(t, body, "data-notice")
	assert.NotContains(t, body, `data-field="name"`)
	assert.Equal(t, int32(1), api.puts.Load())
}

func TestUnknownActionRedirects(t *testing.T) {
	r := setup(t, &fakeAPI{})

	rr := post(r, "/users/1", url.Values{"action": {"delete"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/users/1", rr.Header().Get("Location"))
}

func TestList(t *testing.T) {
	r := setup(t, &fakeAPI{})

	rr := get(r, "/users")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 2, strings.Count(rr.Body.String(), `data-row="user"`))
	assert.Contains(t, rr.Body.String(), `href="/users/2"`)
}
