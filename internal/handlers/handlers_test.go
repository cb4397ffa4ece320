package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guicasaliz/lista-presentes-guilherme-elizabeth/internal/models"
	"github.com/guicasaliz/lista-presentes-guilherme-elizabeth/internal/registry"
	"github.com/guicasaliz/lista-presentes-guilherme-elizabeth/internal/store"
)

func newTestEnv(t *testing.T) (*store.Store, *registry.Service, *TemplateCache, sessions.Store) {
	t.Helper()
	st, err := store.NewStore(":memory:")
	require.NoError(t, err)
	st.DB.SetMaxOpenConns(1)
	require.NoError(t, st.InitSchema())
	t.Cleanup(func() { st.Close() })

	templates := NewTemplateCache()
	require.NoError(t, templates.Load("../../templates"))

	sessionStore := sessions.NewCookieStore([]byte("test-session-key-0123456789abcdef"))
	return st, registry.New(st), templates, sessionStore
}

func seedGift(t *testing.T, st *store.Store, id, name string) {
	t.Helper()
	require.NoError(t, st.CreateGift(&models.Gift{
		ID:          id,
		Name:        name,
		Description: "descrição",
		ImageURL:    "https://example.com/" + id + ".jpg",
		ProductLink: "https://example.com/produto/" + id,
		Price:       100,
	}))
}

func TestHomeIndex_ShowsOnlyAvailableGifts(t *testing.T) {
	st, svc, templates, sessionStore := newTestEnv(t)
	seedGift(t, st, "g1", "Jogo de panelas")
	seedGift(t, st, "g2", "Cafeteira italiana")
	require.NoError(t, svc.Reserve("g2", "Ana", ""))

	h := &HomeHandler{Store: st, Registry: svc, SessionStore: sessionStore, Templates: templates, BaseURL: "http://example.com"}

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Jogo de panelas")
	assert.NotContains(t, body, "Cafeteira italiana")
	assert.Contains(t, body, "https://wa.me/?text=")
}

func TestReserve_RedirectsToThanks(t *testing.T) {
	st, svc, templates, sessionStore := newTestEnv(t)
	seedGift(t, st, "g1", "Jogo de panelas")

	h := &HomeHandler{Store: st, Registry: svc, SessionStore: sessionStore, Templates: templates, BaseURL: "http://example.com"}

	form := url.Values{"gift_id": {"g1"}, "guest_name": {"Bruno"}, "guest_email": {""}}
	req := httptest.NewRequest(http.MethodPost, "/reserve", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Reserve(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/thanks", rec.Header().Get("Location"))

	g, err := st.GetGiftByID("g1")
	require.NoError(t, err)
	assert.True(t, g.IsSelected)
	assert.Equal(t, "Bruno", g.GuestName())
}

func TestReserve_EmptyNameRedirectsBackToForm(t *testing.T) {
	st, svc, templates, sessionStore := newTestEnv(t)
	seedGift(t, st, "g1", "Jogo de panelas")

	h := &HomeHandler{Store: st, Registry: svc, SessionStore: sessionStore, Templates: templates, BaseURL: "http://example.com"}

	form := url.Values{"gift_id": {"g1"}, "guest_name": {"   "}}
	req := httptest.NewRequest(http.MethodPost, "/reserve", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Reserve(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/reserve?id=g1", rec.Header().Get("Location"))

	g, err := st.GetGiftByID("g1")
	require.NoError(t, err)
	assert.False(t, g.IsSelected)
}

func TestReserve_AlreadyReservedRedirectsHome(t *testing.T) {
	st, svc, templates, sessionStore := newTestEnv(t)
	seedGift(t, st, "g1", "Jogo de panelas")
	require.NoError(t, svc.Reserve("g1", "Ana", ""))

	h := &HomeHandler{Store: st, Registry: svc, SessionStore: sessionStore, Templates: templates, BaseURL: "http://example.com"}

	form := url.Values{"gift_id": {"g1"}, "guest_name": {"Bruno"}}
	req := httptest.NewRequest(http.MethodPost, "/reserve", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Reserve(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	g, err := st.GetGiftByID("g1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", g.GuestName(), "the first reservation must stand")
}

func TestReserveForm_ReservedGiftRedirectsHome(t *testing.T) {
	st, svc, templates, sessionStore := newTestEnv(t)
	seedGift(t, st, "g1", "Jogo de panelas")
	require.NoError(t, svc.Reserve("g1", "Ana", ""))

	h := &HomeHandler{Store: st, Registry: svc, SessionStore: sessionStore, Templates: templates, BaseURL: "http://example.com"}

	rec := httptest.NewRecorder()
	h.ReserveForm(rec, httptest.NewRequest(http.MethodGet, "/reserve?id=g1", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestAuthMiddleware_RedirectsAnonymousToLogin(t *testing.T) {
	st, svc, templates, sessionStore := newTestEnv(t)

	h := &AdminHandler{Store: st, Registry: svc, SessionStore: sessionStore, Templates: templates}

	called := false
	protected := h.AuthMiddleware(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	protected(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.False(t, called)
}

func TestLoginThenPanel(t *testing.T) {
	st, svc, templates, sessionStore := newTestEnv(t)
	_, err := svc.Signup("a@x.com", "secret")
	require.NoError(t, err)
	seedGift(t, st, "g1", "Jogo de panelas")

	h := &AdminHandler{Store: st, Registry: svc, SessionStore: sessionStore, Templates: templates}

	form := url.Values{"email": {"a@x.com"}, "password": {"secret"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.LoginPost(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/admin", rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	// Present the session cookie to the panel.
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	h.AuthMiddleware(h.Panel)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jogo de panelas")
}

func TestLoginPost_WrongPasswordRedirectsBack(t *testing.T) {
	st, svc, templates, sessionStore := newTestEnv(t)
	_, err := svc.Signup("a@x.com", "secret")
	require.NoError(t, err)

	h := &AdminHandler{Store: st, Registry: svc, SessionStore: sessionStore, Templates: templates}

	form := url.Values{"email": {"a@x.com"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.LoginPost(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestAdminReport_ListsGuests(t *testing.T) {
	st, svc, templates, sessionStore := newTestEnv(t)
	seedGift(t, st, "g1", "Jogo de panelas")
	require.NoError(t, svc.Reserve("g1", "Carla", "carla@example.com"))

	h := &AdminHandler{Store: st, Registry: svc, SessionStore: sessionStore, Templates: templates}

	rec := httptest.NewRecorder()
	h.Report(rec, httptest.NewRequest(http.MethodGet, "/admin/report", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Carla")
	assert.Contains(t, body, "carla@example.com")

	g, err := st.GetGiftByID("g1")
	require.NoError(t, err)
	require.NotNil(t, g.SelectedAt)
	assert.Contains(t, body, g.SelectedAt.Format("02/01/2006"))
}

func TestWhatsAppShareURL(t *testing.T) {
	link := WhatsAppShareURL("https://presentes.example.com")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/?text="))
	decoded, err := url.QueryUnescape(strings.TrimPrefix(link, "https://wa.me/?text="))
	require.NoError(t, err)
	assert.Equal(t, shareMessage+" https://presentes.example.com", decoded)
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 199,90", FormatBRL(199.9))
	assert.Equal(t, "R$ 0,00", FormatBRL(0))
	assert.Equal(t, "R$ 19,90", FormatBRL(19.9))
}
