package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/guicasaliz/lista-presentes-guilherme-elizabeth/internal/registry"
	"github.com/guicasaliz/lista-presentes-guilherme-elizabeth/internal/store"
)

type AdminHandler struct {
	Store        *store.Store
	Registry     *registry.Service
	SessionStore sessions.Store
	Templates    *TemplateCache
	UploadsDir   string
}

// LoginGet renders the combined login/signup page.
func (h *AdminHandler) LoginGet(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("login.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "admin-session")
	data := map[string]interface{}{
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *AdminHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")

	email := r.FormValue("email")
	password := r.FormValue("password")

	admin, err := h.Registry.Login(email, password)
	if err != nil {
		session.AddFlash(flashForError(err, "Erro na autenticação"))
		session.Save(r, w)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.startSession(w, r, session, admin.Email, "Login realizado com sucesso")
}

// SignupPost creates a new admin account and signs it in.
func (h *AdminHandler) SignupPost(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")

	email := r.FormValue("email")
	password := r.FormValue("password")

	admin, err := h.Registry.Signup(email, password)
	if err != nil {
		session.AddFlash(flashForError(err, "Erro na autenticação"))
		session.Save(r, w)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.startSession(w, r, session, admin.Email, "Conta criada com sucesso")
}

func (h *AdminHandler) startSession(w http.ResponseWriter, r *http.Request, session *sessions.Session, email, message string) {
	session.Values["authenticated"] = true
	session.Values["admin_email"] = email
	session.Options.Path = "/"
	session.AddFlash(FlashMessage{Type: "success", Message: message})

	if err := session.Save(r, w); err != nil {
		slog.Error("Failed to save session", "error", err)
		http.Error(w, "Failed to save session", http.StatusInternalServerError)
		return
	}

	slog.Info("Admin authenticated", "email", email)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	session.Values["authenticated"] = false
	delete(session.Values, "admin_email")
	session.Options.MaxAge = -1 // Expire immediately
	session.Save(r, w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// AuthMiddleware ensures the admin is logged in. The cookie is trusted as
// presented; there is no server-side revocation of live sessions.
func (h *AdminHandler) AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := h.SessionStore.Get(r, "admin-session")
		if auth, ok := session.Values["authenticated"].(bool); !ok || !auth {
			session.AddFlash(FlashMessage{Type: "error", Message: "Faça login para acessar esta página"})
			session.Save(r, w)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

// Panel shows every gift (reserved included) plus registry totals.
func (h *AdminHandler) Panel(w http.ResponseWriter, r *http.Request) {
	gifts, err := h.Store.ListAllGifts()
	if err != nil {
		http.Error(w, "Erro ao carregar presentes", http.StatusInternalServerError)
		return
	}
	stats, err := h.Store.GetRegistryStats()
	if err != nil {
		http.Error(w, "Erro ao carregar estatísticas", http.StatusInternalServerError)
		return
	}

	tmpl := h.Templates.Get("admin.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "admin-session")
	data := map[string]interface{}{
		"Gifts":      gifts,
		"Stats":      stats,
		"AdminEmail": session.Values["admin_email"],
		"CsrfField":  csrf.TemplateField(r),
		"Flashes":    GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// Report lists who reserved what, most recent first.
func (h *AdminHandler) Report(w http.ResponseWriter, r *http.Request) {
	gifts, err := h.Store.ListReservedGifts()
	if err != nil {
		http.Error(w, "Erro ao carregar relatório", http.StatusInternalServerError)
		return
	}

	tmpl := h.Templates.Get("admin_report.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "admin-session")
	data := map[string]interface{}{
		"Gifts":   gifts,
		"Flashes": GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}
