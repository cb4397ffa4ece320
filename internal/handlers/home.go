package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/guicasaliz/lista-presentes-guilherme-elizabeth/internal/registry"
	"github.com/guicasaliz/lista-presentes-guilherme-elizabeth/internal/store"
)

const shareMessage = "Olha que legal! Lista de presentes do Guilherme & Elizabeth 💍"

type HomeHandler struct {
	Store        *store.Store
	Registry     *registry.Service
	SessionStore sessions.Store
	Templates    *TemplateCache
	BaseURL      string
}

// WhatsAppShareURL builds the wa.me deep link with the pre-templated
// message plus the site URL.
func WhatsAppShareURL(baseURL string) string {
	return "https://wa.me/?text=" + url.QueryEscape(shareMessage+" "+baseURL)
}

// Index shows the public list: only unreserved gifts, newest first.
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	gifts, err := h.Store.ListAvailableGifts()
	if err != nil {
		http.Error(w, "Erro ao carregar presentes", http.StatusInternalServerError)
		return
	}

	settings, err := h.Store.GetSiteSettings()
	if err != nil {
		http.Error(w, "Erro ao carregar configurações", http.StatusInternalServerError)
		return
	}

	tmpl := h.Templates.Get("home.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}

	session, _ := h.SessionStore.Get(r, "public-session")
	adminSession, _ := h.SessionStore.Get(r, "admin-session")
	isAdmin := false
	if auth, ok := adminSession.Values["authenticated"].(bool); ok && auth {
		isAdmin = true
	}

	data := map[string]interface{}{
		"Gifts":        gifts,
		"Settings":     settings,
		"WhatsAppLink": WhatsAppShareURL(h.BaseURL),
		"Flashes":      GetFlash(session),
		"IsAdmin":      isAdmin,
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// ReserveForm shows the reservation form for one gift.
func (h *HomeHandler) ReserveForm(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Presente inválido", http.StatusBadRequest)
		return
	}

	gift, err := h.Store.GetGiftByID(id)
	if err != nil {
		http.Error(w, "Erro ao carregar presente", http.StatusInternalServerError)
		return
	}
	if gift == nil || gift.IsSelected {
		session, _ := h.SessionStore.Get(r, "public-session")
		session.AddFlash(FlashMessage{Type: "error", Message: "Este presente não está mais disponível"})
		session.Save(r, w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	tmpl := h.Templates.Get("reserve.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "public-session")
	data := map[string]interface{}{
		"Gift":      gift,
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

// Reserve handles the reservation submit.
func (h *HomeHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "public-session")

	if err := r.ParseForm(); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Dados do formulário inválidos"})
		session.Save(r, w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	giftID := r.FormValue("gift_id")
	guestName := r.FormValue("guest_name")
	guestEmail := r.FormValue("guest_email")

	if err := h.Registry.Reserve(giftID, guestName, guestEmail); err != nil {
		session.AddFlash(flashForError(err, "Erro ao selecionar presente"))
		session.Save(r, w)
		// Already-reserved gifts are gone from the form, so go home; input
		// problems send the guest back to retry.
		if errors.Is(err, registry.ErrAlreadyReserved) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
		} else {
			http.Redirect(w, r, "/reserve?id="+url.QueryEscape(giftID), http.StatusSeeOther)
		}
		return
	}

	session.Save(r, w)
	http.Redirect(w, r, "/thanks", http.StatusSeeOther)
}

// Thanks shows the confirmation view; the template refreshes back to the
// gift list after 5 seconds.
func (h *HomeHandler) Thanks(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("thanks.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	tmpl.Execute(w, nil)
}
