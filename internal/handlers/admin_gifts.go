package handlers

import (
	"net/http"

	"github.com/gorilla/csrf"

	"github.com/guicasaliz/lista-presentes-guilherme-elizabeth/internal/registry"
)

func giftFormFromRequest(r *http.Request) registry.GiftForm {
	return registry.GiftForm{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		ImageURL:    r.FormValue("image_url"),
		ProductLink: r.FormValue("product_link"),
		Price:       r.FormValue("price"),
	}
}

func (h *AdminHandler) NewGiftForm(w http.ResponseWriter, r *http.Request) {
	tmpl := h.Templates.Get("admin_gift_form.html")
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

func (h *AdminHandler) CreateGift(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	if _, err := h.Registry.CreateGift(giftFormFromRequest(r)); err != nil {
		session.AddFlash(flashForError(err, "Erro ao salvar presente"))
		http.Redirect(w, r, "/admin/gifts/new", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Presente adicionado com sucesso"})
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *AdminHandler) EditGiftForm(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	gift, err := h.Store.GetGiftByID(id)
	if err != nil {
		http.Error(w, "Erro ao carregar presente", http.StatusInternalServerError)
		return
	}
	if gift == nil {
		http.NotFound(w, r)
		return
	}

	tmpl := h.Templates.Get("admin_gift_form.html")
	if tmpl == nil {
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	session, _ := h.SessionStore.Get(r, "admin-session")
	data := map[string]interface{}{
		"Gift":      gift,
		"CsrfField": csrf.TemplateField(r),
		"Flashes":   GetFlash(session),
	}
	session.Save(r, w)
	tmpl.Execute(w, data)
}

func (h *AdminHandler) UpdateGift(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	id := r.FormValue("id")
	if _, err := h.Registry.UpdateGift(id, giftFormFromRequest(r)); err != nil {
		session.AddFlash(flashForError(err, "Erro ao salvar presente"))
		http.Redirect(w, r, "/admin/gifts/edit?id="+id, http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Presente atualizado com sucesso"})
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// DeleteGift removes a gift permanently. The form carries a confirm flag
// set by the admin; without it nothing is deleted.
func (h *AdminHandler) DeleteGift(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	if r.FormValue("confirm") != "1" {
		session.AddFlash(FlashMessage{Type: "error", Message: "Confirme a exclusão do presente"})
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	if err := h.Registry.DeleteGift(r.FormValue("id")); err != nil {
		session.AddFlash(flashForError(err, "Erro ao remover presente"))
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Presente removido com sucesso"})
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// ResetGift makes a reserved gift available again.
func (h *AdminHandler) ResetGift(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	if err := h.Registry.ResetGift(r.FormValue("id")); err != nil {
		session.AddFlash(flashForError(err, "Erro ao resetar presente"))
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Presente foi tornado disponível novamente"})
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
