package handlers

import (
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

// UploadCouplePhoto replaces the couple photo shown on the public page.
// The uploaded image is resized to 800px wide, re-encoded as JPEG and
// served from the uploads directory.
func (h *AdminHandler) UploadCouplePhoto(w http.ResponseWriter, r *http.Request) {
	session, _ := h.SessionStore.Get(r, "admin-session")
	defer session.Save(r, w)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Arquivo muito grande. Máximo 10MB."})
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Selecione uma imagem"})
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	defer file.Close()

	var img image.Image
	switch filepath.Ext(header.Filename) {
	case ".png":
		img, err = png.Decode(file)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(file)
	default:
		session.AddFlash(FlashMessage{Type: "error", Message: "Formato não suportado. Use PNG ou JPG."})
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	if err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Não foi possível ler a imagem"})
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	resized := resize.Resize(800, 0, img, resize.Lanczos3)

	filename := uuid.New().String() + ".jpg"
	if err := os.MkdirAll(h.UploadsDir, 0o755); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Erro ao salvar a foto"})
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	out, err := os.Create(filepath.Join(h.UploadsDir, filename))
	if err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Erro ao salvar a foto"})
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	defer out.Close()

	if err := jpeg.Encode(out, resized, &jpeg.Options{Quality: 80}); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Erro ao salvar a foto"})
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	if err := h.Store.SetCouplePhotoURL("/static/uploads/" + filename); err != nil {
		session.AddFlash(FlashMessage{Type: "error", Message: "Erro ao salvar a foto"})
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	session.AddFlash(FlashMessage{Type: "success", Message: "Foto atualizada com sucesso"})
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
