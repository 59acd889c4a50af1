package flash

import (
	"context"
	"net/http"
	"time"

	"vet-clinic-admin/internal/ui/dialog"
)

// CookieName lleva solo la clave; el contenido queda en el Store.
const CookieName = "vetadmin_flash"

// Save guarda el diálogo y deja la cookie para el próximo GET.
func Save(ctx context.Context, w http.ResponseWriter, s Store, d dialog.Dialog) error {
	key, err := s.Put(ctx, d)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    key,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Take consume el diálogo pendiente, si hay, y borra la cookie.
func Take(w http.ResponseWriter, r *http.Request, s Store) (dialog.Dialog, bool, error) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return dialog.Closed(), false, nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return s.Pop(r.Context(), c.Value)
}
