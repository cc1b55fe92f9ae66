// Package api exposes the terminal over HTTP: auth, navigation, chat,
// history, the admin surface and the static page data.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xdpzq/devcore/pkg/api/handler"
	"github.com/xdpzq/devcore/pkg/auth"
)

type Services struct {
	Auth       handler.AuthProvider
	Chat       handler.ChatProvider
	Admin      handler.AdminProvider
	Navigation handler.Navigator
}

func NewRouter(store *auth.SessionStore, svc Services) http.Handler {
	authH := handler.NewAuth(svc.Auth)
	chatH := handler.NewChat(svc.Chat)
	adminH := handler.NewAdmin(svc.Admin)
	navH := handler.NewNavigation(svc.Navigation)
	metaH := handler.NewMeta()

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(EnsureSession(store))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authH.Register)
		r.Post("/login", authH.Login)
		r.Post("/logout", authH.Logout)
		r.Get("/me", authH.Me)
	})

	r.Post("/navigate", navH.Navigate)

	r.Route("/chat", func(r chi.Router) {
		r.Post("/send", chatH.Send)
		r.Get("/transcript", chatH.Transcript)
		r.Post("/reset", chatH.Reset)
	})
	r.Get("/history", chatH.History)

	r.Route("/admin", func(r chi.Router) {
		r.Use(RequireAdmin)
		r.Get("/settings", adminH.Settings)
		r.Get("/users", adminH.Users)
		r.Post("/users/{username}/approval", adminH.SetNameApproval)
		r.Delete("/users/{username}", adminH.DeleteUser)
		r.Post("/keys", adminH.AddAPIKey)
		r.Delete("/keys/{index}", adminH.RemoveAPIKey)
		r.Post("/maintenance", adminH.SetMaintenanceMode)
		r.Post("/features/image", adminH.SetImageFeature)
		r.Post("/persona", adminH.SetPersona)
	})

	r.Get("/boot", metaH.Boot)
	r.Get("/meta/about", metaH.About)
	r.Get("/meta/testimonials", metaH.Testimonials)

	return r
}
