package api

import (
	"database/sql"
	"net/http"

	"fieldbase/internal/model"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	teamHandler := &TeamHandler{DB: db}
	clientsHandler := &ClientsHandler{DB: db}
	sitesHandler := &SitesHandler{DB: db}
	assetsHandler := &AssetsHandler{DB: db}
	jobsHandler := &JobsHandler{DB: db}
	partsHandler := &PartsHandler{DB: db}
	dashboardHandler := &DashboardHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret, db)
	requireManageTeam := RequireCapability(func(c model.Capability) bool { return c.ManageTeam })
	requireEdit := RequireCapability(func(c model.Capability) bool { return c.EditRecords })
	requireAdjustStock := RequireCapability(func(c model.Capability) bool { return c.AdjustStock })

	// Public: login.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated routes.
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	// Team (admin only).
	mux.Handle("GET /api/team", authMW(requireManageTeam(http.HandlerFunc(teamHandler.List))))
	mux.Handle("POST /api/team", authMW(requireManageTeam(http.HandlerFunc(teamHandler.Create))))
	mux.Handle("GET /api/team/{id}", authMW(requireManageTeam(http.HandlerFunc(teamHandler.Get))))
	mux.Handle("PUT /api/team/{id}", authMW(requireManageTeam(http.HandlerFunc(teamHandler.Update))))
	mux.Handle("PUT /api/team/{id}/password", authMW(requireManageTeam(http.HandlerFunc(teamHandler.ResetPassword))))
	mux.Handle("DELETE /api/team/{id}", authMW(requireManageTeam(http.HandlerFunc(teamHandler.Delete))))

	// Clients: read (all roles), write (edit grant).
	mux.Handle("GET /api/clients", authMW(http.HandlerFunc(clientsHandler.List)))
	mux.Handle("POST /api/clients", authMW(requireEdit(http.HandlerFunc(clientsHandler.Create))))
	mux.Handle("GET /api/clients/{id}", authMW(http.HandlerFunc(clientsHandler.Get)))
	mux.Handle("GET /api/clients/{id}/sites", authMW(http.HandlerFunc(clientsHandler.Sites)))
	mux.Handle("PUT /api/clients/{id}", authMW(requireEdit(http.HandlerFunc(clientsHandler.Update))))
	mux.Handle("DELETE /api/clients/{id}", authMW(requireEdit(http.HandlerFunc(clientsHandler.Delete))))

	// Sites.
	mux.Handle("GET /api/sites", authMW(http.HandlerFunc(sitesHandler.List)))
	mux.Handle("POST /api/sites", authMW(requireEdit(http.HandlerFunc(sitesHandler.Create))))
	mux.Handle("GET /api/sites/{id}", authMW(http.HandlerFunc(sitesHandler.Get)))
	mux.Handle("PUT /api/sites/{id}", authMW(requireEdit(http.HandlerFunc(sitesHandler.Update))))
	mux.Handle("DELETE /api/sites/{id}", authMW(requireEdit(http.HandlerFunc(sitesHandler.Delete))))

	// Assets, including photos.
	mux.Handle("GET /api/assets", authMW(http.HandlerFunc(assetsHandler.List)))
	mux.Handle("POST /api/assets", authMW(requireEdit(http.HandlerFunc(assetsHandler.Create))))
	mux.Handle("GET /api/assets/{id}", authMW(http.HandlerFunc(assetsHandler.Get)))
	mux.Handle("PUT /api/assets/{id}", authMW(requireEdit(http.HandlerFunc(assetsHandler.Update))))
	mux.Handle("DELETE /api/assets/{id}", authMW(requireEdit(http.HandlerFunc(assetsHandler.Delete))))
	mux.Handle("PUT /api/assets/{id}/photo", authMW(requireEdit(http.HandlerFunc(assetsHandler.UploadPhoto))))
	mux.Handle("GET /api/assets/{id}/photo", authMW(http.HandlerFunc(assetsHandler.GetPhoto)))

	// Jobs. Status transitions have their own ownership check inside the
	// handler, so only authentication is enforced here.
	mux.Handle("GET /api/jobs", authMW(http.HandlerFunc(jobsHandler.List)))
	mux.Handle("POST /api/jobs", authMW(requireEdit(http.HandlerFunc(jobsHandler.Create))))
	mux.Handle("GET /api/jobs/{id}", authMW(http.HandlerFunc(jobsHandler.Get)))
	mux.Handle("PUT /api/jobs/{id}", authMW(requireEdit(http.HandlerFunc(jobsHandler.Update))))
	mux.Handle("PUT /api/jobs/{id}/status", authMW(http.HandlerFunc(jobsHandler.UpdateStatus)))
	mux.Handle("DELETE /api/jobs/{id}", authMW(requireEdit(http.HandlerFunc(jobsHandler.Delete))))

	// Parts: read (all roles), metadata writes (edit grant), stock
	// adjustments (adjust grant, so technicians can consume parts).
	mux.Handle("GET /api/parts", authMW(http.HandlerFunc(partsHandler.List)))
	mux.Handle("GET /api/parts/alerts", authMW(http.HandlerFunc(partsHandler.Alerts)))
	mux.Handle("POST /api/parts", authMW(requireEdit(http.HandlerFunc(partsHandler.Create))))
	mux.Handle("GET /api/parts/{id}", authMW(http.HandlerFunc(partsHandler.Get)))
	mux.Handle("PUT /api/parts/{id}", authMW(requireEdit(http.HandlerFunc(partsHandler.Update))))
	mux.Handle("DELETE /api/parts/{id}", authMW(requireEdit(http.HandlerFunc(partsHandler.Delete))))
	mux.Handle("POST /api/parts/{id}/adjust", authMW(requireAdjustStock(http.HandlerFunc(partsHandler.Adjust))))
	mux.Handle("GET /api/parts/{id}/movements", authMW(http.HandlerFunc(partsHandler.Movements)))

	// Dashboard.
	mux.Handle("GET /api/dashboard", authMW(http.HandlerFunc(dashboardHandler.Get)))

	return mux
}
