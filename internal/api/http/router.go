package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"atlasrent-backend/internal/security"
	"atlasrent-backend/internal/service"
)

// RouterDeps bundles everything the HTTP surface needs.
type RouterDeps struct {
	Tokens    security.TokenManager
	Auth      service.AuthService
	Booking   service.BookingService
	Fleet     service.FleetService
	Promotion service.PromotionService
	Content   service.ContentService
	Review    service.ReviewService
	Document  service.DocumentService

	MaxFileSize int64
}

// NewRouter builds the /api/v1 route tree. Three tiers: public, bearer-token
// authenticated, and admin.
func NewRouter(deps RouterDeps) *mux.Router {
	authHandler := NewAuthHandler(deps.Auth)
	bookingHandler := NewBookingHandler(deps.Booking)
	fleetHandler := NewFleetHandler(deps.Fleet)
	promoHandler := NewPromotionHandler(deps.Promotion)
	contentHandler := NewContentHandler(deps.Content)
	reviewHandler := NewReviewHandler(deps.Review)
	docHandler := NewDocumentHandler(deps.Document, deps.MaxFileSize)

	root := mux.NewRouter()
	root.Use(LoggingMiddleware)

	api := root.PathPrefix("/api/v1").Subrouter()

	// Public routes.
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/cars", fleetHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/cars/{id}", fleetHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/cars/{id}/calendar", bookingHandler.Calendar).Methods(http.MethodGet)
	api.HandleFunc("/bookings/quote", bookingHandler.Quote).Methods(http.MethodPost)
	api.HandleFunc("/promotions/free-days", promoHandler.ListFreeDaysTiers).Methods(http.MethodGet)
	api.HandleFunc("/insurance-options", promoHandler.ListInsuranceOptions).Methods(http.MethodGet)
	api.HandleFunc("/locations", contentHandler.ListLocations).Methods(http.MethodGet)
	api.HandleFunc("/content/{section}", contentHandler.GetSection).Methods(http.MethodGet)
	api.HandleFunc("/reviews", reviewHandler.ListPublic).Methods(http.MethodGet)
	api.HandleFunc("/documents/download", docHandler.Download).Methods(http.MethodGet)

	// Review submission works for guests; a token just links the account.
	submit := api.PathPrefix("/reviews").Subrouter()
	submit.Use(OptionalAuthMiddleware(deps.Tokens))
	submit.HandleFunc("", reviewHandler.Submit).Methods(http.MethodPost)

	// Authenticated routes.
	authed := api.PathPrefix("").Subrouter()
	authed.Use(AuthMiddleware(deps.Tokens))
	authed.HandleFunc("/auth/profile", authHandler.Profile).Methods(http.MethodGet)
	authed.HandleFunc("/auth/profile", authHandler.UpdateProfile).Methods(http.MethodPut)
	authed.HandleFunc("/bookings", bookingHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/bookings", bookingHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{id}", bookingHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{id}/cancel", bookingHandler.Cancel).Methods(http.MethodPost)
	authed.HandleFunc("/documents", docHandler.Upload).Methods(http.MethodPost)

	// Admin routes.
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(AuthMiddleware(deps.Tokens), RequireAdmin)
	admin.HandleFunc("/cars", fleetHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/cars/{id}", fleetHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/cars/{id}", fleetHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/bookings", bookingHandler.AdminList).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}/status", bookingHandler.AdminUpdateStatus).Methods(http.MethodPut)
	admin.HandleFunc("/promotions/free-days", promoHandler.SaveFreeDaysTiers).Methods(http.MethodPut)
	admin.HandleFunc("/insurance-options", promoHandler.SaveInsuranceOption).Methods(http.MethodPost)
	admin.HandleFunc("/insurance-options/{id}", promoHandler.DeleteInsuranceOption).Methods(http.MethodDelete)
	admin.HandleFunc("/content", contentHandler.ListSections).Methods(http.MethodGet)
	admin.HandleFunc("/content/{section}", contentHandler.SaveSection).Methods(http.MethodPut)
	admin.HandleFunc("/reviews", reviewHandler.AdminList).Methods(http.MethodGet)
	admin.HandleFunc("/reviews/{id}/moderate", reviewHandler.Moderate).Methods(http.MethodPut)
	admin.HandleFunc("/reviews/{id}", reviewHandler.Delete).Methods(http.MethodDelete)

	return root
}
