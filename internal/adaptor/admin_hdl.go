package adaptor

import (
	"net/http"
	"strconv"

	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxFeedBytes caps an uploaded flight or hotel feed.
const maxFeedBytes = 10 << 20

type AdminHandler struct {
	catalog usecase.CatalogService
	report  usecase.ReportService
	contact usecase.ContactService
	log     *zap.Logger
}

func NewAdminHandler(
	catalog usecase.CatalogService,
	report usecase.ReportService,
	contact usecase.ContactService,
	log *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		catalog: catalog,
		report:  report,
		contact: contact,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// LoadFlights handles POST /admin/flights/load with a JSON feed body
func (h *AdminHandler) LoadFlights(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalog.LoadFlights(r.Context(), http.MaxBytesReader(w, r.Body, maxFeedBytes))
	if err != nil {
		handleServiceError(w, h.log, err, "load flights")
		return
	}

	utils.ResponseSuccess(w, "Flights loaded", result)
}

// LoadHotels handles POST /admin/hotels/load with an XML feed body
func (h *AdminHandler) LoadHotels(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalog.LoadHotels(r.Context(), http.MaxBytesReader(w, r.Body, maxFeedBytes))
	if err != nil {
		handleServiceError(w, h.log, err, "load hotels")
		return
	}

	utils.ResponseSuccess(w, "Hotels loaded", result)
}

// ExportFlights handles GET /admin/flights/export
func (h *AdminHandler) ExportFlights(w http.ResponseWriter, r *http.Request) {
	body, err := h.catalog.ExportFlights(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "export flights")
		return
	}

	utils.ResponseFile(w, "application/json", "flights.json", body)
}

// ExportHotels handles GET /admin/hotels/export
func (h *AdminHandler) ExportHotels(w http.ResponseWriter, r *http.Request) {
	body, err := h.catalog.ExportHotels(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "export hotels")
		return
	}

	utils.ResponseFile(w, "application/xml", "hotels.xml", body)
}

// Reports handles GET /admin/reports
func (h *AdminHandler) Reports(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.report.Names())
}

// Report handles GET /admin/reports/{name}?min_infants=&min_children=
func (h *AdminHandler) Report(w http.ResponseWriter, r *http.Request) {
	params := usecase.DefaultReportParams()
	query := r.URL.Query()

	errs := make(map[string]string)
	if raw := query.Get("min_infants"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			errs["min_infants"] = "Must be a non-negative integer"
		}
		params.MinInfants = n
	}
	if raw := query.Get("min_children"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			errs["min_children"] = "Must be a non-negative integer"
		}
		params.MinChildren = n
	}
	if len(errs) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return
	}

	report, err := h.report.Run(r.Context(), chi.URLParam(r, "name"), params)
	if err != nil {
		handleServiceError(w, h.log, err, "run report")
		return
	}

	utils.ResponseSuccess(w, "success", report)
}

// Contacts handles GET /admin/contacts
func (h *AdminHandler) Contacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contact.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list contacts")
		return
	}

	utils.ResponseSuccess(w, "success", contacts)
}

// Stats handles GET /admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.report.Stats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "load stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}
