// Package backendtest is an in-process stand-in for the remote owner API,
// used by tests so the client core can be exercised end to end without the
// real backend.
package backendtest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"pickfoo-owner/internal/domain"
)

// Server holds the fake backend's fixtures and records what the client did
// to it. Mutate fields before issuing requests; read the counters after.
type Server struct {
	mu sync.Mutex

	User        *domain.User
	Restaurants []domain.Restaurant
	MenuItems   []domain.MenuItem
	Categories  []domain.Category
	Orders      []domain.Order
	Reviews     []domain.Review
	Txns        []domain.Transaction
	Stats       domain.TransactionStats

	// Expired simulates lapsed credentials: protected endpoints 401 until a
	// successful refresh.
	Expired   bool
	RefreshOK bool

	// NeedVerify makes login fail with the needs-verification marker.
	NeedVerify bool
	FailLogout bool

	// FailRestaurants makes the restaurant list endpoint return a 500,
	// for fail-open guard tests.
	FailRestaurants bool
	FailUpload      bool

	MeCalls          int
	RefreshCalls     int
	LogoutCalls      int
	RestaurantsCalls int
	UploadCalls      int
	DeletedFiles     []string

	nextID int
}

func New() *Server {
	return &Server{RefreshOK: true}
}

// Handler builds the routed fake, wrapped in the same CORS layer the real
// backend uses.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/auth/me", s.authMe).Methods("GET")
	r.HandleFunc("/auth/login", s.authLogin).Methods("POST")
	r.HandleFunc("/auth/register", s.authRegister).Methods("POST")
	r.HandleFunc("/auth/logout", s.authLogout).Methods("GET")
	r.HandleFunc("/auth/refresh-token", s.authRefresh).Methods("POST")
	r.HandleFunc("/auth/verify-email", s.authVerify).Methods("POST")
	r.HandleFunc("/auth/resend-otp", s.ok).Methods("POST")

	r.HandleFunc("/restaurants/my-restaurants", s.listRestaurants).Methods("GET")
	r.HandleFunc("/restaurants", s.createRestaurant).Methods("POST")
	r.HandleFunc("/restaurants/{id}", s.updateRestaurant).Methods("PUT")
	r.HandleFunc("/restaurants/{id}", s.deleteRestaurant).Methods("DELETE")
	r.HandleFunc("/restaurants/{id}/submit-verification", s.submitVerification).Methods("PUT")

	r.HandleFunc("/menu", s.listMenu).Methods("GET")
	r.HandleFunc("/menu", s.createMenuItem).Methods("POST")
	r.HandleFunc("/menu/categories", s.listCategories).Methods("GET")
	r.HandleFunc("/menu/categories", s.createCategory).Methods("POST")
	r.HandleFunc("/menu/categories/{id}", s.updateCategory).Methods("PUT")
	r.HandleFunc("/menu/categories/{id}", s.deleteCategory).Methods("DELETE")
	r.HandleFunc("/menu/{id}", s.updateMenuItem).Methods("PUT")
	r.HandleFunc("/menu/{id}", s.deleteMenuItem).Methods("DELETE")
	r.HandleFunc("/menu/{id}/assign-restaurants", s.assignRestaurants).Methods("PUT")

	r.HandleFunc("/orders/my-orders", s.listOrders).Methods("GET")
	r.HandleFunc("/orders/{id}/status", s.updateOrderStatus).Methods("PUT")

	r.HandleFunc("/reviews/my-reviews", s.listReviews).Methods("GET")

	r.HandleFunc("/transactions", s.listTxns).Methods("GET")
	r.HandleFunc("/transactions/stats", s.txnStats).Methods("GET")

	r.HandleFunc("/upload", s.upload).Methods("POST")
	r.HandleFunc("/upload", s.deleteUpload).Methods("DELETE")

	return cors.Default().Handler(r)
}

type envelope struct {
	Success           bool         `json:"success"`
	Message           string       `json:"message,omitempty"`
	Data              interface{}  `json:"data,omitempty"`
	User              *domain.User `json:"user,omitempty"`
	Email             string       `json:"email,omitempty"`
	NeedsVerification bool         `json:"needsVerification,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(env)
}

// authorized enforces the expired-credentials simulation.
func (s *Server) authorized(w http.ResponseWriter) bool {
	if s.Expired {
		writeJSON(w, http.StatusUnauthorized, envelope{Message: "Not authorized, token failed"})
		return false
	}
	return true
}

func (s *Server) ok(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{Success: true})
}

func (s *Server) authMe(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.MeCalls++
	if !s.authorized(w) {
		return
	}
	if s.User == nil {
		writeJSON(w, http.StatusUnauthorized, envelope{Message: "Not authorized"})
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, User: s.User})
}

func (s *Server) authLogin(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Message: err.Error()})
		return
	}
	if s.NeedVerify {
		writeJSON(w, http.StatusForbidden, envelope{
			Message:           "Please verify your email",
			Email:             body.Email,
			NeedsVerification: true,
		})
		return
	}
	if s.User == nil {
		writeJSON(w, http.StatusUnauthorized, envelope{Message: "Invalid credentials"})
		return
	}
	s.Expired = false
	writeJSON(w, http.StatusOK, envelope{Success: true, User: s.User})
}

func (s *Server) authRegister(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var body struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Message: err.Error()})
		return
	}
	u := &domain.User{ID: s.id("u"), Name: body.Name, Email: body.Email, Role: body.Role}
	s.User = u
	writeJSON(w, http.StatusCreated, envelope{Success: true, User: u})
}

func (s *Server) authLogout(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LogoutCalls++
	if s.FailLogout {
		writeJSON(w, http.StatusInternalServerError, envelope{Message: "logout failed"})
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true})
}

func (s *Server) authRefresh(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.RefreshCalls++
	if !s.RefreshOK {
		writeJSON(w, http.StatusUnauthorized, envelope{Message: "refresh token invalid"})
		return
	}
	s.Expired = false
	writeJSON(w, http.StatusOK, envelope{Success: true})
}

func (s *Server) authVerify(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.NeedVerify = false
	writeJSON(w, http.StatusOK, envelope{Success: true, User: s.User})
}

func (s *Server) listRestaurants(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.RestaurantsCalls++
	if !s.authorized(w) {
		return
	}
	if s.FailRestaurants {
		writeJSON(w, http.StatusInternalServerError, envelope{Message: "boom"})
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: s.Restaurants})
}

func (s *Server) createRestaurant(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authorized(w) {
		return
	}
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Message: err.Error()})
		return
	}
	rest.ID = s.id("r")
	rest.Status = "pending"
	s.Restaurants = append(s.Restaurants, rest)
	writeJSON(w, http.StatusCreated, envelope{Success: true, Data: rest})
}

func (s *Server) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authorized(w) {
		return
	}
	id := mux.Vars(r)["id"]
	for i := range s.Restaurants {
		if s.Restaurants[i].ID != id {
			continue
		}
		raw, _ := io.ReadAll(r.Body)
		var fields map[string]json.RawMessage
		_ = json.Unmarshal(raw, &fields)
		// Merge the partial update over the stored document.
		doc, _ := json.Marshal(s.Restaurants[i])
		var merged map[string]json.RawMessage
		_ = json.Unmarshal(doc, &merged)
		for k, v := range fields {
			merged[k] = v
		}
		out, _ := json.Marshal(merged)
		_ = json.Unmarshal(out, &s.Restaurants[i])
		s.Restaurants[i].ID = id
		writeJSON(w, http.StatusOK, envelope{Success: true, Data: s.Restaurants[i]})
		return
	}
	writeJSON(w, http.StatusNotFound, envelope{Message: "Restaurant not found"})
}

func (s *Server) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authorized(w) {
		return
	}
	id := mux.Vars(r)["id"]
	for i := range s.Restaurants {
		if s.Restaurants[i].ID == id {
			s.Restaurants = append(s.Restaurants[:i], s.Restaurants[i+1:]...)
			writeJSON(w, http.StatusOK, envelope{Success: true})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, envelope{Message: "Restaurant not found"})
}

func (s *Server) submitVerification(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authorized(w) {
		return
	}
	id := mux.Vars(r)["id"]
	for i := range s.Restaurants {
		if s.Restaurants[i].ID == id {
			s.Restaurants[i].Status = "pending"
			writeJSON(w, http.StatusOK, envelope{Success: true, Data: s.Restaurants[i]})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, envelope{Message: "Restaurant not found"})
}

func (s *Server) listMenu(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authorized(w) {
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: s.MenuItems})
}

func (s *Server) createMenuItem(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authorized(w) {
		return
	}
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Message: err.Error()})
		return
	}
	item.ID = s.id("m")
	s.MenuItems = append(s.MenuItems, item)
	writeJSON(w, http.StatusCreated, envelope{Success: true, Data: item})
}

func (s *Server) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authorized(w) {
		return
	}
	id := mux.Vars(r)["id"]
	for i := range s.MenuItems {
		if s.MenuItems[i].ID == id {
			var item domain.MenuItem
			if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
				writeJSON(w, http.StatusBadRequest, envelope{Message: err.Error()})
				return
			}
			item.ID = id
			s.MenuItems[i] = item
			writeJSON(w, http.StatusOK, envelope{Success: true, Data: item})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, envelope{Message: "Menu item not found"})
}

func (s *Server) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authorized(w) {
		return
	}
	id := mux.Vars(r)["id"]
	for i := range s.MenuItems {
		if s.MenuItems[i].ID == id {
			s.MenuItems = append(s.MenuItems[:i], s.MenuItems[i+1:]...)
			writeJSON(w, http.StatusOK, envelope{Success: true})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, envelope{Message: "Menu item not found"})
}

func (s *Server) assignRestaurants(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authorized(w) {
		return
	}
	id := mux.Vars(r)["id"]
	var body struct {
		RestaurantIDs []string `json:"restaurantIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Message: err.Error()})
		return
	}
	for i := range s.MenuItems {
		if s.MenuItems[i].ID == id {
			s.MenuItems[i].Restaurants = body.RestaurantIDs
			writeJSON(w, http.StatusOK, envelope{Success: true, Data: s.MenuItems[i]})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, envelope{Message: "Menu item not found"})
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authorized(w) {
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: s.Categories})
}

func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authorized(w) {
		return
	}
	var cat domain.Category
	if err := json.NewDecoder(r.Body).Decode(&cat); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Message: err.Error()})
		return
	}
	cat.ID = s.id("c")
	s.Categories = append(s.Categories, cat)
	writeJSON(w, http.StatusCreated, envelope{Success: true, Data: cat})
}

func (s *Server) updateCategory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authorized(w) {
		return
	}
	id := mux.Vars(r)["id"]
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			var cat domain.Category
			if err := json.NewDecoder(r.Body).Decode(&cat); err != nil {
				writeJSON(w, http.StatusBadRequest, envelope{Message: err.Error()})
				return
			}
			cat.ID = id
			s.Categories[i] = cat
			writeJSON(w, http.StatusOK, envelope{Success: true, Data: cat})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, envelope{Message: "Category not found"})
}

func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authorized(w) {
		return
	}
	id := mux.Vars(r)["id"]
	// Children block deletion, like the real backend.
	for _, c := range s.Categories {
		if c.Parent != nil && *c.Parent == id {
			writeJSON(w, http.StatusBadRequest, envelope{Message: "Category has subcategories"})
			return
		}
	}
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			s.Categories = append(s.Categories[:i], s.Categories[i+1:]...)
			writeJSON(w, http.StatusOK, envelope{Success: true})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, envelope{Message: "Category not found"})
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authorized(w) {
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: s.Orders})
}

func (s *Server) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authorized(w) {
		return
	}
	id := mux.Vars(r)["id"]
	var body struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Message: err.Error()})
		return
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			s.Orders[i].Status = body.Status
			writeJSON(w, http.StatusOK, envelope{Success: true, Data: s.Orders[i]})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, envelope{Message: "Order not found"})
}

func (s *Server) listReviews(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authorized(w) {
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: s.Reviews})
}

func (s *Server) listTxns(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authorized(w) {
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: s.Txns})
}

func (s *Server) txnStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authorized(w) {
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: s.Stats})
}

func (s *Server) upload(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authorized(w) {
		return
	}
	s.UploadCalls++
	if s.FailUpload {
		writeJSON(w, http.StatusInternalServerError, envelope{Message: "upload failed"})
		return
	}
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Message: "File too large"})
		return
	}
	folder := r.FormValue("folder")
	if folder == "" {
		folder = "general"
	}
	file, handler, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Message: "Error retrieving the file"})
		return
	}
	defer file.Close()

	url := fmt.Sprintf("/uploads/%s/%s_%s", folder, s.id("f"), handler.Filename)
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: map[string]string{"fileUrl": url}})
}

func (s *Server) deleteUpload(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authorized(w) {
		return
	}
	var body struct {
		FileURL string `json:"fileUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{Message: err.Error()})
		return
	}
	s.DeletedFiles = append(s.DeletedFiles, body.FileURL)
	writeJSON(w, http.StatusOK, envelope{Success: true})
}

// id hands out deterministic ids for created fixtures. Must hold s.mu.
func (s *Server) id(prefix string) string {
	s.nextID++
	return prefix + strconv.Itoa(s.nextID)
}
