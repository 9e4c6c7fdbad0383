package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tourcrm/internal/database"
	"tourcrm/internal/domain"
	"tourcrm/internal/middleware"
	"tourcrm/internal/modules/auth"
	"tourcrm/internal/modules/booking"
	"tourcrm/internal/modules/category"
	"tourcrm/internal/modules/customer"
	"tourcrm/internal/modules/dashboard"
	"tourcrm/internal/modules/events"
	"tourcrm/internal/modules/lead"
	"tourcrm/internal/modules/tour"
	"tourcrm/internal/modules/tourdate"
	"tourcrm/internal/modules/user"
	jwtsvc "tourcrm/internal/pkg/jwt"
	"tourcrm/internal/repository"
)

type testSuite struct {
	router *gin.Engine
	db     *gorm.DB
	jwt    *jwtsvc.Service
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *errorDetail    `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func setupSuite(t *testing.T) *testSuite {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	tourRepo := repository.NewTourRepository(db)
	tourDateRepo := repository.NewTourDateRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	leadRepo := repository.NewLeadRepository(db)

	j := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)
	hub := events.NewHub()

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	categoryHandler := category.NewHandler(category.NewService(categoryRepo))
	tourHandler := tour.NewHandler(tour.NewService(tourRepo, tourDateRepo))
	tourDateHandler := tourdate.NewHandler(tourdate.NewService(tourDateRepo))

	customerService := customer.NewService(customerRepo, leadRepo, bookingRepo)
	customerHandler := customer.NewHandler(customerService)

	bookingService := booking.NewService(bookingRepo, tourDateRepo, customerService, hub)
	bookingHandler := booking.NewHandler(bookingService)

	leadHandler := lead.NewHandler(lead.NewService(leadRepo, customerService, bookingService))
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(bookingRepo, tourRepo, leadRepo, tourDateRepo))
	userHandler := user.NewHandler(user.NewService(userRepo))

	r := gin.New()
	v1 := r.Group("/api/v1")
	authHandler.RegisterRoutes(v1)

	protected := v1.Group("/")
	protected.Use(middleware.Auth(j))
	categoryHandler.RegisterRoutes(protected)
	tourHandler.RegisterRoutes(protected)
	tourDateHandler.RegisterRoutes(protected)
	customerHandler.RegisterRoutes(protected)
	bookingHandler.RegisterRoutes(protected)
	leadHandler.RegisterRoutes(protected)
	dashboardHandler.RegisterRoutes(protected)
	userHandler.RegisterRoutes(protected)

	return &testSuite{router: r, db: db, jwt: j}
}

func (s *testSuite) request(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	}
	return w, env
}

func (s *testSuite) demoToken(t *testing.T, role domain.Role) string {
	t.Helper()

	w, env := s.request(t, "POST", "/api/v1/auth/demo", "", gin.H{"role": role})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestFullBookingFlow(t *testing.T) {
	s := setupSuite(t)
	admin := s.demoToken(t, domain.RoleAdmin)

	// category
	w, env := s.request(t, "POST", "/api/v1/categories", admin, gin.H{
		"title": "Adventure", "slug": "adventure", "icon": "🏔️", "color": "#FF6B6B",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var cat domain.Category
	require.NoError(t, json.Unmarshal(env.Data, &cat))

	// tour, created DRAFT
	w, env = s.request(t, "POST", "/api/v1/tours", admin, gin.H{
		"title": "Mountain Trek Adventure", "slug": "mountain-trek",
		"type": "Group", "duration": 5, "difficulty": "Hard",
		"basePrice": 1200, "categoryId": cat.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var tr domain.Tour
	require.NoError(t, json.Unmarshal(env.Data, &tr))
	assert.Equal(t, domain.TourDraft, tr.Status)

	// publish
	w, _ = s.request(t, "PATCH", fmt.Sprintf("/api/v1/tours/%d/publish", tr.ID), admin, gin.H{"status": "PUBLISHED"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// date
	w, env = s.request(t, "POST", "/api/v1/dates", admin, gin.H{
		"tourId": tr.ID, "date": time.Now().AddDate(0, 0, 14).Format(time.RFC3339), "maxGroupSize": 12,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var td domain.TourDate
	require.NoError(t, json.Unmarshal(env.Data, &td))

	// booking for 2 people freezes unitPrice*people
	w, env = s.request(t, "POST", "/api/v1/bookings", admin, gin.H{
		"tourDateId": td.ID,
		"customer":   gin.H{"fullName": "John Smith", "phone": "+1-555-0101"},
		"people":     2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var bk domain.Booking
	require.NoError(t, json.Unmarshal(env.Data, &bk))
	assert.Equal(t, int64(2400), bk.TotalPrice)
	assert.Equal(t, domain.BookingNew, bk.Status)

	// same phone reuses the customer
	w, env = s.request(t, "POST", "/api/v1/bookings", admin, gin.H{
		"tourDateId": td.ID,
		"customer":   gin.H{"fullName": "J. Smith", "phone": "+1-555-0101"},
		"people":     1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var bk2 domain.Booking
	require.NoError(t, json.Unmarshal(env.Data, &bk2))
	assert.Equal(t, bk.CustomerID, bk2.CustomerID)

	// mark paid
	w, env = s.request(t, "PATCH", fmt.Sprintf("/api/v1/bookings/%d/status", bk.ID), admin, gin.H{"status": "PAID"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, &bk))
	assert.Equal(t, domain.BookingPaid, bk.Status)

	// dashboard reflects the paid booking
	w, env = s.request(t, "GET", "/api/v1/dashboard/stats?range=7d", admin, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var stats dashboard.Stats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, int64(2400), stats.WeeklyRevenue)
	assert.Equal(t, 2, stats.OrdersToday)
	assert.Len(t, stats.BookingsOverTime, 7)
	require.Len(t, stats.UpcomingTours, 1)
	assert.Equal(t, 2, stats.UpcomingTours[0].BookedCount)
}

func TestLeadConversion(t *testing.T) {
	s := setupSuite(t)
	admin := s.demoToken(t, domain.RoleAdmin)

	// setup: category, published tour, date with override
	_, env := s.request(t, "POST", "/api/v1/categories", admin, gin.H{"title": "Nature", "slug": "nature"})
	var cat domain.Category
	require.NoError(t, json.Unmarshal(env.Data, &cat))

	_, env = s.request(t, "POST", "/api/v1/tours", admin, gin.H{
		"title": "Rainforest Expedition", "slug": "rainforest-expedition",
		"type": "Private", "duration": 7, "difficulty": "Medium",
		"basePrice": 2100, "categoryId": cat.ID,
	})
	var tr domain.Tour
	require.NoError(t, json.Unmarshal(env.Data, &tr))

	_, env = s.request(t, "POST", "/api/v1/dates", admin, gin.H{
		"tourId": tr.ID, "date": time.Now().AddDate(0, 0, 21).Format(time.RFC3339),
		"maxGroupSize": 8, "priceOverride": 2000,
	})
	var td domain.TourDate
	require.NoError(t, json.Unmarshal(env.Data, &td))

	w, env := s.request(t, "POST", "/api/v1/leads", admin, gin.H{
		"name": "Sarah Johnson", "phone": "+1-555-0102", "email": "sarah@email.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var ld domain.Lead
	require.NoError(t, json.Unmarshal(env.Data, &ld))
	assert.Equal(t, domain.LeadOpen, ld.Status)

	// convert uses the override price and closes the lead
	w, env = s.request(t, "POST", fmt.Sprintf("/api/v1/leads/%d/convert-to-booking", ld.ID), admin, gin.H{
		"tourDateId": td.ID, "people": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var result struct {
		Booking   domain.Booking `json:"booking"`
		BookingID int64          `json:"bookingId"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, result.Booking.ID, result.BookingID)
	assert.Equal(t, int64(4000), result.Booking.TotalPrice)

	w, env = s.request(t, "GET", fmt.Sprintf("/api/v1/leads/%d", ld.ID), admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &ld))
	assert.Equal(t, domain.LeadClosed, ld.Status)

	// the converted customer carries the lead's identity
	w, env = s.request(t, "GET", "/api/v1/customers?q=sarah", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var customers []domain.Customer
	require.NoError(t, json.Unmarshal(env.Data, &customers))
	require.Len(t, customers, 1)
	assert.Equal(t, "Sarah Johnson", customers[0].FullName)
	assert.Equal(t, "sarah@email.com", customers[0].Email)
}

func TestRoleGates(t *testing.T) {
	s := setupSuite(t)
	manager := s.demoToken(t, domain.RoleManager)

	// managers cannot touch user administration
	w, env := s.request(t, "GET", "/api/v1/users", manager, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	// managers cannot create categories
	w, env = s.request(t, "POST", "/api/v1/categories", manager, gin.H{"title": "Beach", "slug": "beach"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// but they can manage tours
	admin := s.demoToken(t, domain.RoleAdmin)
	_, env = s.request(t, "POST", "/api/v1/categories", admin, gin.H{"title": "Beach", "slug": "beach"})
	var cat domain.Category
	require.NoError(t, json.Unmarshal(env.Data, &cat))

	w, _ = s.request(t, "POST", "/api/v1/tours", manager, gin.H{
		"title": "Island Hopping Paradise", "slug": "island-hopping",
		"type": "Group", "duration": 4, "difficulty": "Easy",
		"basePrice": 890, "categoryId": cat.ID,
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// no token at all
	w, env = s.request(t, "GET", "/api/v1/tours", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestLeadAssignAndUnassign(t *testing.T) {
	s := setupSuite(t)
	admin := s.demoToken(t, domain.RoleAdmin)

	_, env := s.request(t, "GET", "/api/v1/users", admin, nil)
	var users []domain.User
	require.NoError(t, json.Unmarshal(env.Data, &users))
	require.NotEmpty(t, users)
	assignee := users[0].ID

	w, env := s.request(t, "POST", "/api/v1/leads", admin, gin.H{
		"name": "Walk-in", "phone": "+1-555-0177",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var ld domain.Lead
	require.NoError(t, json.Unmarshal(env.Data, &ld))

	w, env = s.request(t, "PATCH", fmt.Sprintf("/api/v1/leads/%d", ld.ID), admin, gin.H{"assignedTo": assignee})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, &ld))
	require.NotNil(t, ld.AssignedTo)
	assert.Equal(t, assignee, *ld.AssignedTo)

	// explicit null clears the assignee
	w, env = s.request(t, "PATCH", fmt.Sprintf("/api/v1/leads/%d", ld.ID), admin, gin.H{"assignedTo": nil})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	ld = domain.Lead{}
	require.NoError(t, json.Unmarshal(env.Data, &ld))
	assert.Nil(t, ld.AssignedTo)

	// an omitted field leaves the assignee alone
	w, env = s.request(t, "PATCH", fmt.Sprintf("/api/v1/leads/%d", ld.ID), admin, gin.H{"assignedTo": assignee})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w, env = s.request(t, "PATCH", fmt.Sprintf("/api/v1/leads/%d", ld.ID), admin, gin.H{"message": "left a voicemail"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	ld = domain.Lead{}
	require.NoError(t, json.Unmarshal(env.Data, &ld))
	require.NotNil(t, ld.AssignedTo)
	assert.Equal(t, assignee, *ld.AssignedTo)
}

func TestNegativePriceRejected(t *testing.T) {
	s := setupSuite(t)
	admin := s.demoToken(t, domain.RoleAdmin)

	_, env := s.request(t, "POST", "/api/v1/categories", admin, gin.H{"title": "Desert", "slug": "desert"})
	var cat domain.Category
	require.NoError(t, json.Unmarshal(env.Data, &cat))

	_, env = s.request(t, "POST", "/api/v1/tours", admin, gin.H{
		"title": "Desert Safari", "slug": "desert-safari",
		"type": "Group", "duration": 2, "difficulty": "Easy",
		"basePrice": 650, "categoryId": cat.ID,
	})
	var tr domain.Tour
	require.NoError(t, json.Unmarshal(env.Data, &tr))

	w, env := s.request(t, "PATCH", fmt.Sprintf("/api/v1/tours/%d", tr.ID), admin, gin.H{"basePrice": -100})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

	_, env = s.request(t, "POST", "/api/v1/dates", admin, gin.H{
		"tourId": tr.ID, "date": time.Now().AddDate(0, 0, 10).Format(time.RFC3339), "maxGroupSize": 6,
	})
	var td domain.TourDate
	require.NoError(t, json.Unmarshal(env.Data, &td))

	w, env = s.request(t, "PUT", fmt.Sprintf("/api/v1/dates/%d", td.ID), admin, gin.H{
		"date": time.Now().AddDate(0, 0, 10).Format(time.RFC3339), "maxGroupSize": 6, "priceOverride": -1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestConstraintErrors(t *testing.T) {
	s := setupSuite(t)
	admin := s.demoToken(t, domain.RoleAdmin)

	w, env := s.request(t, "POST", "/api/v1/categories", admin, gin.H{"title": "Cultural", "slug": "cultural"})
	require.Equal(t, http.StatusCreated, w.Code)
	var cat domain.Category
	require.NoError(t, json.Unmarshal(env.Data, &cat))

	// duplicate slug
	w, env = s.request(t, "POST", "/api/v1/categories", admin, gin.H{"title": "Cultural Again", "slug": "cultural"})
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DUPLICATE_ERROR", env.Error.Code)

	// deleting a category with tours trips the foreign key
	_, env = s.request(t, "POST", "/api/v1/tours", admin, gin.H{
		"title": "Cultural Heritage Tour", "slug": "cultural-heritage",
		"type": "Group", "duration": 3, "difficulty": "Easy",
		"basePrice": 450, "categoryId": cat.ID,
	})
	var tr domain.Tour
	require.NoError(t, json.Unmarshal(env.Data, &tr))

	w, env = s.request(t, "DELETE", fmt.Sprintf("/api/v1/categories/%d", cat.ID), admin, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CONFLICT", env.Error.Code)

	// unknown id
	w, env = s.request(t, "GET", "/api/v1/tours/9999", admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}
