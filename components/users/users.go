// components/users/users.go
//
// Users component – list, search, fetch, and create demo users.
//
// Routes (relative to /api/v1/users)
// ----------------------------------
//
//	GET  /         ?page&limit   paginated list      (PaginationSchema)
//	GET  /search   ?q&category   substring search    (SearchSchema)
//	GET  /{id}                   one user
//	POST /                       create, 201         (UserSchema)
//
// Query and body checks run as route middleware, so the handlers below only
// see input that already passed its schema.
package users

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/yanizio/apidemo/internal/component"
	"github.com/yanizio/apidemo/internal/middleware"
	"github.com/yanizio/apidemo/internal/response"
	"github.com/yanizio/apidemo/internal/validation"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

var _ component.Component = (*Comp)(nil)

// Comp serves the users API from a Store.
type Comp struct {
	store *Store
	log   *zap.SugaredLogger
}

// New returns the users component.
func New(store *Store, log *zap.SugaredLogger) *Comp {
	return &Comp{store: store, log: log}
}

func (c *Comp) Name() string   { return "users" }
func (c *Comp) Prefix() string { return "/api/v1/users" }

func (c *Comp) Routes() chi.Router {
	r := chi.NewRouter()
	r.With(middleware.ValidateQuery(validation.PaginationSchema, c.log)).Get("/", c.list)
	r.With(middleware.ValidateQuery(validation.SearchSchema, c.log)).Get("/search", c.search)
	r.Get("/{id}", c.get)
	r.With(
		middleware.JSONBody(c.log),
		middleware.ValidateBody(validation.UserSchema, c.log),
	).Post("/", c.create)
	return r
}

// Pagination describes the page returned by list.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func (c *Comp) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := intParam(q, "page", defaultPage)
	limit := intParam(q, "limit", defaultLimit)

	users, total := c.store.List(page, limit)
	_ = response.WriteJSON(w, http.StatusOK, response.Envelope{
		Success: true,
		Data:    users,
		Message: "Users retrieved successfully",
		Meta: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + limit - 1) / limit,
		},
	})
}

func (c *Comp) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query, category := q.Get("q"), q.Get("category")

	found := c.store.Search(query, category)
	_ = response.WriteJSON(w, http.StatusOK, response.Envelope{
		Success: true,
		Data:    found,
		Message: fmt.Sprintf("Found %d users", len(found)),
		Meta:    map[string]string{"query": query, "category": category},
	})
}

func (c *Comp) get(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		_ = response.Fail(w, http.StatusBadRequest, response.CodeInvalidID, "Invalid ID format")
		return
	}
	u, ok := c.store.Get(id)
	if !ok {
		_ = response.Fail(w, http.StatusNotFound, response.CodeNotFound, fmt.Sprintf("User %d not found", id))
		return
	}
	_ = response.WriteJSON(w, http.StatusOK, response.Envelope{Success: true, Data: u})
}

func (c *Comp) create(w http.ResponseWriter, r *http.Request) {
	body := middleware.BodyFrom(r.Context())

	in := NewUser{}
	in.Name, _ = body["name"].(string)
	in.Email, _ = body["email"].(string)
	if v := body["age"]; v != nil {
		age := int(math.Trunc(validation.ToNumber(v)))
		in.Age = &age
	}

	u, err := c.store.Create(in)
	if errors.Is(err, ErrEmailTaken) {
		_ = response.Fail(w, http.StatusConflict, response.CodeConflict, "Email already registered")
		return
	}
	if err != nil {
		c.log.Errorw("create user", "error", err, "request_id", middleware.RequestIDFrom(r.Context()))
		_ = response.Fail(w, http.StatusInternalServerError, response.CodeInternal, "Internal Server Error")
		return
	}

	c.log.Infow("user created", "id", u.ID, "request_id", middleware.RequestIDFrom(r.Context()))
	_ = response.WriteJSON(w, http.StatusCreated, response.Envelope{
		Success: true,
		Data:    u,
		Message: "User created successfully",
	})
}

// intParam reads a numeric query parameter that the route schema already
// checked, falling back to def when it is absent.
func intParam(q url.Values, name string, def int) int {
	s := q.Get(name)
	if s == "" {
		return def
	}
	n := validation.ToNumber(s)
	if math.IsNaN(n) || n < 1 {
		return def
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}
