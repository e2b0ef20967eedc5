package component

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stub struct{ name, prefix string }

func (s stub) Name() string   { return s.name }
func (s stub) Prefix() string { return s.prefix }
func (s stub) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte(s.name)) })
	return r
}

func TestMount(t *testing.T) {
	r := chi.NewRouter()
	require.NoError(t, Mount(r, stub{"b", "/b"}, stub{"a", "/a"}))

	for _, name := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/"+name+"/", nil))
		assert.Equal(t, name, rec.Body.String())
	}
}

func TestMountRejectsDuplicatePrefix(t *testing.T) {
	err := Mount(chi.NewRouter(), stub{"one", "/x"}, stub{"two", "/x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/x")
}
