package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgtools/dashadm/adapters/dashboard/api"
	"github.com/orgtools/dashadm/domain/model"
)

func newTestExecutor(t *testing.T, handler http.Handler) *api.Executor {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := api.NewClient(api.Config{BaseURL: srv.URL, APIKey: "test-key"})
	require.NoError(t, err)
	return api.NewExecutor(client)
}

func TestOrganizationRepoList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /organizations", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"1","name":"Acme East"},{"id":"2","name":"Acme West"}]`))
	})
	repo := NewOrganizationRepo(newTestExecutor(t, mux))

	orgs, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orgs, 2)
	assert.Equal(t, "1", orgs[0].ID)
	assert.Equal(t, "Acme East", orgs[0].Name)
}

func TestOrganizationRepoListError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /organizations", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":["invalid API key"]}`))
	})
	repo := NewOrganizationRepo(newTestExecutor(t, mux))

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list organizations")
}

func TestAdminRepoCRUD(t *testing.T) {
	admins := []*model.Admin{
		{ID: "a1", Name: "Miles", Email: "miles@example.com", OrgAccess: model.OrgAccessFull},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /organizations/org1/admins", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(admins)
	})
	mux.HandleFunc("POST /organizations/org1/admins", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name      string `json:"name"`
			Email     string `json:"email"`
			OrgAccess string `json:"orgAccess"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(model.Admin{
			ID: "a2", Name: req.Name, Email: req.Email, OrgAccess: model.OrgAccess(req.OrgAccess),
		})
	})
	mux.HandleFunc("PUT /organizations/org1/admins/a1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(model.Admin{
			ID: "a1", Name: "Miles", Email: "miles@example.com", OrgAccess: model.OrgAccessReadOnly,
		})
	})
	var deleted string
	mux.HandleFunc("DELETE /organizations/org1/admins/a1", func(w http.ResponseWriter, r *http.Request) {
		deleted = "a1"
		w.WriteHeader(http.StatusNoContent)
	})

	repo := NewAdminRepo(newTestExecutor(t, mux))
	ctx := context.Background()

	got, err := repo.List(ctx, "org1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "miles@example.com", got[0].Email)

	created, err := repo.Create(ctx, "org1", &model.Admin{
		Name: "Joan", Email: "joan@example.com", OrgAccess: model.OrgAccessReadOnly,
	})
	require.NoError(t, err)
	assert.Equal(t, "a2", created.ID)
	assert.Equal(t, model.OrgAccessReadOnly, created.OrgAccess)

	updated, err := repo.Update(ctx, "org1", &model.Admin{
		ID: "a1", Name: "Miles", Email: "miles@example.com", OrgAccess: model.OrgAccessReadOnly,
	})
	require.NoError(t, err)
	assert.Equal(t, model.OrgAccessReadOnly, updated.OrgAccess)

	require.NoError(t, repo.Delete(ctx, "org1", "a1"))
	assert.Equal(t, "a1", deleted)
}

func TestAdminRepoUpdateRequiresID(t *testing.T) {
	repo := NewAdminRepo(newTestExecutor(t, http.NewServeMux()))
	_, err := repo.Update(context.Background(), "org1", &model.Admin{Email: "x@y.com"})
	assert.Error(t, err)
}
