package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/phrazzld/precise-api/internal/domain"
	"github.com/phrazzld/precise-api/internal/mocks"
	"github.com/phrazzld/precise-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateHandler(t *testing.T) {
	t.Parallel()

	var updated *domain.State
	svc := &mocks.MockStateService{
		ListFn: func(ctx context.Context) ([]*domain.State, error) {
			return []*domain.State{{ID: 3, Code: "JKT", Name: "Jakarta", CountryID: 1, CountryName: "Indonesia"}}, nil
		},
		CreateFn: func(ctx context.Context, state *domain.State) (int64, error) {
			if state.CountryID != 1 {
				return 0, domain.NewValidationError("country_id", "does not exist", domain.ErrValidation)
			}
			return 3, nil
		},
		UpdateFn: func(ctx context.Context, state *domain.State, reason domain.AuditReason) error {
			updated = state
			return nil
		},
		GetFn: func(ctx context.Context, id int64) (*domain.State, error) {
			return nil, store.ErrStateNotFound
		},
	}
	h := mount("/master/states", NewStateHandler(svc, nil))

	t.Run("list includes country name", func(t *testing.T) {
		rec, env := do(t, h, http.MethodGet, "/master/states", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var got []StateResponse
		require.NoError(t, json.Unmarshal(env.Data, &got))
		require.Len(t, got, 1)
		assert.Equal(t, "Indonesia", got[0].CountryName)
		assert.Equal(t, int64(1), got[0].CountryID)
	})

	t.Run("create with unknown country", func(t *testing.T) {
		rec, env := do(t, h, http.MethodPost, "/master/states",
			`{"state_code":"JKT","state_name":"Jakarta","country_id":9,"created_by":"admin"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "country_id does not exist", env.Message)
	})

	t.Run("create without country", func(t *testing.T) {
		rec, env := do(t, h, http.MethodPost, "/master/states",
			`{"state_code":"JKT","state_name":"Jakarta","created_by":"admin"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "country_id is required", env.Message)
	})

	t.Run("create", func(t *testing.T) {
		rec, env := do(t, h, http.MethodPost, "/master/states",
			`{"state_code":"JKT","state_name":"Jakarta","country_id":1,"created_by":"admin"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var got StateResponse
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, int64(3), got.StateID)
		assert.Equal(t, "JKT", got.StateCode)
		assert.Equal(t, int64(1), got.CountryID)
	})

	t.Run("create long code", func(t *testing.T) {
		rec, env := do(t, h, http.MethodPost, "/master/states",
			`{"state_code":"JAKARTARAYA","state_name":"Jakarta","country_id":1,"created_by":"admin"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "state_code must be at most 10 characters", env.Message)
	})

	t.Run("update carries country", func(t *testing.T) {
		rec, _ := do(t, h, http.MethodPut, "/master/states/3",
			`{"state_code":"JKT","state_name":"DKI Jakarta","country_id":1,"updated_by":"editor","reason":"rename"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, updated)
		assert.Equal(t, int64(3), updated.ID)
		assert.Equal(t, int64(1), updated.CountryID)
		assert.Equal(t, "DKI Jakarta", updated.Name)
	})

	t.Run("get missing", func(t *testing.T) {
		rec, env := do(t, h, http.MethodGet, "/master/states/3", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Data not found", env.Message)
	})
}
