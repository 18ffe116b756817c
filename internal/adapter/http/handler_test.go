package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dfp-sync/internal/core/domain"
	"dfp-sync/internal/core/port"
	"dfp-sync/internal/core/port/mocks"
)

const campaignBody = `{
	"id": 42,
	"fullname": "t8_16",
	"link_id": "abc123",
	"start_date": "2024-01-01T00:00:00Z",
	"end_date": "2024-01-31T00:00:00Z",
	"priority": "standard",
	"platform": "mobile",
	"cpm": 500,
	"impressions": 100000
}`

const upsertBody = `{"user": {"id": 3, "name": "advertiser", "fullname": "t2_3"}, "campaign": ` + campaignBody + `}`

func newTestHandler(t *testing.T) (*Handler, *mocks.MockLineItemUseCase) {
	t.Helper()
	svc := mocks.NewMockLineItemUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, logger), svc
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleUpsert_OK(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.EXPECT().
		UpsertLineItem(mock.Anything, domain.User{ID: 3, Name: "advertiser", Fullname: "t2_3"}, mock.AnythingOfType("domain.Campaign")).
		RunAndReturn(func(_ context.Context, _ domain.User, c domain.Campaign) (domain.Record, error) {
			assert.Equal(t, "t8_16", c.Fullname)
			assert.Equal(t, domain.PriorityMedium, c.Priority)
			assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), c.EndDate.UTC())
			return domain.Record{"id": 7, "externalId": "t8_16"}, nil
		})

	rec := serve(h, http.MethodPost, "/api/v1/lineitems/upsert", upsertBody)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id": 7, "externalId": "t8_16"}`, rec.Body.String())
}

func TestHandleUpsert_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"user":`},
		{name: "unknown priority", body: strings.Replace(upsertBody, `"standard"`, `"urgent"`, 1)},
		{name: "missing fullname", body: strings.Replace(upsertBody, `"fullname": "t8_16",`, ``, 1)},
		{name: "end before start", body: strings.Replace(upsertBody, `2024-01-31`, `2023-12-01`, 1)},
		{name: "missing user", body: strings.Replace(upsertBody, `"fullname": "t2_3"`, `"fullname": ""`, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rec := serve(h, http.MethodPost, "/api/v1/lineitems/upsert", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleUpsert_ErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "archived",
			err:    &domain.ArchivedLineItemError{LineItemID: 7, CampaignID: 42},
			status: http.StatusConflict,
			body:   "cannot update archived lineitem (lid: 7, cid: 42)",
		},
		{
			name:   "usage",
			err:    domain.ErrMissingOrderOrLineItem,
			status: http.StatusBadRequest,
			body:   "must supply order or existing lineitem",
		},
		{
			name:   "remote rate limited",
			err:    fmt.Errorf("%w: slow down", port.ErrRemoteRateLimited),
			status: http.StatusBadGateway,
			body:   "ad server error",
		},
		{
			name:   "remote unavailable",
			err:    port.ErrRemoteUnavailable,
			status: http.StatusBadGateway,
			body:   "ad server error",
		},
		{
			name:   "unexpected",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			body:   "internal error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := newTestHandler(t)
			svc.EXPECT().UpsertLineItem(mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(h, http.MethodPost, "/api/v1/lineitems/upsert", upsertBody)

			assert.Equal(t, tt.status, rec.Code)
			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.body, resp.Error)
		})
	}
}

func TestHandleAssociate(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().
		AssociateWithCreative(mock.Anything, domain.Record{"id": int64(7)}, domain.Record{"id": int64(99)}).
		Return(domain.Record{"lineItemId": 7, "creativeId": 99, "status": "ACTIVE"}, nil)

	rec := serve(h, http.MethodPost, "/api/v1/lineitems/7/creatives", `{"creative_id": 99}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"lineItemId": 7, "creativeId": 99, "status": "ACTIVE"}`, rec.Body.String())
}

func TestHandleAssociate_BadRequests(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodPost, "/api/v1/lineitems/abc/creatives", `{"creative_id": 99}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(h, http.MethodPost, "/api/v1/lineitems/7/creatives", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDeactivate(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().
		Deactivate(mock.Anything, mock.MatchedBy(func(c domain.Campaign) bool { return c.Fullname == "t8_16" })).
		Return(false, nil)

	rec := serve(h, http.MethodPost, "/api/v1/campaigns/deactivate", `{"campaign": `+campaignBody+`}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"changed": false}`, rec.Body.String())
}

func TestHandleDeactivate_RemoteError(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().Deactivate(mock.Anything, mock.Anything).Return(false, port.ErrRemoteAuthFailed)

	rec := serve(h, http.MethodPost, "/api/v1/campaigns/deactivate",
		`{"campaign": {"fullname": "t8_16", "link_id": "abc123", "start_date": "2024-01-01T00:00:00Z", "end_date": "2024-01-31T00:00:00Z", "priority": "house"}}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleListSyncs(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().ListSyncs(mock.Anything, "t8_16", 10).Return([]domain.SyncEvent{
		{CampaignID: 42, CampaignFullname: "t8_16", LineItemID: 7, Action: domain.SyncActionUpdated, Changed: true},
	}, nil)

	rec := serve(h, http.MethodGet, "/api/v1/campaigns/t8_16/syncs?limit=10", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var events []domain.SyncEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, domain.SyncActionUpdated, events[0].Action)
	assert.Equal(t, int64(7), events[0].LineItemID)
}

func TestHandleListSyncs_EmptyAndInvalid(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().ListSyncs(mock.Anything, "t8_16", 0).Return(nil, nil)

	rec := serve(h, http.MethodGet, "/api/v1/campaigns/t8_16/syncs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = serve(h, http.MethodGet, "/api/v1/campaigns/t8_16/syncs?limit=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
