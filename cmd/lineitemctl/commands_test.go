package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dfp-sync/internal/core/domain"
	"dfp-sync/internal/core/port"
	"dfp-sync/internal/core/port/mocks"
)

const campaignJSON = `{
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

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, svc port.LineItemUseCase, args ...string) (string, error) {
	t.Helper()
	closed := false
	t.Cleanup(func() { assert.True(t, closed || svc == nil, "use case not closed") })

	open := func(context.Context, io.Writer) (port.LineItemUseCase, func(), error) {
		return svc, func() { closed = true }, nil
	}
	root := newRootCmd(open)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestUpsertCmd(t *testing.T) {
	svc := mocks.NewMockLineItemUseCase(t)
	svc.EXPECT().
		UpsertLineItem(mock.Anything, domain.User{ID: 3, Name: "advertiser", Fullname: "t2_3"},
			mock.MatchedBy(func(c domain.Campaign) bool { return c.LinkID == "abc123" })).
		Return(domain.Record{"id": 7, "externalId": "t8_16"}, nil)

	out, err := execute(t, svc, "upsert",
		"--campaign", writeFile(t, "campaign.json", campaignJSON),
		"--user", writeFile(t, "user.json", `{"id": 3, "name": "advertiser", "fullname": "t2_3"}`),
	)

	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 7, "externalId": "t8_16"}`, out)
}

func TestDeactivateCmd(t *testing.T) {
	svc := mocks.NewMockLineItemUseCase(t)
	svc.EXPECT().Deactivate(mock.Anything, mock.Anything).Return(true, nil)

	out, err := execute(t, svc, "deactivate", "--campaign", writeFile(t, "campaign.json", campaignJSON))

	require.NoError(t, err)
	assert.JSONEq(t, `{"changed": true}`, out)
}

func TestAssociateCmd(t *testing.T) {
	svc := mocks.NewMockLineItemUseCase(t)
	svc.EXPECT().
		AssociateWithCreative(mock.Anything, domain.Record{"id": int64(7)}, domain.Record{"id": int64(99)}).
		Return(domain.Record{"lineItemId": 7, "creativeId": 99}, nil)

	out, err := execute(t, svc, "associate", "--lineitem", "7", "--creative", "99")

	require.NoError(t, err)
	assert.JSONEq(t, `{"lineItemId": 7, "creativeId": 99}`, out)
}

func TestCmd_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, nil, "deactivate", "--campaign", filepath.Join(t.TempDir(), "absent.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid ids", func(t *testing.T) {
		_, err := execute(t, nil, "associate", "--lineitem", "0", "--creative", "99")
		assert.Error(t, err)
	})

	t.Run("use case error", func(t *testing.T) {
		svc := mocks.NewMockLineItemUseCase(t)
		svc.EXPECT().Deactivate(mock.Anything, mock.Anything).Return(false, port.ErrRemoteUnavailable)

		_, err := execute(t, svc, "deactivate", "--campaign", writeFile(t, "campaign.json", campaignJSON))
		assert.ErrorIs(t, err, port.ErrRemoteUnavailable)
	})
}
