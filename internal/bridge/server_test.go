package bridge

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"offjournal/internal/adapters/filesystem"
	"offjournal/internal/adapters/sqlite"
	"offjournal/internal/domain"
)

func newTestServer(t *testing.T, withIndex bool) *Server {
	t.Helper()
	dir := t.TempDir()

	var opts []Option
	if withIndex {
		idx := sqlite.NewIndex()
		require.NoError(t, idx.Open(filepath.Join(dir, sqlite.IndexFile)))
		t.Cleanup(func() { idx.Close() })
		opts = append(opts, WithIndex(idx))
	}
	return NewServer(filesystem.NewRepository(dir), filesystem.NewPlannerStore(dir), opts...)
}

func call(t *testing.T, s *Server, command string, payload any) Response {
	t.Helper()
	req, err := NewRequest(command, payload, "req-1")
	require.NoError(t, err)
	resp := s.Handle(context.Background(), req)
	assert.Equal(t, command, resp.Command)
	assert.Equal(t, "req-1", resp.ID)
	return resp
}

func decodeData[T any](t *testing.T, resp Response) T {
	t.Helper()
	require.True(t, resp.OK(), "response failed: %s", resp.Message)
	var v T
	require.NoError(t, json.Unmarshal(resp.Data, &v))
	return v
}

type createData struct {
	Status string              `json:"status"`
	Data   domain.EntrySummary `json:"data"`
}

func TestServer_EntryRoundTrip(t *testing.T) {
	s := newTestServer(t, true)

	created := decodeData[createData](t, call(t, s, CmdEntriesCreate, TitlePayload{Title: "My Trip"}))
	assert.Equal(t, StatusSuccess, created.Status)
	assert.Equal(t, "My Trip", created.Data.Title)
	id := created.Data.ID

	list := decodeData[[]domain.EntrySummary](t, call(t, s, CmdEntriesList, nil))
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)

	content := decodeData[string](t, call(t, s, CmdEntriesGetContent, IDPayload{ID: id}))
	assert.Contains(t, content, "# My Trip")

	updated := decodeData[Result](t, call(t, s, CmdEntriesUpdate, UpdatePayload{ID: id, Content: "so happy at the beach"}))
	assert.Equal(t, StatusSuccess, updated.Status)
	assert.NotEmpty(t, updated.Message)

	found := decodeData[[]domain.EntrySummary](t, call(t, s, CmdEntriesSearch, QueryPayload{Query: "beach"}))
	require.Len(t, found, 1)
	assert.Equal(t, id, found[0].ID)

	mood := decodeData[domain.MoodReport](t, call(t, s, CmdEntriesMood, IDPayload{ID: id}))
	assert.Equal(t, domain.MoodPositive, mood.Mood)

	deleted := decodeData[Result](t, call(t, s, CmdEntriesDelete, IDPayload{ID: id}))
	assert.Equal(t, StatusSuccess, deleted.Status)

	list = decodeData[[]domain.EntrySummary](t, call(t, s, CmdEntriesList, nil))
	assert.Empty(t, list)

	found = decodeData[[]domain.EntrySummary](t, call(t, s, CmdEntriesSearch, QueryPayload{Query: "beach"}))
	assert.Empty(t, found)
}

func TestServer_CreateTitleWithSeparators(t *testing.T) {
	root := t.TempDir()
	dataDir := filepath.Join(root, "journal")
	s := NewServer(filesystem.NewRepository(dataDir), filesystem.NewPlannerStore(dataDir))

	escaping := decodeData[createData](t, call(t, s, CmdEntriesCreate, TitlePayload{Title: "x/../../../escaped"}))
	assert.Equal(t, StatusSuccess, escaping.Status)
	assert.Len(t, escaping.Data.ID, len(domain.IDLayout))
	assert.Equal(t, "x .. .. .. escaped", escaping.Data.Title)
	assert.NoFileExists(t, filepath.Join(root, "escaped.md"))
	assert.FileExists(t, filepath.Join(dataDir, filesystem.EntriesDir, escaping.Data.Filename))

	slashed := decodeData[createData](t, call(t, s, CmdEntriesCreate, TitlePayload{Title: "Work/Life"}))
	assert.Equal(t, "Work Life", slashed.Data.Title)
	assert.FileExists(t, filepath.Join(dataDir, filesystem.EntriesDir, slashed.Data.Filename))
}

func TestServer_PlannerRoundTrip(t *testing.T) {
	s := newTestServer(t, false)

	decodeData[Result](t, call(t, s, CmdPlannerAdd, EventPayload{Date: "2025-08-01", Title: "Holiday"}))
	decodeData[Result](t, call(t, s, CmdPlannerAdd, EventPayload{Date: "2025-07-15", Title: "Dentist"}))

	events := decodeData[[]domain.Event](t, call(t, s, CmdPlannerList, nil))
	require.Len(t, events, 2)
	assert.Equal(t, "Dentist", events[0].Title)
	assert.Equal(t, 2, events[0].ID)

	decodeData[Result](t, call(t, s, CmdPlannerUpdate, EventUpdatePayload{ID: 2, Date: "2025-09-01"}))
	decodeData[Result](t, call(t, s, CmdPlannerDelete, EventIDPayload{ID: 1}))

	events = decodeData[[]domain.Event](t, call(t, s, CmdPlannerList, nil))
	require.Len(t, events, 1)
	assert.Equal(t, domain.Event{ID: 2, Date: "2025-09-01", Title: "Dentist"}, events[0])
}

func TestServer_Errors(t *testing.T) {
	s := newTestServer(t, false)

	tests := []struct {
		name    string
		req     Request
		wantMsg string
	}{
		{
			name:    "missing command",
			req:     Request{ID: "x"},
			wantMsg: "missing command",
		},
		{
			name:    "unknown command",
			req:     Request{Command: "entries:explode", ID: "x"},
			wantMsg: "unknown command: entries:explode",
		},
		{
			name:    "bad payload",
			req:     Request{Command: CmdEntriesGetContent, Payload: json.RawMessage(`[1,2]`), ID: "x"},
			wantMsg: "invalid payload",
		},
		{
			name:    "missing entry",
			req:     Request{Command: CmdEntriesGetContent, Payload: json.RawMessage(`{"id":"19990101000000"}`), ID: "x"},
			wantMsg: "not found",
		},
		{
			name:    "empty planner title",
			req:     Request{Command: CmdPlannerAdd, Payload: json.RawMessage(`{"date":"2025-07-15","title":" "}`), ID: "x"},
			wantMsg: "title is required",
		},
		{
			name:    "search without index",
			req:     Request{Command: CmdEntriesSearch, Payload: json.RawMessage(`{"query":"trip"}`), ID: "x"},
			wantMsg: "index is disabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := s.Handle(context.Background(), tt.req)
			assert.Equal(t, StatusError, resp.Status)
			assert.Equal(t, tt.req.Command, resp.Command)
			assert.Equal(t, "x", resp.ID)
			assert.Contains(t, resp.Message, tt.wantMsg)
		})
	}
}

func TestFamily(t *testing.T) {
	assert.Equal(t, FamilyDiary, Family(CmdEntriesUpdate))
	assert.Equal(t, FamilyPlanner, Family(CmdPlannerAdd))
	assert.Equal(t, "", Family("app:quit"))
}
