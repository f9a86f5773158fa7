package tui

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geodatos/geoforms/app"
	"github.com/geodatos/geoforms/client"
	"github.com/geodatos/geoforms/config"
	"github.com/geodatos/geoforms/model"
	"github.com/geodatos/geoforms/session"
	"github.com/geodatos/geoforms/viewer"
)

func TestResponsesPageSizeDrivesSkipAndLimit(t *testing.T) {
	var query map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = map[string]string{
			"skip":  r.URL.Query().Get("skip"),
			"limit": r.URL.Query().Get("limit"),
		}
		_ = json.NewEncoder(w).Encode([]model.Submission{})
	}))
	defer srv.Close()

	a := app.App{
		Client: client.New(srv.URL, session.New("tok123")),
		Config: config.Config{PageSize: 50},
	}
	form := model.FormDocument{ID: 1, Title: "Encuesta", SubmissionCount: 120}
	m := newResponsesModel(a, form)
	m.page = 2

	msg := m.load()()
	_, ok := msg.(submissionsLoadedMsg)
	require.True(t, ok)

	// page 2 at size 50 starts right after the 50 records of page 1
	assert.Equal(t, "50", query["skip"])
	assert.Equal(t, "50", query["limit"])
	assert.Equal(t, 3, viewer.TotalPages(form, 0, m.pageSize))
}

func TestResponsesPageSizeFallsBackToDefault(t *testing.T) {
	m := newResponsesModel(app.App{}, model.FormDocument{ID: 1})
	assert.Equal(t, viewer.PageSize, m.pageSize)
}
