package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/geodatos/geoforms/httpx"
	"github.com/geodatos/geoforms/model"
	"github.com/geodatos/geoforms/viewer"
)

// ListParams selects a window of a form's submissions.
type ListParams struct {
	Skip  int
	Limit int
	Date  viewer.DateFilter
}

// ListSubmissions fetches one page of submissions for a form.
func (c *Client) ListSubmissions(ctx context.Context, formID int64, p ListParams) ([]model.Submission, error) {
	params := url.Values{}
	params.Set("skip", strconv.Itoa(p.Skip))
	params.Set("limit", strconv.Itoa(p.Limit))
	if p.Date.From != "" {
		params.Set("date_from", p.Date.From)
	}
	if p.Date.To != "" {
		params.Set("date_to", p.Date.To)
	}

	req, err := httpx.NewJSONRequest(ctx, http.MethodGet,
		c.url("/submissions/forms/%d", formID)+"?"+params.Encode(), nil, c.token())
	if err != nil {
		return nil, err
	}

	var subs []model.Submission
	if err := httpx.DoJSON(c.http, req, "client.fetch_submissions", &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// DeleteSubmission removes one submission.
func (c *Client) DeleteSubmission(ctx context.Context, submissionID int64) error {
	req, err := httpx.NewJSONRequest(ctx, http.MethodDelete,
		c.url("/submissions/%d", submissionID), nil, c.token())
	if err != nil {
		return err
	}
	return httpx.DoJSON(c.http, req, "client.delete_submission", nil)
}

// ExportSubmissions asks the backend to produce an export file and returns
// the blob; the export format itself is entirely the backend's business.
func (c *Client) ExportSubmissions(ctx context.Context, formID int64, export viewer.ExportRequest) ([]byte, error) {
	req, err := httpx.NewJSONRequest(ctx, http.MethodPost,
		c.url("/submissions/forms/%d/export", formID), export, c.token())
	if err != nil {
		return nil, err
	}
	return httpx.DoBlob(c.http, req, "client.export_submissions")
}
