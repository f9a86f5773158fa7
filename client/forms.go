package client

import (
	"context"
	"net/http"

	"github.com/geodatos/geoforms/httpx"
	"github.com/geodatos/geoforms/model"
	"github.com/geodatos/geoforms/templates"
)

// ListForms fetches the caller's forms.
func (c *Client) ListForms(ctx context.Context) ([]model.FormDocument, error) {
	req, err := httpx.NewJSONRequest(ctx, http.MethodGet, c.url("/forms"), nil, c.token())
	if err != nil {
		return nil, err
	}

	var forms []model.FormDocument
	if err := httpx.DoJSON(c.http, req, "client.list_forms", &forms); err != nil {
		return nil, err
	}
	return forms, nil
}

// GetForm fetches one form with its questions.
func (c *Client) GetForm(ctx context.Context, formID int64) (model.FormDocument, error) {
	req, err := httpx.NewJSONRequest(ctx, http.MethodGet, c.url("/forms/%d", formID), nil, c.token())
	if err != nil {
		return model.FormDocument{}, err
	}

	var form model.FormDocument
	if err := httpx.DoJSON(c.http, req, "client.get_form", &form); err != nil {
		return model.FormDocument{}, err
	}
	return form, nil
}

// CreateForm persists a new document and returns it with the
// server-assigned id.
func (c *Client) CreateForm(ctx context.Context, doc model.FormDocument) (model.FormDocument, error) {
	req, err := httpx.NewJSONRequest(ctx, http.MethodPost, c.url("/forms"), doc, c.token())
	if err != nil {
		return model.FormDocument{}, err
	}

	var persisted model.FormDocument
	if err := httpx.DoJSON(c.http, req, "client.create_form", &persisted); err != nil {
		return model.FormDocument{}, err
	}
	return persisted, nil
}

// UpdateForm replaces a persisted document.
func (c *Client) UpdateForm(ctx context.Context, doc model.FormDocument) (model.FormDocument, error) {
	req, err := httpx.NewJSONRequest(ctx, http.MethodPut, c.url("/forms/%d", doc.ID), doc, c.token())
	if err != nil {
		return model.FormDocument{}, err
	}

	var persisted model.FormDocument
	if err := httpx.DoJSON(c.http, req, "client.update_form", &persisted); err != nil {
		return model.FormDocument{}, err
	}
	return persisted, nil
}

// ListTemplates fetches the backend's template catalog. Callers fall back
// to the built-in catalog when this fails.
func (c *Client) ListTemplates(ctx context.Context) ([]templates.Template, error) {
	req, err := httpx.NewJSONRequest(ctx, http.MethodGet, c.url("/templates"), nil, c.token())
	if err != nil {
		return nil, err
	}

	var tpls []templates.Template
	if err := httpx.DoJSON(c.http, req, "client.list_templates", &tpls); err != nil {
		return nil, err
	}
	return tpls, nil
}
