package sdk

import (
	"github.com/convox/stdsdk"
	"github.com/openkpi/portal/pkg/structs"
)

func (c *Client) CatalogGet() (*structs.Summary, error) {
	var v structs.Summary

	if err := c.Get("/api/catalog", stdsdk.RequestOptions{}, &v); err != nil {
		return nil, err
	}

	return &v, nil
}

func (c *Client) Health() error {
	var v struct {
		OK bool   `json:"ok"`
		Ts string `json:"ts"`
	}

	return c.Get("/api/health", stdsdk.RequestOptions{}, &v)
}

func (c *Client) IngestionGet() (*structs.Summary, error) {
	var v structs.Summary

	if err := c.Get("/api/ingestion", stdsdk.RequestOptions{}, &v); err != nil {
		return nil, err
	}

	return &v, nil
}

func (c *Client) PlatformGet() (*structs.Platform, error) {
	var v structs.Platform

	if err := c.Get("/api/status", stdsdk.RequestOptions{}, &v); err != nil {
		return nil, err
	}

	return &v, nil
}

func (c *Client) SummaryGet(opts structs.SummaryOptions) (*structs.Summary, error) {
	ro, err := stdsdk.MarshalOptions(opts)
	if err != nil {
		return nil, err
	}

	var v structs.Summary

	if err := c.Get("/api/summary", ro, &v); err != nil {
		return nil, err
	}

	return &v, nil
}
