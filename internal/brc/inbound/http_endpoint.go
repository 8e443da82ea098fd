package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/shandysiswandi/gobrc/internal/brc/engine"
	"github.com/shandysiswandi/gobrc/internal/brc/entity"
	"github.com/shandysiswandi/gobrc/internal/brc/usecase"
	"github.com/shandysiswandi/gobrc/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gobrc/internal/pkg/pkgrouter"
)

const maxRequestBytes = 64 * 1024

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Submit(ctx context.Context, r *http.Request) (any, error) {
	if r.Body == nil {
		return nil, pkgerror.NewInvalidInput(errors.New("empty request body"))
	}

	var req SubmitRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, pkgerror.NewInvalidInput(errors.New("empty request body"))
		}
		return nil, pkgerror.NewInvalidFormat()
	}

	result, err := h.uc.Submit(ctx, usecase.SubmitInput{
		Path:    req.Path,
		Workers: req.Workers,
	})
	if err != nil {
		return nil, err
	}

	return SubmitResponse{JobID: result.JobID, Workers: result.Workers}, nil
}

func (h *HTTPEndpoint) Job(ctx context.Context, r *http.Request) (any, error) {
	jobID := strings.TrimSpace(pkgrouter.GetParam(ctx, "id"))

	result, err := h.uc.Job(ctx, jobID)
	if err != nil {
		return nil, err
	}

	meta := result.Meta
	return JobResponse{
		JobID:     meta.ID,
		Path:      meta.Path,
		Status:    meta.Status,
		Workers:   meta.Workers,
		Error:     meta.Err,
		StartedAt: meta.StartedAt,
		EndedAt:   meta.EndedAt,
		Lines:     meta.Lines,
		Bytes:     meta.Bytes,
		Stations:  meta.Stations,
		Output:    result.Output,
	}, nil
}

func (h *HTTPEndpoint) Stations(ctx context.Context, r *http.Request) (any, error) {
	jobID := strings.TrimSpace(pkgrouter.GetParam(ctx, "id"))
	query := r.URL.Query()

	page, pageSize, err := parsePagination(query.Get("page"), query.Get("page_size"))
	if err != nil {
		return nil, err
	}

	filter := usecase.StationFilter{Prefix: query.Get("prefix")}

	result, err := h.uc.Stations(ctx, jobID, filter, page, pageSize)
	if err != nil {
		return nil, err
	}

	stations := make([]Station, 0, len(result.Stations))
	for _, row := range result.Stations {
		stations = append(stations, toHTTPStation(row))
	}

	return StationsResponse{
		JobID:    result.JobID,
		Status:   result.Status,
		Stations: stations,
		page:     result.Page,
		pageSize: result.PageSize,
		total:    result.Total,
	}, nil
}

func parsePagination(pageRaw, sizeRaw string) (int, int, error) {
	page := 1
	pageSize := 50

	if pageRaw != "" {
		value, err := strconv.Atoi(pageRaw)
		if err != nil || value < 1 {
			return 0, 0, pkgerror.NewInvalidInput(errors.New("invalid page"))
		}
		page = value
	}

	if sizeRaw != "" {
		value, err := strconv.Atoi(sizeRaw)
		if err != nil || value < 1 {
			return 0, 0, pkgerror.NewInvalidInput(errors.New("invalid page_size"))
		}
		if value > 500 {
			value = 500
		}
		pageSize = value
	}

	return page, pageSize, nil
}

func toHTTPStation(row entity.StationRow) Station {
	return Station{
		Name:  row.Name,
		Min:   engine.FormatTenths(row.Stats.Min),
		Mean:  engine.FormatMean(row.Stats),
		Max:   engine.FormatTenths(row.Stats.Max),
		Count: row.Stats.Count,
	}
}
