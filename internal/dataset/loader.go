// Clipdeck - Short-Video Performance Analytics
// Copyright 2026 Clipdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clipdeck/clipdeck

// Package dataset reads and writes the flat CSV snapshots the metrics
// engine operates on.
//
// The input schema is a header row followed by one row per video:
//
//	video_id,upload_time,content_type,duration_sec,views,likes,comments,shares,completion_rate,creator_id
//
// Columns are resolved by header name, not position, so exported files
// that carry extra derived columns load back cleanly. Loading is
// fail-fast: any malformed row rejects the whole file with a LoadError
// carrying row and column context.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/clipdeck/clipdeck/internal/models"
	"github.com/clipdeck/clipdeck/internal/validation"
)

// requiredColumns is the minimal header set a snapshot must carry.
var requiredColumns = []string{
	"video_id",
	"upload_time",
	"content_type",
	"duration_sec",
	"views",
	"likes",
	"comments",
	"shares",
	"completion_rate",
	"creator_id",
}

// Sentinel errors for load failure classification.
var (
	// ErrMissingColumn indicates the header row lacks a required column.
	ErrMissingColumn = errors.New("missing required column")

	// ErrEmptyFile indicates the file has no header row.
	ErrEmptyFile = errors.New("file is empty")
)

// LoadError describes why a snapshot failed to load. Row is 1-based
// counting the header; Row 0 means the failure is not tied to a row.
type LoadError struct {
	Path   string
	Row    int
	Column string
	Err    error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	switch {
	case e.Row > 0 && e.Column != "":
		return fmt.Sprintf("load %s: row %d, column %q: %v", e.Path, e.Row, e.Column, e.Err)
	case e.Row > 0:
		return fmt.Sprintf("load %s: row %d: %v", e.Path, e.Row, e.Err)
	default:
		return fmt.Sprintf("load %s: %v", e.Path, e.Err)
	}
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error { return e.Err }

// ReadFile loads a CSV snapshot from path. On any I/O or parse failure
// it returns a *LoadError and no records.
func ReadFile(path string) ([]models.VideoRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	return records, nil
}

// Read loads a CSV snapshot from r. Exposed separately from ReadFile
// so tests and future transports can load from any reader.
func Read(r io.Reader) ([]models.VideoRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &LoadError{Err: ErrEmptyFile}
	}
	if err != nil {
		return nil, &LoadError{Err: err}
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, &LoadError{Column: name, Err: ErrMissingColumn}
		}
	}

	var records []models.VideoRecord
	row := 1
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, &LoadError{Row: row, Err: err}
		}

		rec, err := parseRecord(fields, cols, row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

// parseRecord converts one CSV row into a VideoRecord.
func parseRecord(fields []string, cols map[string]int, row int) (models.VideoRecord, error) {
	var rec models.VideoRecord
	var err error

	get := func(name string) string { return fields[cols[name]] }

	rec.VideoID = get("video_id")
	rec.ContentType = get("content_type")
	rec.CreatorID = get("creator_id")

	rec.UploadTime, err = time.ParseInLocation(models.UploadTimeLayout, get("upload_time"), time.Local)
	if err != nil {
		return rec, &LoadError{Row: row, Column: "upload_time", Err: err}
	}

	intCols := []struct {
		name string
		dst  *int64
	}{
		{"views", &rec.Views},
		{"likes", &rec.Likes},
		{"comments", &rec.Comments},
		{"shares", &rec.Shares},
	}
	for _, c := range intCols {
		*c.dst, err = strconv.ParseInt(get(c.name), 10, 64)
		if err != nil {
			return rec, &LoadError{Row: row, Column: c.name, Err: err}
		}
	}

	rec.DurationSec, err = strconv.Atoi(get("duration_sec"))
	if err != nil {
		return rec, &LoadError{Row: row, Column: "duration_sec", Err: err}
	}

	rec.CompletionRate, err = strconv.ParseFloat(get("completion_rate"), 64)
	if err != nil {
		return rec, &LoadError{Row: row, Column: "completion_rate", Err: err}
	}

	if verr := validation.ValidateStruct(&rec); verr != nil {
		return rec, &LoadError{Row: row, Err: verr}
	}

	return rec, nil
}
