// Clipdeck - Short-Video Performance Analytics
// Copyright 2026 Clipdeck Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clipdeck/clipdeck

package dataset

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/clipdeck/clipdeck/internal/models"
)

// sampleContentTypes are the category labels used by the demo data.
var sampleContentTypes = []string{
	"Education",
	"Entertainment",
	"Food",
	"Tech",
	"Fitness",
	"Comedy",
	"Beauty",
	"Gaming",
	"Travel",
	"Pets",
}

// boostedContentTypes get extra baseline views, mirroring categories
// that historically outperform in the demo dataset.
var boostedContentTypes = map[string]bool{
	"Education": true,
	"Tech":      true,
}

// GenerateSample writes a demo snapshot of n records to path, creating
// parent directories as needed. The output exercises every time-period
// bucket and produces a realistic spread of hot and cold videos.
//
// The generator is seeded so tests and demos are reproducible: the
// same seed always yields the same file.
func GenerateSample(path string, n int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create sample dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create sample file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	header := []string{
		"video_id", "upload_time", "content_type", "duration_sec",
		"views", "likes", "comments", "shares", "completion_rate", "creator_id",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write sample header: %w", err)
	}

	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local)

	for i := 0; i < n; i++ {
		contentType := sampleContentTypes[rng.Intn(len(sampleContentTypes))]

		uploadTime := base.
			AddDate(0, 0, 1+rng.Intn(30)).
			Add(time.Duration(rng.Intn(24)) * time.Hour).
			Add(time.Duration(rng.Intn(60)) * time.Minute)

		views := int64(5000 + rng.Intn(25001))
		if boostedContentTypes[contentType] {
			views += 10000
		}
		views += int64(rng.Intn(4001) - 2000)
		if views < 1 {
			views = 1
		}

		likes := int64(float64(views) * randRange(rng, 0.01, 0.06))
		comments := int64(float64(views) * randRange(rng, 0.002, 0.015))
		shares := int64(float64(views) * randRange(rng, 0.001, 0.01))
		completion := math.Round(randRange(rng, 0.3, 0.8)*100) / 100

		row := []string{
			fmt.Sprintf("V%d", 10000+i),
			uploadTime.Format(models.UploadTimeLayout),
			contentType,
			strconv.Itoa(60 + rng.Intn(241)),
			strconv.FormatInt(views, 10),
			strconv.FormatInt(likes, 10),
			strconv.FormatInt(comments, 10),
			strconv.FormatInt(shares, 10),
			strconv.FormatFloat(completion, 'f', 2, 64),
			fmt.Sprintf("C%d", 2001+rng.Intn(10)),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write sample record %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// randRange returns a uniform float in [lo, hi).
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
