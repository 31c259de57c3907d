package services

import (
	"testing"
	"time"
	"github.com/zultopia/freshsure-be/internal/types"
)

func TestBucketScoresByDay(t *testing.T) {
	day1 := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 2, 23, 30, 0, 0, time.UTC)

	scores := []*types.QualityScore{
		{QualityScore: 85, CalculatedAt: day2},
		{QualityScore: 95, CalculatedAt: day2.Add(10 * time.Minute)},
		{QualityScore: 70, CalculatedAt: day1},
	}

	points := BucketScoresByDay(scores)
	if len(points) != 2 {
		t.Fatalf("got %d buckets, want 2", len(points))
	}
	if points[0].Date != "2025-06-01" || points[1].Date != "2025-06-02" {
		t.Fatalf("buckets not sorted ascending: %v, %v", points[0].Date, points[1].Date)
	}
	if points[0].AvgScore != 70 || points[0].Count != 1 {
		t.Fatalf("day1 bucket = %+v, want avg 70 count 1", points[0])
	}
	if points[1].AvgScore != 90 || points[1].Count != 2 {
		t.Fatalf("day2 bucket = %+v, want avg 90 count 2", points[1])
	}
}

func TestBucketScoresByDayUsesUTC(t *testing.T) {
	// 23:00 UTC-5 is the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*3600)
	scores := []*types.QualityScore{
		{QualityScore: 80, CalculatedAt: time.Date(2025, 6, 1, 23, 0, 0, 0, loc)},
	}
	points := BucketScoresByDay(scores)
	if len(points) != 1 || points[0].Date != "2025-06-02" {
		t.Fatalf("got %+v, want single bucket on 2025-06-02", points)
	}
}

func TestBucketScoresByDayEmpty(t *testing.T) {
	if points := BucketScoresByDay(nil); len(points) != 0 {
		t.Fatalf("got %d buckets for no scores, want 0", len(points))
	}
}
