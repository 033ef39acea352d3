package models

import (
	"strconv"
	"strings"
	"time"
)

// RawRecord is one product card as scraped from a listing page, before any
// validation. Sentinel strings ("Unknown Product", "Price Unavailable",
// "Invalid Rating") and duplicate rows survive extraction untouched.
type RawRecord struct {
	Title      string `json:"title"`
	Price      string `json:"price"`
	Rating     string `json:"rating"`
	Colors     string `json:"colors"`
	Size       string `json:"size"`
	Gender     string `json:"gender"`
	SourcePage int    `json:"sourcePage"`
}

// CleanRecord is a validated, normalized product record with the price
// converted to IDR.
type CleanRecord struct {
	Title       string
	PriceIDR    float64
	Rating      float64
	Colors      int
	Size        string
	Gender      string
	ExtractedAt time.Time
}

// Key returns the record's dedup identity: every field except the lineage
// timestamp.
func (r CleanRecord) Key() string {
	return strings.Join([]string{
		r.Title,
		strconv.FormatFloat(r.PriceIDR, 'f', -1, 64),
		strconv.FormatFloat(r.Rating, 'f', -1, 64),
		strconv.Itoa(r.Colors),
		r.Size,
		r.Gender,
	}, "\x1f")
}
