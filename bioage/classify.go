/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package bioage

// Bucket is the qualitative classification of the gap between integral and
// chronological age. The zero value means no classification was produced.
type Bucket string

// Bucket values.
const (
	BucketExcellent      Bucket = "excellent"
	BucketGood           Bucket = "good"
	BucketNormal         Bucket = "normal"
	BucketNeedsAttention Bucket = "needs_attention"
)

// Severity drives presentation styling of a bucket.
type Severity string

// Severity values.
const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Upper (inclusive) gap bounds of the buckets, in years.
const (
	excellentMaxGap = -3.0
	goodMaxGap      = -1.0
	normalMaxGap    = 2.0
)

// Classify maps a gap to its bucket:
//
//	gap <= -3       Excellent
//	-3 < gap <= -1  Good
//	-1 < gap <= 2   Normal
//	gap > 2         NeedsAttention
//
// NaN compares false everywhere and lands in NeedsAttention.
func Classify(gap float64) Bucket {
	switch {
	case gap <= excellentMaxGap:
		return BucketExcellent
	case gap <= goodMaxGap:
		return BucketGood
	case gap <= normalMaxGap:
		return BucketNormal
	default:
		return BucketNeedsAttention
	}
}

// Severity returns the styling tag of b.
func (b Bucket) Severity() Severity {
	switch b {
	case BucketExcellent, BucketGood:
		return SeveritySuccess
	case BucketNormal:
		return SeverityInfo
	case BucketNeedsAttention:
		return SeverityWarning
	}

	return ""
}

// Label returns a display label for b.
func (b Bucket) Label() string {
	switch b {
	case BucketExcellent:
		return "Excellent"
	case BucketGood:
		return "Good"
	case BucketNormal:
		return "Normal"
	case BucketNeedsAttention:
		return "Needs attention"
	}

	return ""
}

func (b Bucket) String() string {
	return string(b)
}
