// Package textutil provides text normalization and fuzzy similarity scoring
// for noisy OCR and transcript text.
//
// The primary use cases are:
//   - Normalizing team and stadium names for comparison (lowercasing,
//     diacritic folding, whitespace collapsing)
//   - Computing normalized Levenshtein similarity between strings
//   - Computing substring-tolerant partial similarity, which scores a short
//     query against the best-aligned window of a longer string
//
// Scores are normalized to [0, 1] so callers can treat them directly as
// match confidences and compare them against configured thresholds.
package textutil
