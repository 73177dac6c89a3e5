// SPDX-License-Identifier: MIT

// Package pipeline wires the containers, the classifier and the sorting
// engine into the three stages of a benchmark run:
//
//	classify  passwords.csv             → password_classifier.csv   (+ label tally)
//	format    password_classifier.csv   → passwords_formated_data.csv
//	                                      passwords_classifier.csv  (good / very good only)
//	sort      passwords_formated_data.csv → passwords_<criterion>_<algorithm>_<scenario>.csv
//
// Every stage reads its whole input into a container.Sequence before doing
// any work. The sort stage runs each compatible (criterion, algorithm) pair
// once per scenario, always over a fresh deep copy, and times only the sort
// call itself.
//
// Stages log through zap (debug for per-row decisions, info for per-stage
// and per-run summaries) and, when a Metrics value is supplied, record
// Prometheus counters and histograms. Nothing runs concurrently.
package pipeline
