/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import "time"

const (
	EvtScanStart  = 0 // A file or directory scan begins.
	EvtFileResult = 1 // A single file's histogram/entropy/match-estimate is ready.
	EvtDirSummary = 2 // A directory scan finished; summary totals are ready.
	EvtScanEnd    = 3 // The whole run finished.
)

// Event describes one step of a compressibility probe run.
type Event struct {
	eventType     int
	path          string
	size          int64
	codeLengthBps float64
	matchCount    int
	compressed    bool
	multimedia    bool
	executable    bool
	fingerprint   uint64
	eventTime     time.Time
	msg           string
}

// NewEvent creates an Event describing a completed per-file measurement.
func NewEvent(evtType int, path string, size int64, codeLengthBps float64, matchCount int, compressed, multimedia, executable bool, fingerprint uint64) *Event {
	return &Event{
		eventType:     evtType,
		path:          path,
		size:          size,
		codeLengthBps: codeLengthBps,
		matchCount:    matchCount,
		compressed:    compressed,
		multimedia:    multimedia,
		executable:    executable,
		fingerprint:   fingerprint,
		eventTime:     time.Now(),
	}
}

// NewEventFromString creates an Event that just wraps a message, for
// phase markers that carry no per-file measurement (scan start/end).
func NewEventFromString(evtType int, msg string) *Event {
	return &Event{eventType: evtType, msg: msg, eventTime: time.Now()}
}

// Type returns the event's phase.
func (this *Event) Type() int {
	return this.eventType
}

// Listener is implemented by anything that wants to observe probe
// progress as it happens, rather than wait for a final return value.
type Listener interface {
	ProcessEvent(evt *Event)
}
