package hist

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/rickgao/tws-tools/internal/model"
	"github.com/rickgao/tws-tools/internal/tws"
)

// ErrInvalidRequest is returned (wrapped) when a request fails validation.
var ErrInvalidRequest = errors.New("hist: invalid request")

// Request describes one historical-data download.
type Request struct {
	ID          uuid.UUID      // Correlation ID for logs and output files
	Contract    model.Contract // Instrument
	EndDateTime string         // Platform date or date-time; empty means now
	Duration    string         // Duration string (e.g., "1 Y")
	BarSize     string         // Bar size (e.g., "1 day")
	WhatToShow  string         // whatToShow (e.g., "TRADES")
	UseRTH      bool           // Regular trading hours only
}

// NewRequest creates a request with a fresh ID.
func NewRequest(c model.Contract, end, duration, barSize, wts string, useRTH bool) Request {
	return Request{
		ID:          uuid.New(),
		Contract:    c,
		EndDateTime: end,
		Duration:    duration,
		BarSize:     barSize,
		WhatToShow:  wts,
		UseRTH:      useRTH,
	}
}

// Validate checks that every field parses and that bar size and whatToShow are known.
func (r Request) Validate() error {
	if r.EndDateTime != "" {
		if _, err := tws.ParseDateTime(r.EndDateTime); err != nil {
			return fmt.Errorf("%w: end: %v", ErrInvalidRequest, err)
		}
	}
	if _, err := tws.DurationSeconds(r.Duration); err != nil {
		return fmt.Errorf("%w: duration: %v", ErrInvalidRequest, err)
	}
	if tws.ShortBarSize(r.BarSize) == tws.UnknownCode(tws.BarSize) {
		return fmt.Errorf("%w: unknown bar size %q", ErrInvalidRequest, r.BarSize)
	}
	if tws.ShortWTS(r.WhatToShow) == tws.UnknownCode(tws.WTS) {
		return fmt.Errorf("%w: unknown whatToShow %q", ErrInvalidRequest, r.WhatToShow)
	}
	return nil
}

// Key identifies the data series: "<conId>_<wts>_<bar>_<rth|all>".
// Chunks of the same series share a key.
func (r Request) Key() string {
	session := "all"
	if r.UseRTH {
		session = "rth"
	}
	return strconv.FormatInt(r.Contract.ConID, 10) + "_" +
		tws.ShortWTS(r.WhatToShow) + "_" +
		tws.ShortBarSize(r.BarSize) + "_" +
		session
}

// Span returns the requested duration.
func (r Request) Span() (time.Duration, error) {
	secs, err := tws.DurationSeconds(r.Duration)
	if err != nil {
		return 0, err
	}
	return time.Duration(secs) * time.Second, nil
}

// End returns the end of the requested window as a zone-less wall clock (UTC carrier,
// like tws.ParseDateTime). An empty EndDateTime resolves to now on the wall clock of
// tws.Location(). Date-only values mean the last second of that day.
func (r Request) End(now time.Time) (time.Time, error) {
	if r.EndDateTime == "" {
		l := now.In(tws.Location())
		return time.Date(l.Year(), l.Month(), l.Day(), l.Hour(), l.Minute(), l.Second(), 0, time.UTC), nil
	}
	t, err := tws.ParseDateTime(r.EndDateTime)
	if err != nil {
		return time.Time{}, err
	}
	if len(r.EndDateTime) == len(tws.DateLayout) {
		t = t.Add(24*time.Hour - time.Second)
	}
	return t, nil
}

// String renders the request for logs.
func (r Request) String() string {
	return fmt.Sprintf("%s end=%q duration=%q barSize=%q whatToShow=%q rth=%t [%s]",
		r.Key(), r.EndDateTime, r.Duration, r.BarSize, r.WhatToShow, r.UseRTH,
		tws.ContractString(r.Contract, false))
}
