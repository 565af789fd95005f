package plain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/carousel/internal/pagestate"
)

var (
	// ErrNoSheet is returned when a dismiss event arrives without an open sheet.
	ErrNoSheet = errors.New("no statistics sheet is open")
	// ErrSheetOpen is returned for any event but dismiss while the sheet is open.
	ErrSheetOpen = errors.New("statistics sheet is open")
)

// Replay drives st from an event script, one event per line:
//
//	next | prev | page N | scroll OFFSET WIDTH | query TEXT | tap | dismiss
//
// Blank lines and lines starting with # are skipped. While a sheet is open only
// dismiss is accepted. The renderer should already
// be subscribed to st; Replay renders the initial frame and any sheets itself.
func Replay(in io.Reader, st *pagestate.State, r *Renderer, top int) error {
	r.StateChanged(st.Snapshot())
	sheetOpen := false
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		name, arg := splitEvent(strings.TrimLeftFunc(line, unicode.IsSpace))
		if err := apply(st, r, name, arg, top, &sheetOpen); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := r.Err(); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read events: %w", err)
	}
	return r.Err()
}

// splitEvent splits the event name from its argument at the first whitespace.
// The argument keeps any further whitespace so queries can contain spaces.
func splitEvent(line string) (name, arg string) {
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	_, size := utf8.DecodeRuneInString(line[i:])
	return line[:i], line[i+size:]
}

func apply(st *pagestate.State, r *Renderer, name, arg string, top int, sheetOpen *bool) error {
	if *sheetOpen && name != "dismiss" {
		return fmt.Errorf("%s: %w", name, ErrSheetOpen)
	}
	switch name {
	case "next":
		st.Next()
	case "prev":
		st.Prev()
	case "page":
		page, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return fmt.Errorf("invalid page %q", arg)
		}
		return st.SetSelectedPage(page)
	case "scroll":
		fields := strings.Fields(arg)
		if len(fields) != 2 {
			return fmt.Errorf("scroll expects OFFSET WIDTH")
		}
		offset, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return fmt.Errorf("invalid offset %q", fields[0])
		}
		width, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return fmt.Errorf("invalid width %q", fields[1])
		}
		return st.ScrollTo(offset, width)
	case "query":
		st.SetQuery(arg)
	case "tap":
		r.RenderReport(st.Report(top))
		*sheetOpen = true
	case "dismiss":
		if !*sheetOpen {
			return ErrNoSheet
		}
		*sheetOpen = false
	default:
		return fmt.Errorf("unknown event %q", name)
	}
	return nil
}
