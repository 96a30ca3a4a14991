package actions

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/PayTrain/NASA-Space-Explorer/internal/apod"
)

// Service fetches the latest feed items. An error returned together with
// items marks a partial success: the items are good, the error is advisory
// (a failed cache write, not a failed fetch).
type Service interface {
	FetchLatest(ctx context.Context, days int) ([]apod.Item, error)
}

type FetchSuccessMsg struct {
	Items    []apod.Item
	Duration time.Duration
	Source   string
	Warning  string
}

type FetchErrorMsg struct {
	Err      error
	Duration time.Duration
	Source   string
}

type OpenURLSuccessMsg struct {
	Status string
	Opened bool
}

type OpenURLErrorMsg struct {
	Err error
}

type PreviewSuccessMsg struct {
	Source  string
	Preview string
}

type PreviewErrorMsg struct {
	Source string
	Err    error
}

type ClearStatusMsg struct {
	ID int
}

func FetchCmd(service Service, days int, source string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		start := time.Now()

		items, err := service.FetchLatest(ctx, days)
		if err != nil && len(items) == 0 {
			return FetchErrorMsg{Err: err, Duration: time.Since(start), Source: source}
		}
		msg := FetchSuccessMsg{Items: items, Duration: time.Since(start), Source: source}
		if err != nil {
			msg.Warning = err.Error()
		}
		return msg
	}
}

func OpenURLCmd(url string, openFn, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if openFn != nil {
			if err := openFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Opened URL in browser", Opened: true}
			}
		}
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Could not open browser, URL copied to clipboard"}
			}
		}
		return OpenURLErrorMsg{Err: fmt.Errorf("could not open URL or copy to clipboard")}
	}
}

func CopyURLCmd(url string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "URL copied to clipboard"}
			}
		}
		return OpenURLErrorMsg{Err: fmt.Errorf("could not copy URL to clipboard")}
	}
}

// PreviewCmd renders an inline image preview off the update loop. Source
// identifies the image so stale results can be dropped when the user has
// already moved to another item.
func PreviewCmd(source string, width int, renderFn func(string, int) (string, error)) tea.Cmd {
	return func() tea.Msg {
		if renderFn == nil {
			return PreviewErrorMsg{Source: source, Err: fmt.Errorf("preview rendering disabled")}
		}
		preview, err := renderFn(source, width)
		if err != nil {
			return PreviewErrorMsg{Source: source, Err: err}
		}
		return PreviewSuccessMsg{Source: source, Preview: preview}
	}
}

// ClearStatusCmd schedules a status wipe. The id lets the model ignore the
// tick when a newer status replaced the one this timer belongs to.
func ClearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return ClearStatusMsg{ID: id}
	})
}
