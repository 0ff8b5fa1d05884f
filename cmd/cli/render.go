package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/limaJavier/meetingslots/pkg/model"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func render(w io.Writer, format string, options []model.MeetingOption) error {
	if format == formatJSON {
		return renderJSON(w, options)
	}
	return renderText(w, options)
}

func renderJSON(w io.Writer, options []model.MeetingOption) error {
	if options == nil {
		options = []model.MeetingOption{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(options), "cannot encode options")
}

func renderText(w io.Writer, options []model.MeetingOption) error {
	if len(options) == 0 {
		_, err := fmt.Fprintln(w, "No meeting slot suits every participant")
		return err
	}

	rows := lo.Map(options, func(option model.MeetingOption, _ int) []string {
		availability := "all"
		if !option.FullyAvailable {
			availability = "busy: " + strings.Join(option.Unavailable, ", ")
		}
		return []string{option.Day, option.Start, option.End, availability}
	})

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("DAY", "START", "END", "AVAILABLE").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintf(w, "%v\n%d option(s)\n", t, len(options))
	return err
}
