// Package domain contains core business types for the ideaboard application.
package domain

import "strings"

// Idea is a single orderable text item, optionally tagged with a legend type.
// Every idea lives in exactly one ordering list: the unassigned list or one
// category's list.
type Idea struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Headline     string  `json:"headline,omitempty"`
	LegendTypeID *string `json:"legend_type_id,omitempty"`
}

// collapsedTitleWords is how many words of the title survive truncation when
// a collapsed idea has no headline.
const collapsedTitleWords = 5

// CollapsedLabel returns the single-line label shown when the idea is
// collapsed: the headline if present, otherwise the title truncated after a
// few words.
func (i Idea) CollapsedLabel() string {
	if i.Headline != "" {
		return i.Headline
	}
	words := strings.Fields(i.Title)
	if len(words) > collapsedTitleWords {
		return strings.Join(words[:collapsedTitleWords], " ") + "..."
	}
	return i.Title
}

// Category is a user-positioned, resizable container for ideas on the board
// surface. Position and size are in surface cells, clamped so the rectangle
// always lies fully inside the surface.
type Category struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	StackOrder int    `json:"z_index"`
	Archived   bool   `json:"archived"`
}

// LegendType is a named, colored classification attachable to ideas. Deleting
// a legend type clears the reference on every idea that held it.
type LegendType struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
