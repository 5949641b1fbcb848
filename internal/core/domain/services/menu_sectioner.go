package services

import (
	"regexp"
	"strconv"
	"strings"

	"tableside/internal/core/domain/model/catalog"
)

// FallbackCategory is the section title used for items without a category.
const FallbackCategory = "featured items"

const fallbackAnchor = "section"

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonWordChars  = regexp.MustCompile(`[^\p{L}\p{N}_-]`)
)

// Section is a run of adjacent menu items sharing a category label.
type Section struct {
	Title  string
	Anchor string
	Items  []*catalog.MenuItem
}

// MenuSectioner groups menu items for the customer menu view.
//
// Grouping is by adjacency: the input is expected to be sorted by (category, name),
// and a label that shows up again after a different one opens a new section.
//
// Example:
//
//	sections := services.NewMenuSectioner().Sections(items)
//	for _, s := range sections {
//	    fmt.Printf("#%s %s (%d)\n", s.Anchor, s.Title, len(s.Items))
//	}
type MenuSectioner struct{}

func NewMenuSectioner() MenuSectioner {
	return MenuSectioner{}
}

// Sections returns sections in input order. Anchors that slug down to nothing
// are numbered section-1, section-2 and so on.
func (MenuSectioner) Sections(items []*catalog.MenuItem) []Section {
	var (
		sections      []Section
		fallbackIndex = 1
	)

	for _, item := range items {
		title := FallbackCategory
		if c := item.Category(); c != nil {
			title = *c
		}

		if len(sections) == 0 || sections[len(sections)-1].Title != title {
			anchor := Slugify(title)
			if anchor == fallbackAnchor {
				anchor = fallbackAnchor + "-" + strconv.Itoa(fallbackIndex)
				fallbackIndex++
			}
			sections = append(sections, Section{Title: title, Anchor: anchor})
		}

		last := &sections[len(sections)-1]
		last.Items = append(last.Items, item)
	}

	return sections
}

// Slugify lowercases and trims label, joins whitespace runs with "-" and drops every
// character that is not a letter, digit, underscore or hyphen. An empty result is
// returned as "section".
func Slugify(label string) string {
	slug := strings.ToLower(strings.TrimSpace(label))
	slug = whitespaceRun.ReplaceAllString(slug, "-")
	slug = nonWordChars.ReplaceAllString(slug, "")
	if slug == "" {
		return fallbackAnchor
	}
	return slug
}
