// Package metasync pulls editorial city and category metadata from Notion
// databases maintained by the content team and overlays it on the built-in
// defaults used by the site-data generator.
package metasync

import (
	"context"

	"github.com/jomei/notionapi"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/careatlas/directory-cli/internal/sitegen"
	"github.com/careatlas/directory-cli/internal/slug"
	"github.com/careatlas/directory-cli/pkg/notion"
)

// activeFilter selects only rows editors have marked Active.
func activeFilter() *notionapi.DatabaseQueryRequest {
	return &notionapi.DatabaseQueryRequest{
		Filter: notionapi.PropertyFilter{
			Property: "Status",
			Status: &notionapi.StatusFilterCondition{
				Equals: "Active",
			},
		},
	}
}

// SyncCities queries the city metadata database and returns entries keyed by
// display name. Malformed pages are logged and skipped.
func SyncCities(ctx context.Context, client notion.Client, dbID string) (map[string]sitegen.CityMeta, error) {
	pages, err := notion.QueryAll(ctx, client, dbID, activeFilter())
	if err != nil {
		return nil, eris.Wrap(err, "metasync: load city metadata")
	}

	out := map[string]sitegen.CityMeta{}
	for _, p := range pages {
		meta, err := parseCityPage(p)
		if err != nil {
			zap.L().Warn("metasync: skipping malformed city page",
				zap.String("page_id", string(p.ID)),
				zap.Error(err),
			)
			continue
		}
		out[meta.DisplayName] = meta
	}
	return out, nil
}

// SyncCategories queries the category metadata database and returns entries
// keyed by display name.
func SyncCategories(ctx context.Context, client notion.Client, dbID string) (map[string]sitegen.CategoryMeta, error) {
	pages, err := notion.QueryAll(ctx, client, dbID, activeFilter())
	if err != nil {
		return nil, eris.Wrap(err, "metasync: load category metadata")
	}

	out := map[string]sitegen.CategoryMeta{}
	for _, p := range pages {
		meta, err := parseCategoryPage(p)
		if err != nil {
			zap.L().Warn("metasync: skipping malformed category page",
				zap.String("page_id", string(p.ID)),
				zap.Error(err),
			)
			continue
		}
		out[meta.DisplayName] = meta
	}
	return out, nil
}

func parseCityPage(p notionapi.Page) (sitegen.CityMeta, error) {
	meta := sitegen.CityMeta{
		DisplayName:    titleProp(p, "Name"),
		Description:    textProp(p, "Description"),
		SEOTitle:       textProp(p, "SEOTitle"),
		SEODescription: textProp(p, "SEODescription"),
	}
	if meta.DisplayName == "" {
		return meta, eris.New("missing Name property")
	}
	meta.Slug = textProp(p, "Slug")
	if meta.Slug == "" {
		meta.Slug = slug.Make(meta.DisplayName)
	}
	return meta, nil
}

func parseCategoryPage(p notionapi.Page) (sitegen.CategoryMeta, error) {
	meta := sitegen.CategoryMeta{
		DisplayName:    titleProp(p, "Name"),
		Icon:           textProp(p, "Icon"),
		Color:          textProp(p, "Color"),
		Description:    textProp(p, "Description"),
		SEOTitle:       textProp(p, "SEOTitle"),
		SEODescription: textProp(p, "SEODescription"),
	}
	if meta.DisplayName == "" {
		return meta, eris.New("missing Name property")
	}
	meta.Slug = textProp(p, "Slug")
	if meta.Slug == "" {
		meta.Slug = slug.Make(meta.DisplayName)
	}
	return meta, nil
}

func titleProp(p notionapi.Page, name string) string {
	if prop, ok := p.Properties[name]; ok {
		if tp, ok := prop.(*notionapi.TitleProperty); ok {
			return notion.PlainText(tp.Title)
		}
	}
	return ""
}

func textProp(p notionapi.Page, name string) string {
	if prop, ok := p.Properties[name]; ok {
		if rtp, ok := prop.(*notionapi.RichTextProperty); ok {
			return notion.PlainText(rtp.RichText)
		}
	}
	return ""
}
