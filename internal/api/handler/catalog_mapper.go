package handler

import (
	"strconv"

	"github.com/zrg-scripts/storefront-api/internal/core/domain"
	"github.com/zrg-scripts/storefront-api/internal/core/ports"
)

// formatPrice renders a price the way the frontend expects it: a plain
// decimal string with two places.
func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}

func toScriptListItem(s domain.Script) scriptListItem {
	return scriptListItem{
		ID:                 s.ID,
		Title:              s.Title,
		Slug:               s.Slug,
		Description:        s.Description,
		Price:              formatPrice(s.Price),
		Image:              s.Image,
		Video:              s.Video,
		DemoVideo:          s.Video,
		Categories:         emptyIfNil(s.Categories),
		Frameworks:         emptyIfNil(s.Frameworks),
		IsFeatured:         s.IsFeatured,
		IsBestseller:       s.IsBestseller,
		CreatedAt:          s.CreatedAt,
		TebexID:            s.TebexID,
		ShowcaseServers:    emptyIfNil(s.ShowcaseServers),
		Rating:             s.Rating,
		ReviewsCount:       s.ReviewsCount,
		SystemRequirements: s.SystemRequirements,
	}
}

func toScriptDetail(d *ports.ScriptDetail) scriptDetail {
	reviews := make([]reviewItem, 0, len(d.Reviews))
	for _, r := range d.Reviews {
		reviews = append(reviews, reviewItem{
			Name:        r.Name,
			Rating:      r.Rating,
			Description: r.Description,
			CreatedAt:   r.CreatedAt,
		})
	}

	return scriptDetail{
		scriptListItem: toScriptListItem(d.Script),
		Images:         imageURLs(d.Script.Images),
		KeyBenefits:    d.Script.KeyBenefits,
		CoreFeatures:   d.Script.CoreFeatures,
		Reviews:        reviews,
	}
}

func toSearchScriptItem(s domain.Script) searchScriptItem {
	return searchScriptItem{
		Title:       s.Title,
		Description: s.Description,
		Price:       formatPrice(s.Price),
		Slug:        s.Slug,
		Images:      imageURLs(s.Images),
	}
}

func imageURLs(images []domain.Image) []string {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, img.URL)
	}
	return urls
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
