package site

import (
	"encoding/xml"
	"strconv"
	"time"
)

const (
	sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"
	xhtmlNS   = "http://www.w3.org/1999/xhtml"
)

type Page struct {
	Path     string
	Priority float64
}

type SitemapInput struct {
	BaseURL   string
	Locales   []string
	Pages     []Page
	RentalIDs []int
	Now       time.Time
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	NS      string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string      `xml:"loc"`
	LastMod    string      `xml:"lastmod"`
	ChangeFreq string      `xml:"changefreq"`
	Priority   string      `xml:"priority"`
	Alternates []alternate `xml:"xhtml:link"`
}

type alternate struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// BuildSitemap lists the locale home pages, then every static page per
// locale, then each active rental detail page per locale. Every entry links
// its translations.
func BuildSitemap(in SitemapInput) ([]byte, error) {
	lastMod := in.Now.UTC().Format(time.RFC3339)
	set := urlSet{NS: sitemapNS, XHTML: xhtmlNS}

	add := func(path, freq string, prio float64) {
		for _, loc := range in.Locales {
			u := sitemapURL{
				Loc:        BuildPublicURL(in.BaseURL, loc, path),
				LastMod:    lastMod,
				ChangeFreq: freq,
				Priority:   strconv.FormatFloat(prio, 'f', 1, 64),
			}
			for _, alt := range in.Locales {
				u.Alternates = append(u.Alternates, alternate{
					Rel:      "alternate",
					Hreflang: alt,
					Href:     BuildPublicURL(in.BaseURL, alt, path),
				})
			}
			set.URLs = append(set.URLs, u)
		}
	}

	add("", "weekly", 1)
	for _, p := range in.Pages {
		add(p.Path, "monthly", p.Priority)
	}
	for _, id := range in.RentalIDs {
		add(RentalPath(id), "monthly", 0.7)
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
