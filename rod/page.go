package rod

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/sitegraph"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Page is the browser surface a test action needs.
type Page interface {
	// Navigate opens url and waits for it to load.
	Navigate(url string) error
	// ClickLink clicks the link pointing at url, or the link labelled text
	// when no href matches, and waits for the resulting navigation.
	ClickLink(url, text string) error
	// WaitLoad waits for the current document to finish loading.
	WaitLoad() error
	// Title returns the current document title.
	Title() (string, error)
	Close() error
}

// PageOpener hands out pages bound to a context.
type PageOpener interface {
	OpenPage(ctx context.Context) (Page, error)
	Close() error
}

type rodPage struct {
	page *rod.Page
}

func (p *rodPage) Navigate(url string) error {
	if err := p.page.Navigate(url); err != nil {
		return err
	}
	return p.page.WaitLoad()
}

func (p *rodPage) ClickLink(url, text string) error {
	el, err := p.findLink(url, text)
	if err != nil {
		return err
	}
	wait := p.page.WaitNavigation(proto.PageLifecycleEventNameLoad)
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return err
	}
	wait()
	return nil
}

func (p *rodPage) findLink(url, text string) (*rod.Element, error) {
	links, err := p.page.Elements("a[href]")
	if err != nil {
		return nil, err
	}
	want, _ := sitegraph.NormalizeURL(url)
	for _, el := range links {
		href, err := el.Property("href")
		if err != nil {
			continue
		}
		if got, err := sitegraph.NormalizeURL(href.Str()); err == nil && got == want {
			return el, nil
		}
	}
	if text != "" {
		for _, el := range links {
			label, err := el.Text()
			if err == nil && strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(text)) {
				return el, nil
			}
		}
	}
	return nil, fmt.Errorf("no link to %s", url)
}

func (p *rodPage) WaitLoad() error {
	return p.page.WaitLoad()
}

func (p *rodPage) Title() (string, error) {
	info, err := p.page.Info()
	if err != nil {
		return "", err
	}
	return info.Title, nil
}

func (p *rodPage) Close() error {
	return p.page.Close()
}
