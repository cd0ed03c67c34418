package wtwiki

import (
	"bytes"
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
	"wtdata-backend/lib/htmlutil"
	"wtdata-backend/lib/restyutil"
	"wtdata-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/wtwiki")

const DefaultBaseUrl = "https://wiki.warthunder.com"

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
}

type ClientOptions struct {
	// defaults to DefaultBaseUrl
	BaseUrl string
	// dumps raw page traffic for debugging, can be nil
	Output restyutil.InstrumentOutput
}

func NewClient(opts ClientOptions) (*Client, error) {
	base := opts.BaseUrl
	if base == "" {
		base = DefaultBaseUrl
	}
	baseUrl, err := url.Parse(base)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(base)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/wtwiki/http")
	restyutil.DumpTraffic(client, opts.Output)

	return &Client{
		BaseUrl: baseUrl,
		Http:    client,
	}, nil
}

func (c *Client) fetchDocument(ctx context.Context, path string) (*goquery.Document, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("fetch '%s': %s", path, res.Status())
	}
	return goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
}

// VehicleLink is one entry of a category's unit tree.
type VehicleLink struct {
	// upper-cased nation code of the tree container the link sits in
	Nation string
	Url    string
}

// VehicleLinks fetches the tree page of a category (e.g. "aviation")
// and collects every vehicle page link, grouped under its nation
// container.
func (c *Client) VehicleLinks(ctx context.Context, category string) ([]VehicleLink, error) {
	ctx, span := tracer.Start(ctx, "VehicleLinks")
	defer span.End()

	doc, err := c.fetchDocument(ctx, "/"+category)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch category tree page")
		return nil, err
	}

	var links []VehicleLink
	doc.Find("div.unit-tree[data-tree-id]").Each(func(_ int, container *goquery.Selection) {
		nation := strings.ToUpper(container.AttrOr("data-tree-id", ""))

		container.Find("a.wt-tree_item-link").Each(func(_ int, a *goquery.Selection) {
			href, ok := a.Attr("href")
			if !ok || href == "" {
				return
			}
			links = append(links, VehicleLink{
				Nation: nation,
				Url:    href,
			})
		})
	})

	if len(links) == 0 {
		err := fmt.Errorf("no vehicle links found on '/%s'", category)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return links, nil
}

// VehiclePage fetches a single vehicle page and returns its parsed
// document. `link` may be absolute or relative to the wiki base url.
func (c *Client) VehiclePage(ctx context.Context, link string) (*goquery.Document, error) {
	ctx, span := tracer.Start(ctx, "VehiclePage")
	defer span.End()

	path := link
	if u, err := url.Parse(link); err == nil && u.IsAbs() {
		path = u.Path
	}

	doc, err := c.fetchDocument(ctx, path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch vehicle page")
		return nil, err
	}

	if doc.Find("div.game-unit_name").Length() == 0 {
		err := fmt.Errorf("core container not loaded for '%s'", link)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return doc, nil
}

// PageTitle is a debugging aid for the `list`/`scrape` CLIs.
func PageTitle(doc *goquery.Document) string {
	return htmlutil.CleanText(doc.Find("div.game-unit_name").First().Text())
}
