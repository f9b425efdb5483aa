package mediawiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/rinebergc/tesl-card-data-scraper/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("legends/mediawiki")

const apiPath = "/w/api.php"

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
}

type ClientOptions struct {
	// wiki hostname without a scheme or path, e.g. "en.uesp.net".
	// a full url is also accepted, which is mostly useful in tests.
	Host string
	// the next three fields make up the user agent required by the
	// Wikimedia User-Agent policy: "<tool>/<version> (<contact>)"
	ToolName    string
	ToolVersion string
	Contact     string
}

func NewClient(opts ClientOptions) (*Client, error) {
	rawUrl := opts.Host
	if !strings.Contains(rawUrl, "://") {
		rawUrl = "https://" + rawUrl
	}
	baseUrl, err := url.Parse(rawUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(baseUrl.String())
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", fmt.Sprintf(
		"%s/%s (%s)",
		opts.ToolName, opts.ToolVersion, opts.Contact,
	))
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "legends/mediawiki/http")

	return &Client{
		BaseUrl: baseUrl,
		Http:    client,
	}, nil
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

type categoryMembersResponse struct {
	Continue struct {
		CmContinue string `json:"cmcontinue"`
	} `json:"continue"`
	Query struct {
		CategoryMembers []struct {
			Title string `json:"title"`
		} `json:"categorymembers"`
	} `json:"query"`
	Error *apiError `json:"error"`
}

// ListCategory enumerates the titles of every page in a category.
// `category` is given without the "Category:" prefix. Returned titles
// keep their namespace prefix.
func (c *Client) ListCategory(ctx context.Context, category string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "client:ListCategory")
	defer span.End()
	span.SetAttributes(attribute.String("category", category))

	var titles []string
	cmcontinue := ""
	for {
		params := map[string]string{
			"action":        "query",
			"list":          "categorymembers",
			"cmtitle":       "Category:" + category,
			"cmlimit":       "500",
			"format":        "json",
			"formatversion": "2",
		}
		if cmcontinue != "" {
			params["cmcontinue"] = cmcontinue
		}

		res, err := c.Http.R().
			SetContext(ctx).
			SetQueryParams(params).
			Get(apiPath)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch category members")
			return nil, err
		}
		if res.IsError() {
			err := fmt.Errorf("list category %q: status %s", category, res.Status())
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		var body categoryMembersResponse
		err = json.Unmarshal(res.Body(), &body)
		if err != nil {
			span.SetStatus(codes.Error, "failed to parse category members response")
			return nil, err
		}
		if body.Error != nil {
			err := fmt.Errorf("list category %q: %s: %s", category, body.Error.Code, body.Error.Info)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		for _, m := range body.Query.CategoryMembers {
			titles = append(titles, m.Title)
		}

		if body.Continue.CmContinue == "" {
			break
		}
		cmcontinue = body.Continue.CmContinue
	}

	span.SetAttributes(attribute.Int("pages", len(titles)))
	return titles, nil
}

type parseResponse struct {
	Parse struct {
		Title    string `json:"title"`
		Wikitext string `json:"wikitext"`
	} `json:"parse"`
	Error *apiError `json:"error"`
}

// PageText fetches the raw wikitext of a page. A missing page is an error.
func (c *Client) PageText(ctx context.Context, title string) (string, error) {
	ctx, span := tracer.Start(ctx, "client:PageText")
	defer span.End()
	span.SetAttributes(attribute.String("title", title))

	res, err := c.Http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"action":        "parse",
			"page":          title,
			"prop":          "wikitext",
			"format":        "json",
			"formatversion": "2",
		}).
		Get(apiPath)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch page text")
		return "", err
	}
	if res.IsError() {
		err := fmt.Errorf("page text %q: status %s", title, res.Status())
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	var body parseResponse
	err = json.Unmarshal(res.Body(), &body)
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse page text response")
		return "", err
	}
	if body.Error != nil {
		err := fmt.Errorf("page text %q: %s: %s", title, body.Error.Code, body.Error.Info)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	return body.Parse.Wikitext, nil
}
