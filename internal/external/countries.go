package external

import (
	"context"
	"errors"
	"net/url"
	"sort"
	"strings"

	"github.com/njprem/Mindanao_travel_APP_BackEnd/internal/domain"
)

const DefaultRestCountriesBaseURL = "https://restcountries.com"

var errEmptyCountryResult = errors.New("external: country lookup returned no results")

// CountryClient looks up country facts on REST Countries. No key is needed.
type CountryClient struct {
	http    HTTPClient
	baseURL string
}

func NewCountryClient(client HTTPClient, baseURL string) *CountryClient {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultRestCountriesBaseURL
	}
	return &CountryClient{http: client, baseURL: baseURL}
}

type restCountry struct {
	Name struct {
		Common   string `json:"common"`
		Official string `json:"official"`
	} `json:"name"`
	Capital    []string          `json:"capital"`
	Region     string            `json:"region"`
	Subregion  string            `json:"subregion"`
	Population int64             `json:"population"`
	Area       float64           `json:"area"`
	Languages  map[string]string `json:"languages"`
	Currencies map[string]struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"currencies"`
	Flags struct {
		SVG string `json:"svg"`
		PNG string `json:"png"`
	} `json:"flags"`
}

// Lookup fetches the first match for name. Absent fields take the
// DefaultCountryInfo values.
func (c *CountryClient) Lookup(ctx context.Context, name string) (*domain.CountryInfo, error) {
	endpoint := joinURL(c.baseURL, "/v3.1/name/"+url.PathEscape(strings.TrimSpace(name)))

	var payload []restCountry
	if err := getJSON(ctx, c.http, endpoint, nil, &payload); err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, errEmptyCountryResult
	}
	first := payload[0]

	info := domain.DefaultCountryInfo()
	info.Name = firstNonEmpty(first.Name.Common, info.Name)
	info.OfficialName = firstNonEmpty(first.Name.Official, info.OfficialName)
	if len(first.Capital) > 0 {
		info.Capital = firstNonEmpty(first.Capital[0], info.Capital)
	}
	info.Region = firstNonEmpty(first.Region, info.Region)
	info.Subregion = firstNonEmpty(first.Subregion, info.Subregion)
	info.Population = first.Population
	info.Area = first.Area
	info.FlagURL = first.Flags.SVG

	for _, code := range sortedKeys(first.Languages) {
		info.Languages = append(info.Languages, first.Languages[code])
	}
	codes := make([]string, 0, len(first.Currencies))
	for code := range first.Currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		cur := first.Currencies[code]
		info.Currencies = append(info.Currencies, domain.Currency{Code: code, Name: cur.Name, Symbol: cur.Symbol})
	}
	return &info, nil
}

func firstNonEmpty(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
